package transaction

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository handles transaction data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new transaction repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new transaction into the database
func (r *Repository) Create(ctx context.Context, req *CreateTransactionRequest) (*Transaction, error) {
	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	query := `
		INSERT INTO transactions (title, subtitle, amount, category, date, split_bill_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, title, subtitle, amount, category, date, split_bill_id, created_at
	`

	transaction := &Transaction{}
	err := r.db.QueryRowContext(ctx, query,
		req.Title, req.Subtitle, req.Amount, req.Category, date, req.SplitBillID,
	).Scan(
		&transaction.ID,
		&transaction.Title,
		&transaction.Subtitle,
		&transaction.Amount,
		&transaction.Category,
		&transaction.Date,
		&transaction.SplitBillID,
		&transaction.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return transaction, nil
}

// GetByID retrieves a transaction by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Transaction, error) {
	query := `
		SELECT id, title, subtitle, amount, category, date, split_bill_id, created_at
		FROM transactions
		WHERE id = $1
	`

	transaction := &Transaction{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&transaction.ID,
		&transaction.Title,
		&transaction.Subtitle,
		&transaction.Amount,
		&transaction.Category,
		&transaction.Date,
		&transaction.SplitBillID,
		&transaction.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return transaction, nil
}

// List retrieves transactions with pagination and an optional category filter
func (r *Repository) List(ctx context.Context, category string, limit, offset int) ([]*Transaction, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM transactions WHERE ($1 = '' OR category = $1)`
	if err := r.db.QueryRowContext(ctx, countQuery, category).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	query := `
		SELECT id, title, subtitle, amount, category, date, split_bill_id, created_at
		FROM transactions
		WHERE ($1 = '' OR category = $1)
		ORDER BY date DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, category, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*Transaction
	for rows.Next() {
		transaction := &Transaction{}
		if err := rows.Scan(
			&transaction.ID,
			&transaction.Title,
			&transaction.Subtitle,
			&transaction.Amount,
			&transaction.Category,
			&transaction.Date,
			&transaction.SplitBillID,
			&transaction.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, transaction)
	}

	return transactions, total, nil
}

// SummarizeByCategory aggregates expenses (negative amounts) per category
// over a date range, largest spend first
func (r *Repository) SummarizeByCategory(ctx context.Context, from, to time.Time) ([]*CategorySummary, error) {
	query := `
		SELECT category, SUM(-amount) AS total, COUNT(*) AS count
		FROM transactions
		WHERE amount < 0 AND date >= $1 AND date <= $2
		GROUP BY category
		ORDER BY total DESC
	`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize transactions: %w", err)
	}
	defer rows.Close()

	var summaries []*CategorySummary
	for rows.Next() {
		summary := &CategorySummary{}
		if err := rows.Scan(&summary.Category, &summary.Total, &summary.Count); err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// Delete removes a transaction from the database
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM transactions WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}
