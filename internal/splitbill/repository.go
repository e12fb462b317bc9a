package splitbill

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/swiff-app/swiff/internal/splitbill/split"
)

// Repository handles split bill data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new split bill repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateBill inserts the bill and all of its participants in one
// transaction. Participant order follows the request order.
func (r *Repository) CreateBill(ctx context.Context, req *CreateSplitBillRequest, date time.Time, shares []split.Output) (*SplitBill, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	billQuery := `
		INSERT INTO split_bills (title, total_amount, paid_by_id, split_type, category, notes, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, total_amount, paid_by_id, split_type, category, notes, date, created_at
	`

	bill := &SplitBill{}
	err = tx.QueryRowContext(ctx, billQuery,
		req.Title, req.TotalAmount, req.PaidByID, req.SplitType, req.Category, req.Notes, date,
	).Scan(
		&bill.ID,
		&bill.Title,
		&bill.TotalAmount,
		&bill.PaidByID,
		&bill.SplitType,
		&bill.Category,
		&bill.Notes,
		&bill.Date,
		&bill.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create split bill: %w", err)
	}

	// Index the raw inputs so each participant keeps the percentage/shares
	// value the user entered alongside the computed amount
	inputs := make(map[int64]*ParticipantInput, len(req.Participants))
	for _, p := range req.Participants {
		inputs[p.PersonID] = p
	}

	participantQuery := `
		INSERT INTO split_participants (split_bill_id, person_id, amount, percentage, shares, has_paid)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, split_bill_id, person_id, amount, percentage, shares, has_paid
	`

	for _, share := range shares {
		var percentage, shareCount *float64
		if input, ok := inputs[share.PersonID]; ok {
			percentage = input.Percentage
			shareCount = input.Shares
		}

		participant := &Participant{}
		err := tx.QueryRowContext(ctx, participantQuery,
			bill.ID, share.PersonID, share.Amount, percentage, shareCount, share.PersonID == bill.PaidByID,
		).Scan(
			&participant.ID,
			&participant.SplitBillID,
			&participant.PersonID,
			&participant.Amount,
			&participant.Percentage,
			&participant.Shares,
			&participant.HasPaid,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create participant: %w", err)
		}
		bill.Participants = append(bill.Participants, participant)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit split bill: %w", err)
	}
	return bill, nil
}

// GetByID retrieves a bill with its participants
func (r *Repository) GetByID(ctx context.Context, id int64) (*SplitBill, error) {
	query := `
		SELECT b.id, b.title, b.total_amount, b.paid_by_id, b.split_type,
		       b.category, b.notes, b.date, b.created_at,
		       p.name AS paid_by_name
		FROM split_bills b
		JOIN people p ON b.paid_by_id = p.id
		WHERE b.id = $1
	`

	bill := &SplitBill{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&bill.ID,
		&bill.Title,
		&bill.TotalAmount,
		&bill.PaidByID,
		&bill.SplitType,
		&bill.Category,
		&bill.Notes,
		&bill.Date,
		&bill.CreatedAt,
		&bill.PaidByName,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get split bill: %w", err)
	}

	participants, err := r.getParticipants(ctx, id)
	if err != nil {
		return nil, err
	}
	bill.Participants = participants

	return bill, nil
}

// getParticipants retrieves a bill's participants in insertion order
func (r *Repository) getParticipants(ctx context.Context, billID int64) ([]*Participant, error) {
	query := `
		SELECT sp.id, sp.split_bill_id, sp.person_id, sp.amount,
		       sp.percentage, sp.shares, sp.has_paid,
		       p.name AS person_name
		FROM split_participants sp
		JOIN people p ON sp.person_id = p.id
		WHERE sp.split_bill_id = $1
		ORDER BY sp.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	var participants []*Participant
	for rows.Next() {
		participant := &Participant{}
		if err := rows.Scan(
			&participant.ID,
			&participant.SplitBillID,
			&participant.PersonID,
			&participant.Amount,
			&participant.Percentage,
			&participant.Shares,
			&participant.HasPaid,
			&participant.PersonName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, participant)
	}

	return participants, nil
}

// List retrieves bills with pagination, newest first, without participants
func (r *Repository) List(ctx context.Context, limit, offset int) ([]*SplitBill, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM split_bills`
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count split bills: %w", err)
	}

	query := `
		SELECT b.id, b.title, b.total_amount, b.paid_by_id, b.split_type,
		       b.category, b.notes, b.date, b.created_at,
		       p.name AS paid_by_name
		FROM split_bills b
		JOIN people p ON b.paid_by_id = p.id
		ORDER BY b.date DESC, b.id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list split bills: %w", err)
	}
	defer rows.Close()

	var bills []*SplitBill
	for rows.Next() {
		bill := &SplitBill{}
		if err := rows.Scan(
			&bill.ID,
			&bill.Title,
			&bill.TotalAmount,
			&bill.PaidByID,
			&bill.SplitType,
			&bill.Category,
			&bill.Notes,
			&bill.Date,
			&bill.CreatedAt,
			&bill.PaidByName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan split bill: %w", err)
		}
		bills = append(bills, bill)
	}

	return bills, total, nil
}

// Delete removes a bill and, via cascade, its participants. Used as the
// compensating step when the ledger commit fails after the bill row landed.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM split_bills WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete split bill: %w", err)
	}
	return nil
}
