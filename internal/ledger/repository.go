package ledger

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository is the Postgres-backed Store. Balance updates run inside a
// single transaction so a failed lookup never leaves a partial apply.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new ledger repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// PersonExists reports whether a person id resolves to a stored person
func (r *Repository) PersonExists(ctx context.Context, personID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM people WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, personID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check person: %w", err)
	}
	return exists, nil
}

// ApplyDeltas applies every staged delta in one transaction. If any delta
// names a person that no longer exists, the transaction rolls back and no
// balance changes.
func (r *Repository) ApplyDeltas(ctx context.Context, deltas []Delta) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE people SET balance = balance + $2 WHERE id = $1`
	for _, delta := range deltas {
		result, err := tx.ExecContext(ctx, query, delta.PersonID, delta.Amount)
		if err != nil {
			return fmt.Errorf("failed to apply balance delta: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if affected == 0 {
			return ErrParticipantNotFound
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit balance deltas: %w", err)
	}
	return nil
}

// GetBalance returns one person's balance, or nil if the person is unknown
func (r *Repository) GetBalance(ctx context.Context, personID int64) (*Balance, error) {
	query := `SELECT id, name, balance FROM people WHERE id = $1`

	balance := &Balance{}
	err := r.db.QueryRowContext(ctx, query, personID).Scan(
		&balance.PersonID,
		&balance.Name,
		&balance.Amount,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	return balance, nil
}

// ListBalances returns every person's balance ordered by name
func (r *Repository) ListBalances(ctx context.Context) ([]*Balance, error) {
	query := `SELECT id, name, balance FROM people ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list balances: %w", err)
	}
	defer rows.Close()

	var balances []*Balance
	for rows.Next() {
		balance := &Balance{}
		if err := rows.Scan(&balance.PersonID, &balance.Name, &balance.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan balance: %w", err)
		}
		balances = append(balances, balance)
	}

	return balances, nil
}

// ClearBalance zeroes a person's balance and writes the settlement audit
// row in the same transaction
func (r *Repository) ClearBalance(ctx context.Context, personID int64, reference string) (*Settlement, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var cleared float64
	lockQuery := `SELECT balance FROM people WHERE id = $1 FOR UPDATE`
	if err := tx.QueryRowContext(ctx, lockQuery, personID).Scan(&cleared); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to read balance: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE people SET balance = 0 WHERE id = $1`, personID); err != nil {
		return nil, fmt.Errorf("failed to clear balance: %w", err)
	}

	insertQuery := `
		INSERT INTO settlements (reference, person_id, cleared_amount)
		VALUES ($1, $2, $3)
		RETURNING id, reference, person_id, cleared_amount, created_at
	`

	settlement := &Settlement{}
	err = tx.QueryRowContext(ctx, insertQuery, reference, personID, cleared).Scan(
		&settlement.ID,
		&settlement.Reference,
		&settlement.PersonID,
		&settlement.ClearedAmount,
		&settlement.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create settlement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit settlement: %w", err)
	}
	return settlement, nil
}

// ListSettlements returns the settlement audit trail, newest first
func (r *Repository) ListSettlements(ctx context.Context, limit, offset int) ([]*Settlement, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM settlements`
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count settlements: %w", err)
	}

	query := `
		SELECT s.id, s.reference, s.person_id, s.cleared_amount, s.created_at,
		       p.name AS person_name
		FROM settlements s
		JOIN people p ON s.person_id = p.id
		ORDER BY s.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*Settlement
	for rows.Next() {
		settlement := &Settlement{}
		if err := rows.Scan(
			&settlement.ID,
			&settlement.Reference,
			&settlement.PersonID,
			&settlement.ClearedAmount,
			&settlement.CreatedAt,
			&settlement.PersonName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, settlement)
	}

	return settlements, total, nil
}
