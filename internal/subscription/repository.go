package subscription

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository handles subscription data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new subscription repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new subscription into the database
func (r *Repository) Create(ctx context.Context, req *CreateSubscriptionRequest, startDate time.Time) (*Subscription, error) {
	query := `
		INSERT INTO subscriptions (name, price, cycle, start_date, category, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, price, cycle, start_date, category, notes, active, created_at
	`

	subscription := &Subscription{}
	err := r.db.QueryRowContext(ctx, query,
		req.Name, req.Price, req.Cycle, startDate, req.Category, req.Notes,
	).Scan(
		&subscription.ID,
		&subscription.Name,
		&subscription.Price,
		&subscription.Cycle,
		&subscription.StartDate,
		&subscription.Category,
		&subscription.Notes,
		&subscription.Active,
		&subscription.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	return subscription, nil
}

// GetByID retrieves a subscription by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Subscription, error) {
	query := `
		SELECT id, name, price, cycle, start_date, category, notes, active, created_at
		FROM subscriptions
		WHERE id = $1
	`

	subscription := &Subscription{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&subscription.ID,
		&subscription.Name,
		&subscription.Price,
		&subscription.Cycle,
		&subscription.StartDate,
		&subscription.Category,
		&subscription.Notes,
		&subscription.Active,
		&subscription.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return subscription, nil
}

// List retrieves all subscriptions, active first then by name
func (r *Repository) List(ctx context.Context) ([]*Subscription, error) {
	query := `
		SELECT id, name, price, cycle, start_date, category, notes, active, created_at
		FROM subscriptions
		ORDER BY active DESC, name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	var subscriptions []*Subscription
	for rows.Next() {
		subscription := &Subscription{}
		if err := rows.Scan(
			&subscription.ID,
			&subscription.Name,
			&subscription.Price,
			&subscription.Cycle,
			&subscription.StartDate,
			&subscription.Category,
			&subscription.Notes,
			&subscription.Active,
			&subscription.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		subscriptions = append(subscriptions, subscription)
	}

	return subscriptions, nil
}

// Update modifies an existing subscription
func (r *Repository) Update(ctx context.Context, id int64, req *UpdateSubscriptionRequest) (*Subscription, error) {
	query := `
		UPDATE subscriptions
		SET name = COALESCE($2, name),
		    price = COALESCE($3, price),
		    cycle = COALESCE($4, cycle),
		    category = COALESCE($5, category),
		    notes = COALESCE($6, notes),
		    active = COALESCE($7, active)
		WHERE id = $1
		RETURNING id, name, price, cycle, start_date, category, notes, active, created_at
	`

	subscription := &Subscription{}
	err := r.db.QueryRowContext(ctx, query,
		id, req.Name, req.Price, req.Cycle, req.Category, req.Notes, req.Active,
	).Scan(
		&subscription.ID,
		&subscription.Name,
		&subscription.Price,
		&subscription.Cycle,
		&subscription.StartDate,
		&subscription.Category,
		&subscription.Notes,
		&subscription.Active,
		&subscription.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	return subscription, nil
}

// Delete removes a subscription from the database
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM subscriptions WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrSubscriptionNotFound
	}

	return nil
}
