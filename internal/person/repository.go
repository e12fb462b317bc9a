package person

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles person data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new person repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new person into the database with a zero balance
func (r *Repository) Create(ctx context.Context, req *CreatePersonRequest) (*Person, error) {
	query := `
		INSERT INTO people (name, email, phone)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, phone, balance, created_at
	`

	person := &Person{}
	err := r.db.QueryRowContext(ctx, query, req.Name, req.Email, req.Phone).Scan(
		&person.ID,
		&person.Name,
		&person.Email,
		&person.Phone,
		&person.Balance,
		&person.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	return person, nil
}

// GetByID retrieves a person by their ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Person, error) {
	query := `
		SELECT id, name, email, phone, balance, created_at
		FROM people
		WHERE id = $1
	`

	person := &Person{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&person.ID,
		&person.Name,
		&person.Email,
		&person.Phone,
		&person.Balance,
		&person.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	return person, nil
}

// List retrieves all people with pagination
func (r *Repository) List(ctx context.Context, limit, offset int) ([]*Person, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM people`
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count people: %w", err)
	}

	query := `
		SELECT id, name, email, phone, balance, created_at
		FROM people
		ORDER BY name ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	var people []*Person
	for rows.Next() {
		person := &Person{}
		if err := rows.Scan(
			&person.ID,
			&person.Name,
			&person.Email,
			&person.Phone,
			&person.Balance,
			&person.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, person)
	}

	return people, total, nil
}

// Update modifies a person's contact details. The balance column is not
// part of this statement on purpose.
func (r *Repository) Update(ctx context.Context, id int64, req *UpdatePersonRequest) (*Person, error) {
	query := `
		UPDATE people
		SET name = COALESCE($2, name),
		    email = COALESCE($3, email),
		    phone = COALESCE($4, phone)
		WHERE id = $1
		RETURNING id, name, email, phone, balance, created_at
	`

	person := &Person{}
	err := r.db.QueryRowContext(ctx, query, id, req.Name, req.Email, req.Phone).Scan(
		&person.ID,
		&person.Name,
		&person.Email,
		&person.Phone,
		&person.Balance,
		&person.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update person: %w", err)
	}

	return person, nil
}

// Delete removes a person from the database
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM people WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrPersonNotFound
	}

	return nil
}
