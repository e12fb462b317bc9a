package person

import (
	"context"
	"errors"
	"strings"
)

// Common errors
var (
	ErrPersonNotFound = errors.New("person not found")
	ErrNameRequired   = errors.New("name is required")
)

// Service handles person business logic
type Service struct {
	repo *Repository
}

// NewService creates a new person service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new person
func (s *Service) Create(ctx context.Context, req *CreatePersonRequest) (*Person, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrNameRequired
	}

	return s.repo.Create(ctx, req)
}

// GetByID retrieves a person by their ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Person, error) {
	person, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}
	return person, nil
}

// List retrieves all people with pagination
func (s *Service) List(ctx context.Context, page, perPage int) ([]*Person, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.List(ctx, perPage, offset)
}

// Update modifies a person's contact details
func (s *Service) Update(ctx context.Context, id int64, req *UpdatePersonRequest) (*Person, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, ErrNameRequired
		}
		req.Name = &trimmed
	}

	person, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}
	return person, nil
}

// Delete removes a person
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
