package transaction

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"
)

// Common errors
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrTitleRequired       = errors.New("title is required")
	ErrInvalidAmount       = errors.New("amount must be a non-zero finite number")
)

// Service handles transaction business logic
type Service struct {
	repo *Repository
}

// NewService creates a new transaction service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new plain transaction entry
func (s *Service) Create(ctx context.Context, req *CreateTransactionRequest) (*Transaction, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, ErrTitleRequired
	}
	if req.Amount == 0 || math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		return nil, ErrInvalidAmount
	}

	return s.repo.Create(ctx, req)
}

// GetByID retrieves a transaction by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Transaction, error) {
	transaction, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, ErrTransactionNotFound
	}
	return transaction, nil
}

// List retrieves transactions with pagination and an optional category filter
func (s *Service) List(ctx context.Context, category string, page, perPage int) ([]*Transaction, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.List(ctx, category, perPage, offset)
}

// Summarize aggregates spending per category. A zero from/to defaults to
// the trailing 30 days ending now.
func (s *Service) Summarize(ctx context.Context, from, to time.Time) (*SummaryResponse, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}

	summaries, err := s.repo.SummarizeByCategory(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var totalSpent float64
	for _, summary := range summaries {
		totalSpent += summary.Total
	}

	return &SummaryResponse{
		From:       from.Format("2006-01-02"),
		To:         to.Format("2006-01-02"),
		TotalSpent: totalSpent,
		Categories: summaries,
	}, nil
}

// Delete removes a transaction
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
