package subscription

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Common errors
var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrNameRequired         = errors.New("name is required")
	ErrInvalidPrice         = errors.New("price must be greater than zero")
	ErrInvalidCycle         = errors.New("unknown billing cycle")
)

// Service handles subscription business logic
type Service struct {
	repo         *Repository
	upcomingDays int
}

// NewService creates a new subscription service with repository dependency
// injected. upcomingDays is the default window for Upcoming.
func NewService(repo *Repository, upcomingDays int) *Service {
	if upcomingDays < 1 {
		upcomingDays = 30
	}
	return &Service{repo: repo, upcomingDays: upcomingDays}
}

// Create creates a new subscription. A missing start date defaults to today.
func (s *Service) Create(ctx context.Context, req *CreateSubscriptionRequest) (*Subscription, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrNameRequired
	}
	if req.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if !ValidCycle(BillingCycle(req.Cycle)) {
		return nil, ErrInvalidCycle
	}

	startDate := time.Now()
	if req.StartDate != nil {
		startDate = *req.StartDate
	}

	return s.repo.Create(ctx, req, startDate)
}

// GetByID retrieves a subscription by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Subscription, error) {
	subscription, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, ErrSubscriptionNotFound
	}
	return subscription, nil
}

// List retrieves all subscriptions
func (s *Service) List(ctx context.Context) ([]*Subscription, error) {
	return s.repo.List(ctx)
}

// Upcoming returns active subscriptions whose next renewal falls within
// the given number of days. A non-positive days falls back to the
// configured default window.
func (s *Service) Upcoming(ctx context.Context, days int) ([]*Subscription, error) {
	if days < 1 {
		days = s.upcomingDays
	}

	subscriptions, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var upcoming []*Subscription
	for _, subscription := range subscriptions {
		if subscription.Active && subscription.DueWithin(now, days) {
			upcoming = append(upcoming, subscription)
		}
	}

	return upcoming, nil
}

// Update modifies an existing subscription
func (s *Service) Update(ctx context.Context, id int64, req *UpdateSubscriptionRequest) (*Subscription, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, ErrNameRequired
		}
		req.Name = &trimmed
	}
	if req.Price != nil && *req.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if req.Cycle != nil && !ValidCycle(BillingCycle(*req.Cycle)) {
		return nil, ErrInvalidCycle
	}

	subscription, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, ErrSubscriptionNotFound
	}
	return subscription, nil
}

// Delete removes a subscription
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
