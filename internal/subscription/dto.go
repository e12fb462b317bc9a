package subscription

import "time"

// CreateSubscriptionRequest represents the request to create a subscription
type CreateSubscriptionRequest struct {
	Name      string     `json:"name" validate:"required,min=1,max=100"`
	Price     float64    `json:"price" validate:"required,gt=0"`
	Cycle     string     `json:"cycle" validate:"required,oneof=WEEKLY MONTHLY QUARTERLY YEARLY"`
	StartDate *time.Time `json:"start_date,omitempty"`
	Category  string     `json:"category,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

// UpdateSubscriptionRequest represents the request to update a subscription
type UpdateSubscriptionRequest struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Cycle    *string  `json:"cycle,omitempty" validate:"omitempty,oneof=WEEKLY MONTHLY QUARTERLY YEARLY"`
	Category *string  `json:"category,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
	Active   *bool    `json:"active,omitempty"`
}

// SubscriptionResponse represents the response for a subscription
type SubscriptionResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Cycle       string  `json:"cycle"`
	StartDate   string  `json:"start_date"`
	Category    string  `json:"category,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	Active      bool    `json:"active"`
	NextRenewal string  `json:"next_renewal"`
	MonthlyCost float64 `json:"monthly_cost"`
	CreatedAt   string  `json:"created_at"`
}

// ToResponse converts a Subscription model to a SubscriptionResponse DTO,
// computing the derived renewal fields relative to now
func (s *Subscription) ToResponse(now time.Time) *SubscriptionResponse {
	return &SubscriptionResponse{
		ID:          s.ID,
		Name:        s.Name,
		Price:       s.Price,
		Cycle:       string(s.Cycle),
		StartDate:   s.StartDate.Format("2006-01-02"),
		Category:    s.Category,
		Notes:       s.Notes,
		Active:      s.Active,
		NextRenewal: s.NextRenewal(now).Format("2006-01-02"),
		MonthlyCost: s.MonthlyCost(),
		CreatedAt:   s.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
