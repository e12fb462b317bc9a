package subscription

import "time"

// BillingCycle represents how often a subscription renews
type BillingCycle string

const (
	CycleWeekly    BillingCycle = "WEEKLY"
	CycleMonthly   BillingCycle = "MONTHLY"
	CycleQuarterly BillingCycle = "QUARTERLY"
	CycleYearly    BillingCycle = "YEARLY"
)

// ValidCycle reports whether a cycle string is one of the known values
func ValidCycle(cycle BillingCycle) bool {
	switch cycle {
	case CycleWeekly, CycleMonthly, CycleQuarterly, CycleYearly:
		return true
	default:
		return false
	}
}

// Subscription is a recurring charge the user tracks
type Subscription struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Price     float64      `json:"price"`
	Cycle     BillingCycle `json:"cycle"`
	StartDate time.Time    `json:"start_date"`
	Category  string       `json:"category,omitempty"`
	Notes     *string      `json:"notes,omitempty"`
	Active    bool         `json:"active"`
	CreatedAt time.Time    `json:"created_at"`
}

// step advances a date by one billing cycle. Month-based cycles use
// AddDate, which normalizes past-end-of-month dates forward.
func (s Subscription) step(date time.Time) time.Time {
	switch s.Cycle {
	case CycleWeekly:
		return date.AddDate(0, 0, 7)
	case CycleQuarterly:
		return date.AddDate(0, 3, 0)
	case CycleYearly:
		return date.AddDate(1, 0, 0)
	default:
		return date.AddDate(0, 1, 0)
	}
}

// NextRenewal returns the first renewal strictly after now, walking cycle
// by cycle from the start date. A start date in the future is itself the
// next renewal.
func (s Subscription) NextRenewal(now time.Time) time.Time {
	next := s.StartDate
	for !next.After(now) {
		next = s.step(next)
	}
	return next
}

// DueWithin reports whether the next renewal falls inside the given number
// of days from now
func (s Subscription) DueWithin(now time.Time, days int) bool {
	return !s.NextRenewal(now).After(now.AddDate(0, 0, days))
}

// MonthlyCost normalizes the price to a per-month figure
func (s Subscription) MonthlyCost() float64 {
	switch s.Cycle {
	case CycleWeekly:
		return s.Price * 52 / 12
	case CycleQuarterly:
		return s.Price / 3
	case CycleYearly:
		return s.Price / 12
	default:
		return s.Price
	}
}
