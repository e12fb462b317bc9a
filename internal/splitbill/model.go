package splitbill

import (
	"time"

	"github.com/swiff-app/swiff/internal/splitbill/split"
)

// SplitBill is the persisted record of one split transaction and its
// computed participant shares. Bills are created once at save time and
// never edited afterwards.
type SplitBill struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	TotalAmount float64    `json:"total_amount"`
	PaidByID    int64      `json:"paid_by_id"`
	SplitType   split.Type `json:"split_type"`
	Category    string     `json:"category"`
	Notes       *string    `json:"notes,omitempty"`
	Date        time.Time  `json:"date"`
	CreatedAt   time.Time  `json:"created_at"`

	Participants []*Participant `json:"participants,omitempty"`

	// Populated via JOIN
	PaidByName string `json:"paid_by_name,omitempty"`
}

// Participant is one person's computed share within a bill. Amount is the
// authoritative value; percentage and shares are kept as entered for
// display. HasPaid is true only for the payer at creation time.
type Participant struct {
	ID          int64    `json:"id"`
	SplitBillID int64    `json:"split_bill_id"`
	PersonID    int64    `json:"person_id"`
	Amount      float64  `json:"amount"`
	Percentage  *float64 `json:"percentage,omitempty"`
	Shares      *float64 `json:"shares,omitempty"`
	HasPaid     bool     `json:"has_paid"`

	// Populated via JOIN
	PersonName string `json:"person_name,omitempty"`
}

// ParticipantInput is a participant as submitted by the form, carrying the
// strategy parameter the chosen split type reads
type ParticipantInput struct {
	PersonID   int64    `json:"person_id"`
	Percentage *float64 `json:"percentage,omitempty"`
	Shares     *float64 `json:"shares,omitempty"`
	Amount     *float64 `json:"amount,omitempty"`
}

// ToSplitInput converts to the split package's input type
func (p *ParticipantInput) ToSplitInput() split.Input {
	return split.Input{
		PersonID:   p.PersonID,
		Percentage: p.Percentage,
		Shares:     p.Shares,
		Amount:     p.Amount,
	}
}
