package splitbill

import "time"

// CreateSplitBillRequest represents the request to create a split bill
type CreateSplitBillRequest struct {
	Title        string              `json:"title" validate:"required,min=1,max=255"`
	TotalAmount  float64             `json:"total_amount" validate:"required,gt=0"`
	PaidByID     int64               `json:"paid_by_id" validate:"required"`
	SplitType    string              `json:"split_type" validate:"required,oneof=EQUALLY PERCENTAGES SHARES EXACT_AMOUNTS ADJUSTMENTS"`
	Category     string              `json:"category,omitempty"`
	Notes        *string             `json:"notes,omitempty"`
	Date         *time.Time          `json:"date,omitempty"`
	Participants []*ParticipantInput `json:"participants" validate:"required,min=1"`
}

// PreviewShare is one computed share in a preview response
type PreviewShare struct {
	PersonID int64   `json:"person_id"`
	Amount   float64 `json:"amount"`
}

// PreviewResponse reports whether a bill-in-progress would commit, with the
// message the form shows and the shares it would produce
type PreviewResponse struct {
	Valid   bool            `json:"valid"`
	Message string          `json:"message"`
	Shares  []*PreviewShare `json:"shares,omitempty"`
}

// ParticipantResponse represents the response for one participant
type ParticipantResponse struct {
	ID         int64    `json:"id"`
	PersonID   int64    `json:"person_id"`
	PersonName string   `json:"person_name,omitempty"`
	Amount     float64  `json:"amount"`
	Percentage *float64 `json:"percentage,omitempty"`
	Shares     *float64 `json:"shares,omitempty"`
	HasPaid    bool     `json:"has_paid"`
}

// SplitBillResponse represents the response for a split bill
type SplitBillResponse struct {
	ID           int64                  `json:"id"`
	Title        string                 `json:"title"`
	TotalAmount  float64                `json:"total_amount"`
	PaidByID     int64                  `json:"paid_by_id"`
	PaidByName   string                 `json:"paid_by_name,omitempty"`
	SplitType    string                 `json:"split_type"`
	Category     string                 `json:"category,omitempty"`
	Notes        *string                `json:"notes,omitempty"`
	Date         string                 `json:"date"`
	CreatedAt    string                 `json:"created_at"`
	Participants []*ParticipantResponse `json:"participants,omitempty"`
}

// ToResponse converts a SplitBill model to a SplitBillResponse DTO
func (b *SplitBill) ToResponse() *SplitBillResponse {
	resp := &SplitBillResponse{
		ID:          b.ID,
		Title:       b.Title,
		TotalAmount: b.TotalAmount,
		PaidByID:    b.PaidByID,
		PaidByName:  b.PaidByName,
		SplitType:   string(b.SplitType),
		Category:    b.Category,
		Notes:       b.Notes,
		Date:        b.Date.Format("2006-01-02"),
		CreatedAt:   b.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	for _, p := range b.Participants {
		resp.Participants = append(resp.Participants, p.ToResponse())
	}
	return resp
}

// ToResponse converts a Participant model to a ParticipantResponse DTO
func (p *Participant) ToResponse() *ParticipantResponse {
	return &ParticipantResponse{
		ID:         p.ID,
		PersonID:   p.PersonID,
		PersonName: p.PersonName,
		Amount:     p.Amount,
		Percentage: p.Percentage,
		Shares:     p.Shares,
		HasPaid:    p.HasPaid,
	}
}
