package transaction

import "time"

// CreateTransactionRequest represents the request to create a transaction
type CreateTransactionRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=255"`
	Subtitle    *string    `json:"subtitle,omitempty"`
	Amount      float64    `json:"amount" validate:"required"`
	Category    string     `json:"category,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	SplitBillID *int64     `json:"split_bill_id,omitempty"`
}

// TransactionResponse represents the response for a transaction
type TransactionResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Subtitle    *string `json:"subtitle,omitempty"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category,omitempty"`
	Date        string  `json:"date"`
	SplitBillID *int64  `json:"split_bill_id,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// SummaryResponse represents spending grouped by category over a range
type SummaryResponse struct {
	From       string             `json:"from"`
	To         string             `json:"to"`
	TotalSpent float64            `json:"total_spent"`
	Categories []*CategorySummary `json:"categories"`
}

// ToResponse converts a Transaction model to a TransactionResponse DTO
func (t *Transaction) ToResponse() *TransactionResponse {
	return &TransactionResponse{
		ID:          t.ID,
		Title:       t.Title,
		Subtitle:    t.Subtitle,
		Amount:      t.Amount,
		Category:    t.Category,
		Date:        t.Date.Format("2006-01-02"),
		SplitBillID: t.SplitBillID,
		CreatedAt:   t.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
