package transaction

import "time"

// Transaction is one entry in the activity feed. Amount is signed:
// negative is an expense, positive is income. Entries created from a split
// bill carry the bill's id; they are display records only - balances are
// driven by the ledger, never by these rows.
type Transaction struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Subtitle    *string   `json:"subtitle,omitempty"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	SplitBillID *int64    `json:"split_bill_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategorySummary is a category's aggregated spending over a date range
type CategorySummary struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}
