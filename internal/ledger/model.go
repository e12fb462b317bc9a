package ledger

import "time"

// Share is one participant's computed portion of a split bill, as the
// calculator produced it. The payer's own share is included.
type Share struct {
	PersonID int64   `json:"person_id"`
	Amount   float64 `json:"amount"`
}

// Delta is a staged, signed balance change for one person. Deltas are
// computed in full before any balance is touched.
type Delta struct {
	PersonID int64   `json:"person_id"`
	Amount   float64 `json:"amount"`
}

// Balance is a person's current ledger position. Positive means others owe
// this person net; negative means this person owes net.
type Balance struct {
	PersonID int64   `json:"person_id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
}

// Settlement is the audit record of a manual balance reset. Settling does
// not reconcile against individual bills; it records what was wiped.
type Settlement struct {
	ID            int64     `json:"id"`
	Reference     string    `json:"reference"`
	PersonID      int64     `json:"person_id"`
	ClearedAmount float64   `json:"cleared_amount"`
	CreatedAt     time.Time `json:"created_at"`

	// Populated via JOIN
	PersonName string `json:"person_name,omitempty"`
}
