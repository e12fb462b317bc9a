package ledger

// BalanceResponse represents the response for one person's balance
type BalanceResponse struct {
	PersonID int64   `json:"person_id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Message  string  `json:"message"`
}

// SettlementResponse represents the response for a settlement audit record
type SettlementResponse struct {
	ID            int64   `json:"id"`
	Reference     string  `json:"reference"`
	PersonID      int64   `json:"person_id"`
	PersonName    string  `json:"person_name,omitempty"`
	ClearedAmount float64 `json:"cleared_amount"`
	CreatedAt     string  `json:"created_at"`
}

// ToResponse converts a Settlement model to a SettlementResponse DTO
func (s *Settlement) ToResponse() *SettlementResponse {
	return &SettlementResponse{
		ID:            s.ID,
		Reference:     s.Reference,
		PersonID:      s.PersonID,
		PersonName:    s.PersonName,
		ClearedAmount: s.ClearedAmount,
		CreatedAt:     s.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
