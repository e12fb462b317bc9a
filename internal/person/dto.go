package person

// CreatePersonRequest represents the request body for creating a person
type CreatePersonRequest struct {
	Name  string  `json:"name" validate:"required,min=1,max=100"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone *string `json:"phone,omitempty"`
}

// UpdatePersonRequest represents the request body for updating a person.
// Balance is deliberately absent: it moves only through the ledger.
type UpdatePersonRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone *string `json:"phone,omitempty"`
}

// PersonResponse represents the response for a single person
type PersonResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Balance   float64 `json:"balance"`
	CreatedAt string  `json:"created_at"`
}

// ToResponse converts a Person model to a PersonResponse DTO
func (p *Person) ToResponse() *PersonResponse {
	return &PersonResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Balance:   p.Balance,
		CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
