package person

import "time"

// Person represents someone the user splits expenses with. Balance is the
// person's running ledger position: positive means others owe this person
// net, negative means this person owes net. It is only ever written by
// ledger operations, never through this package's update path.
type Person struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}
