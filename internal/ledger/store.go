package ledger

import "context"

// Store defines the persistence operations the ledger needs. The service
// only ever mutates balances through this interface, which keeps the
// staging/validation logic testable against an in-memory implementation.
type Store interface {
	// PersonExists reports whether a person id resolves to a stored person.
	PersonExists(ctx context.Context, personID int64) (bool, error)

	// ApplyDeltas applies every staged delta in a single transaction.
	// Either all balances change or none do; a delta naming a missing
	// person must fail the whole batch with ErrParticipantNotFound.
	ApplyDeltas(ctx context.Context, deltas []Delta) error

	// GetBalance returns one person's balance, or nil if the person
	// does not exist.
	GetBalance(ctx context.Context, personID int64) (*Balance, error)

	// ListBalances returns every person's balance.
	ListBalances(ctx context.Context) ([]*Balance, error)

	// ClearBalance sets a person's balance to exactly zero and writes the
	// settlement audit row in the same transaction, returning the row.
	ClearBalance(ctx context.Context, personID int64, reference string) (*Settlement, error)

	// ListSettlements returns the settlement audit trail, newest first.
	ListSettlements(ctx context.Context, limit, offset int) ([]*Settlement, int, error)
}
