package ledger

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrPersonNotFound      = errors.New("person not found")
)

// Service maintains person balances. Balances are mutated exclusively here:
// applying a split bill's deltas, or settling a person back to zero.
type Service struct {
	store Store
}

// NewService creates a new ledger service with the store dependency injected
func NewService(store Store) *Service {
	return &Service{store: store}
}

// StageDeltas turns a split bill's shares into the signed balance changes it
// implies: every non-payer participant loses their share, the payer gains
// the sum of everyone else's shares. The payer's own share never moves a
// balance (they paid themselves). A payer outside the participant list is
// allowed - they simply gain the full sum of the listed shares.
func StageDeltas(payerID int64, shares []Share) []Delta {
	deltas := make([]Delta, 0, len(shares)+1)
	var owedToPayer float64
	for _, share := range shares {
		if share.PersonID == payerID {
			continue
		}
		owedToPayer += share.Amount
		deltas = append(deltas, Delta{
			PersonID: share.PersonID,
			Amount:   -share.Amount,
		})
	}

	if len(deltas) == 0 {
		// Payer was the only participant, nothing to move
		return nil
	}

	deltas = append(deltas, Delta{
		PersonID: payerID,
		Amount:   roundCents(owedToPayer),
	})
	return deltas
}

// Resolve checks that every person named by the staged deltas exists.
// It is called before anything is persisted so a stale participant id
// aborts the whole save with no balance touched.
func (s *Service) Resolve(ctx context.Context, deltas []Delta) error {
	for _, delta := range deltas {
		exists, err := s.store.PersonExists(ctx, delta.PersonID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrParticipantNotFound
		}
	}
	return nil
}

// Apply resolves the staged deltas and commits them in one transaction.
func (s *Service) Apply(ctx context.Context, deltas []Delta) error {
	if len(deltas) == 0 {
		return nil
	}
	if err := s.Resolve(ctx, deltas); err != nil {
		return err
	}
	return s.store.ApplyDeltas(ctx, deltas)
}

// ApplySplit stages and applies the balance changes for one split bill.
func (s *Service) ApplySplit(ctx context.Context, payerID int64, shares []Share) error {
	return s.Apply(ctx, StageDeltas(payerID, shares))
}

// Settle resets a person's balance to exactly zero and records the reset.
// It is a manual override, not a reconciliation against outstanding bills,
// and it is idempotent - settling an already-zero balance still succeeds.
func (s *Service) Settle(ctx context.Context, personID int64) (*Settlement, error) {
	exists, err := s.store.PersonExists(ctx, personID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPersonNotFound
	}

	reference := uuid.New().String()
	return s.store.ClearBalance(ctx, personID, reference)
}

// GetBalance returns one person's current balance
func (s *Service) GetBalance(ctx context.Context, personID int64) (*Balance, error) {
	balance, err := s.store.GetBalance(ctx, personID)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		return nil, ErrPersonNotFound
	}
	return balance, nil
}

// ListBalances returns every person's current balance
func (s *Service) ListBalances(ctx context.Context) ([]*Balance, error) {
	return s.store.ListBalances(ctx)
}

// ListSettlements returns the settlement audit trail with pagination
func (s *Service) ListSettlements(ctx context.Context, page, perPage int) ([]*Settlement, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.store.ListSettlements(ctx, perPage, offset)
}

// roundCents rounds half-up to 2 decimal places
func roundCents(value float64) float64 {
	return math.Round(value*100) / 100
}
