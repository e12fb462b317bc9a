package split

import (
	"fmt"
	"math"
)

// =============================================================================
// EXACT AMOUNTS / ADJUSTMENTS SPLIT STRATEGY
// Each participant owes the exact amount the caller supplied
// =============================================================================

// ExactStrategy implements the Strategy interface for exact-amount splits.
// It backs both EXACT_AMOUNTS and ADJUSTMENTS: adjustments arrive from the
// form as already-adjusted final amounts per person.
type ExactStrategy struct {
	splitType Type
}

// Type returns the split type identifier
func (s *ExactStrategy) Type() Type {
	return s.splitType
}

// Validate checks that every participant carries a non-negative amount and
// that the amounts sum to the total within AmountEpsilon. The error for a
// bad sum states the actual and expected totals.
func (s *ExactStrategy) Validate(totalAmount float64, participants []Input) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	if err := validateTotal(totalAmount); err != nil {
		return err
	}

	var totalExact float64
	for _, p := range participants {
		if p.Amount == nil {
			return ErrMissingExactAmount
		}
		if *p.Amount < 0 {
			return ErrNegativeAmount
		}
		totalExact += *p.Amount
	}

	if math.Abs(totalExact-totalAmount) > AmountEpsilon {
		return fmt.Errorf("%w: amounts add up to %.2f, expected %.2f", ErrInvalidExactAmounts, totalExact, totalAmount)
	}

	return nil
}

// Calculate uses the caller-supplied amounts directly, rounded to cents.
func (s *ExactStrategy) Calculate(totalAmount float64, participants []Input) ([]Output, error) {
	if err := s.Validate(totalAmount, participants); err != nil {
		return nil, err
	}

	outputs := make([]Output, len(participants))
	for i, p := range participants {
		outputs[i] = Output{
			PersonID: p.PersonID,
			Amount:   roundToCents(*p.Amount),
		}
	}

	return outputs, nil
}
