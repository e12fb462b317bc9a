package split

import (
	"fmt"
	"math"
)

// =============================================================================
// PERCENTAGES SPLIT STRATEGY
// Divides the total based on a percentage entered per participant
// =============================================================================

// PercentageStrategy implements the Strategy interface for percentage splits
type PercentageStrategy struct{}

// Type returns the split type identifier
func (s *PercentageStrategy) Type() Type {
	return TypePercentages
}

// Validate checks that every participant carries a percentage in [0, 100]
// and that the percentages sum to 100 within PercentageEpsilon. The error
// for a bad sum states the actual total so the UI can surface it verbatim.
func (s *PercentageStrategy) Validate(totalAmount float64, participants []Input) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	if err := validateTotal(totalAmount); err != nil {
		return err
	}

	var totalPercentage float64
	for _, p := range participants {
		if p.Percentage == nil {
			return ErrMissingPercentage
		}
		if *p.Percentage < 0 || *p.Percentage > 100 {
			return ErrPercentageOutOfRange
		}
		totalPercentage += *p.Percentage
	}

	if math.Abs(totalPercentage-100) > PercentageEpsilon {
		return fmt.Errorf("%w: percentages add up to %.1f%%, expected 100%%", ErrInvalidPercentages, totalPercentage)
	}

	return nil
}

// Calculate assigns total * percentage / 100 to each participant, rounded to
// cents. Remainder cents after rounding go to the last participant.
func (s *PercentageStrategy) Calculate(totalAmount float64, participants []Input) ([]Output, error) {
	if err := s.Validate(totalAmount, participants); err != nil {
		return nil, err
	}

	outputs := make([]Output, len(participants))
	var distributed float64
	for i, p := range participants {
		amount := roundToCents(totalAmount * (*p.Percentage) / 100)
		distributed += amount
		outputs[i] = Output{
			PersonID: p.PersonID,
			Amount:   amount,
		}
	}

	// Close the rounding gap on the last participant
	remainder := roundToCents(roundToCents(totalAmount) - distributed)
	if remainder != 0 {
		last := len(outputs) - 1
		outputs[last].Amount = roundToCents(outputs[last].Amount + remainder)
	}

	return outputs, nil
}
