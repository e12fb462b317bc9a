package split

// =============================================================================
// EQUALLY SPLIT STRATEGY
// Divides the total evenly among all participants
// =============================================================================

// EquallyStrategy implements the Strategy interface for even splits
type EquallyStrategy struct{}

// Type returns the split type identifier
func (s *EquallyStrategy) Type() Type {
	return TypeEqually
}

// Validate checks if the inputs are valid for an equal split.
// An equal split cannot fail the sum invariant by construction, so the only
// checks are a positive total and a non-empty participant set.
func (s *EquallyStrategy) Validate(totalAmount float64, participants []Input) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	return validateTotal(totalAmount)
}

// Calculate gives every participant total/N rounded to cents. The remainder
// cents left over by rounding go to the first participant, so the shares
// always sum to the rounded total exactly.
func (s *EquallyStrategy) Calculate(totalAmount float64, participants []Input) ([]Output, error) {
	if err := s.Validate(totalAmount, participants); err != nil {
		return nil, err
	}

	count := len(participants)
	share := roundToCents(totalAmount / float64(count))

	outputs := make([]Output, count)
	for i, p := range participants {
		outputs[i] = Output{
			PersonID: p.PersonID,
			Amount:   share,
		}
	}

	// Remainder cents to the first participant
	remainder := roundToCents(roundToCents(totalAmount) - share*float64(count))
	if remainder != 0 {
		outputs[0].Amount = roundToCents(outputs[0].Amount + remainder)
	}

	return outputs, nil
}
