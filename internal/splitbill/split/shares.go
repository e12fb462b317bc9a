package split

// =============================================================================
// SHARES SPLIT STRATEGY
// Divides the total proportionally to a share count per participant
// =============================================================================

// SharesStrategy implements the Strategy interface for share-based splits
type SharesStrategy struct{}

// Type returns the split type identifier
func (s *SharesStrategy) Type() Type {
	return TypeShares
}

// Validate checks that every participant carries a non-negative share count
// and that the counts sum to more than zero. A positive share sum always
// closes exactly, so there is no sum-matching check here.
func (s *SharesStrategy) Validate(totalAmount float64, participants []Input) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	if err := validateTotal(totalAmount); err != nil {
		return err
	}

	var totalShares float64
	for _, p := range participants {
		if p.Shares == nil {
			return ErrMissingShares
		}
		if *p.Shares < 0 {
			return ErrNegativeAmount
		}
		totalShares += *p.Shares
	}

	if totalShares <= 0 {
		return ErrZeroShares
	}

	return nil
}

// Calculate assigns total * shares / sum(shares) to each participant, rounded
// to cents. Remainder cents after rounding go to the first participant.
func (s *SharesStrategy) Calculate(totalAmount float64, participants []Input) ([]Output, error) {
	if err := s.Validate(totalAmount, participants); err != nil {
		return nil, err
	}

	var totalShares float64
	for _, p := range participants {
		totalShares += *p.Shares
	}

	outputs := make([]Output, len(participants))
	var distributed float64
	for i, p := range participants {
		amount := roundToCents(totalAmount * (*p.Shares) / totalShares)
		distributed += amount
		outputs[i] = Output{
			PersonID: p.PersonID,
			Amount:   amount,
		}
	}

	remainder := roundToCents(roundToCents(totalAmount) - distributed)
	if remainder != 0 {
		outputs[0].Amount = roundToCents(outputs[0].Amount + remainder)
	}

	return outputs, nil
}
