package split

import (
	"errors"
	"fmt"
	"math"
)

// Type identifies a split strategy
type Type string

const (
	TypeEqually     Type = "EQUALLY"
	TypePercentages Type = "PERCENTAGES"
	TypeShares      Type = "SHARES"
	TypeExact       Type = "EXACT_AMOUNTS"
	TypeAdjustments Type = "ADJUSTMENTS"
)

// Tolerances for the sum-matching checks. Percentages get a looser bound
// because users type them by hand; amounts must close to the cent.
const (
	PercentageEpsilon = 0.1
	AmountEpsilon     = 0.01
)

// Input represents one participant of a split with the strategy parameters
// the caller supplied. Only the field matching the chosen strategy is read;
// the others are ignored.
type Input struct {
	PersonID   int64    `json:"person_id"`
	Percentage *float64 `json:"percentage,omitempty"` // For PERCENTAGES
	Shares     *float64 `json:"shares,omitempty"`     // For SHARES
	Amount     *float64 `json:"amount,omitempty"`     // For EXACT_AMOUNTS / ADJUSTMENTS
}

// Output is the computed share for a single participant. Every participant
// gets an output, the payer included - excluding the payer from ledger
// deltas is the ledger's job, not the calculator's.
type Output struct {
	PersonID int64   `json:"person_id"`
	Amount   float64 `json:"amount"`
}

// Strategy is the interface that all split strategies must implement
type Strategy interface {
	// Calculate computes every participant's share of the total.
	// The returned shares always sum to the total rounded to cents.
	Calculate(totalAmount float64, participants []Input) ([]Output, error)

	// Type returns the type identifier for this strategy
	Type() Type

	// Validate checks if the inputs are valid for this strategy
	Validate(totalAmount float64, participants []Input) error
}

// Factory creates split strategies based on the requested type
type Factory struct{}

// NewSplitStrategyFactory creates a new factory instance
func NewSplitStrategyFactory() *Factory {
	return &Factory{}
}

// Create returns the appropriate strategy implementation based on the type
func (f *Factory) Create(splitType Type) (Strategy, error) {
	switch splitType {
	case TypeEqually:
		return &EquallyStrategy{}, nil
	case TypePercentages:
		return &PercentageStrategy{}, nil
	case TypeShares:
		return &SharesStrategy{}, nil
	case TypeExact:
		return &ExactStrategy{splitType: TypeExact}, nil
	case TypeAdjustments:
		// Adjustments are entered as final per-person amounts in the app,
		// so they validate and compute exactly like exact amounts.
		return &ExactStrategy{splitType: TypeAdjustments}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSplitType, splitType)
	}
}

// CreateFromString creates a strategy from a string type (useful for API requests)
func (f *Factory) CreateFromString(splitType string) (Strategy, error) {
	return f.Create(Type(splitType))
}

var (
	ErrUnknownSplitType     = errors.New("unknown split type")
	ErrNoParticipants       = errors.New("at least one participant is required")
	ErrInvalidTotal         = errors.New("total amount must be a positive finite number")
	ErrInvalidPercentages   = errors.New("percentages must sum to 100")
	ErrInvalidExactAmounts  = errors.New("amounts must sum to the total")
	ErrNegativeAmount       = errors.New("amounts cannot be negative")
	ErrMissingPercentage    = errors.New("percentage value required for all participants")
	ErrMissingShares        = errors.New("share count required for all participants")
	ErrMissingExactAmount   = errors.New("amount required for all participants")
	ErrPercentageOutOfRange = errors.New("percentage must be between 0 and 100")
	ErrZeroShares           = errors.New("total share count must be greater than zero")
)

// roundToCents rounds half-up to 2 decimal places. This is the single
// rounding rule for the whole calculator: every share is rounded with it,
// and whatever cents the rounding leaves over are assigned to one
// designated participant so the shares always close to the total exactly.
func roundToCents(value float64) float64 {
	return math.Round(value*100) / 100
}

// validateTotal rejects non-positive, NaN and infinite totals
func validateTotal(totalAmount float64) error {
	if math.IsNaN(totalAmount) || math.IsInf(totalAmount, 0) || totalAmount <= 0 {
		return ErrInvalidTotal
	}
	return nil
}
