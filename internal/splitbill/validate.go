package splitbill

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/swiff-app/swiff/internal/splitbill/split"
)

// Form-level errors, checked before the strategy ever runs
var (
	ErrEmptyTitle    = errors.New("title is required")
	ErrInvalidAmount = errors.New("amount must be a positive finite number")
	ErrNoPayer       = errors.New("a payer must be selected")
)

// validationErrs is every error a user can fix by editing the form.
// Anything outside this list aborts the save instead of annotating it.
var validationErrs = []error{
	ErrEmptyTitle,
	ErrInvalidAmount,
	ErrNoPayer,
	split.ErrUnknownSplitType,
	split.ErrNoParticipants,
	split.ErrInvalidTotal,
	split.ErrInvalidPercentages,
	split.ErrInvalidExactAmounts,
	split.ErrNegativeAmount,
	split.ErrMissingPercentage,
	split.ErrMissingShares,
	split.ErrMissingExactAmount,
	split.ErrPercentageOutOfRange,
	split.ErrZeroShares,
}

// IsValidationError reports whether err is user-correctable form input
func IsValidationError(err error) bool {
	for _, v := range validationErrs {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

// ValidateForm runs the checks that gate any commit: non-empty title,
// positive finite amount, a selected payer. Strategy-specific checks are
// the calculator's job.
func ValidateForm(req *CreateSplitBillRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return ErrEmptyTitle
	}
	if math.IsNaN(req.TotalAmount) || math.IsInf(req.TotalAmount, 0) || req.TotalAmount <= 0 {
		return ErrInvalidAmount
	}
	if req.PaidByID <= 0 {
		return ErrNoPayer
	}
	return nil
}

// CheckConfiguration evaluates a bill-in-progress the way the form does on
// every keystroke, returning a validity flag and the inline message to show.
func CheckConfiguration(factory *split.Factory, req *CreateSplitBillRequest) (bool, string) {
	if err := ValidateForm(req); err != nil {
		return false, humanize(err)
	}

	strategy, err := factory.CreateFromString(req.SplitType)
	if err != nil {
		return false, humanize(err)
	}

	inputs := make([]split.Input, len(req.Participants))
	for i, p := range req.Participants {
		inputs[i] = p.ToSplitInput()
	}

	if err := strategy.Validate(req.TotalAmount, inputs); err != nil {
		return false, humanize(err)
	}

	return true, validMessage(strategy.Type(), req)
}

// validMessage phrases a passing configuration per strategy
func validMessage(splitType split.Type, req *CreateSplitBillRequest) string {
	switch splitType {
	case split.TypeEqually:
		return fmt.Sprintf("Split equally between %d people", len(req.Participants))
	case split.TypePercentages:
		return "Percentages add up to 100%"
	case split.TypeShares:
		var totalShares float64
		for _, p := range req.Participants {
			if p.Shares != nil {
				totalShares += *p.Shares
			}
		}
		return fmt.Sprintf("Splitting %g shares", totalShares)
	default:
		return fmt.Sprintf("Amounts add up to $%.2f", req.TotalAmount)
	}
}

// humanize capitalizes an error for inline display
func humanize(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	runes := []rune(msg)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
