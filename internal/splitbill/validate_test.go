package splitbill

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swiff-app/swiff/internal/splitbill/split"
)

func floatPtr(v float64) *float64 {
	return &v
}

func validRequest() *CreateSplitBillRequest {
	return &CreateSplitBillRequest{
		Title:       "Dinner",
		TotalAmount: 90,
		PaidByID:    1,
		SplitType:   string(split.TypeEqually),
		Participants: []*ParticipantInput{
			{PersonID: 1}, {PersonID: 2}, {PersonID: 3},
		},
	}
}

func TestValidateForm(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateSplitBillRequest)
		wantErr error
	}{
		{
			name:   "valid form",
			mutate: func(*CreateSplitBillRequest) {},
		},
		{
			name:    "blank title",
			mutate:  func(r *CreateSplitBillRequest) { r.Title = "   " },
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "zero amount",
			mutate:  func(r *CreateSplitBillRequest) { r.TotalAmount = 0 },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(r *CreateSplitBillRequest) { r.TotalAmount = -5 },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "NaN amount",
			mutate:  func(r *CreateSplitBillRequest) { r.TotalAmount = math.NaN() },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "infinite amount",
			mutate:  func(r *CreateSplitBillRequest) { r.TotalAmount = math.Inf(1) },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "no payer",
			mutate:  func(r *CreateSplitBillRequest) { r.PaidByID = 0 },
			wantErr: ErrNoPayer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			err := ValidateForm(req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCheckConfiguration(t *testing.T) {
	factory := split.NewSplitStrategyFactory()

	t.Run("equal split message", func(t *testing.T) {
		valid, msg := CheckConfiguration(factory, validRequest())
		assert.True(t, valid)
		assert.Equal(t, "Split equally between 3 people", msg)
	})

	t.Run("percentages at 100 are confirmed", func(t *testing.T) {
		req := validRequest()
		req.TotalAmount = 100
		req.SplitType = string(split.TypePercentages)
		req.Participants = []*ParticipantInput{
			{PersonID: 1, Percentage: floatPtr(50)},
			{PersonID: 2, Percentage: floatPtr(30)},
			{PersonID: 3, Percentage: floatPtr(20)},
		}
		valid, msg := CheckConfiguration(factory, req)
		assert.True(t, valid)
		assert.Equal(t, "Percentages add up to 100%", msg)
	})

	t.Run("percentages at 80 report the shortfall", func(t *testing.T) {
		req := validRequest()
		req.TotalAmount = 100
		req.SplitType = string(split.TypePercentages)
		req.Participants = []*ParticipantInput{
			{PersonID: 1, Percentage: floatPtr(50)},
			{PersonID: 2, Percentage: floatPtr(30)},
		}
		valid, msg := CheckConfiguration(factory, req)
		assert.False(t, valid)
		assert.Contains(t, msg, "80.0%")
	})

	t.Run("exact amounts short of the total are rejected", func(t *testing.T) {
		req := validRequest()
		req.TotalAmount = 100
		req.SplitType = string(split.TypeExact)
		req.Participants = []*ParticipantInput{
			{PersonID: 1, Amount: floatPtr(60)},
			{PersonID: 2, Amount: floatPtr(30)},
		}
		valid, msg := CheckConfiguration(factory, req)
		assert.False(t, valid)
		assert.Contains(t, msg, "90.00")
	})

	t.Run("form errors surface before strategy errors", func(t *testing.T) {
		req := validRequest()
		req.Title = ""
		req.Participants = nil
		valid, msg := CheckConfiguration(factory, req)
		assert.False(t, valid)
		assert.Equal(t, "Title is required", msg)
	})

	t.Run("unknown split type", func(t *testing.T) {
		req := validRequest()
		req.SplitType = "RANDOMLY"
		valid, _ := CheckConfiguration(factory, req)
		assert.False(t, valid)
	})
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(ErrEmptyTitle))
	assert.True(t, IsValidationError(split.ErrInvalidPercentages))
	assert.False(t, IsValidationError(assert.AnError))
}
