package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func sumOutputs(outputs []Output) float64 {
	var sum float64
	for _, o := range outputs {
		sum += o.Amount
	}
	return sum
}

func TestEquallyStrategy(t *testing.T) {
	strategy := &EquallyStrategy{}

	t.Run("90 split three ways", func(t *testing.T) {
		outputs, err := strategy.Calculate(90, []Input{
			{PersonID: 1}, {PersonID: 2}, {PersonID: 3},
		})
		require.NoError(t, err)
		require.Len(t, outputs, 3)
		for _, o := range outputs {
			assert.InDelta(t, 30.00, o.Amount, 0.001)
		}
		assert.InDelta(t, 90.00, sumOutputs(outputs), 0.001)
	})

	t.Run("remainder cents go to the first participant", func(t *testing.T) {
		outputs, err := strategy.Calculate(100, []Input{
			{PersonID: 1}, {PersonID: 2}, {PersonID: 3},
		})
		require.NoError(t, err)
		assert.InDelta(t, 33.34, outputs[0].Amount, 0.001)
		assert.InDelta(t, 33.33, outputs[1].Amount, 0.001)
		assert.InDelta(t, 33.33, outputs[2].Amount, 0.001)
		assert.InDelta(t, 100.00, sumOutputs(outputs), 0.001)
	})

	t.Run("single participant owes the whole total", func(t *testing.T) {
		outputs, err := strategy.Calculate(42.50, []Input{{PersonID: 7}})
		require.NoError(t, err)
		require.Len(t, outputs, 1)
		assert.InDelta(t, 42.50, outputs[0].Amount, 0.001)
	})

	t.Run("no participants", func(t *testing.T) {
		_, err := strategy.Calculate(90, nil)
		assert.ErrorIs(t, err, ErrNoParticipants)
	})

	t.Run("non-positive total", func(t *testing.T) {
		_, err := strategy.Calculate(0, []Input{{PersonID: 1}})
		assert.ErrorIs(t, err, ErrInvalidTotal)
	})
}

func TestPercentageStrategy(t *testing.T) {
	strategy := &PercentageStrategy{}

	t.Run("100 split 50/30/20", func(t *testing.T) {
		outputs, err := strategy.Calculate(100, []Input{
			{PersonID: 1, Percentage: floatPtr(50)},
			{PersonID: 2, Percentage: floatPtr(30)},
			{PersonID: 3, Percentage: floatPtr(20)},
		})
		require.NoError(t, err)
		assert.InDelta(t, 50.00, outputs[0].Amount, 0.001)
		assert.InDelta(t, 30.00, outputs[1].Amount, 0.001)
		assert.InDelta(t, 20.00, outputs[2].Amount, 0.001)
	})

	t.Run("percentages under 100 are rejected with the actual total", func(t *testing.T) {
		_, err := strategy.Calculate(100, []Input{
			{PersonID: 1, Percentage: floatPtr(50)},
			{PersonID: 2, Percentage: floatPtr(30)},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidPercentages)
		assert.Contains(t, err.Error(), "80.0%")
	})

	t.Run("rounding remainder lands on the last participant", func(t *testing.T) {
		outputs, err := strategy.Calculate(100, []Input{
			{PersonID: 1, Percentage: floatPtr(33.33)},
			{PersonID: 2, Percentage: floatPtr(33.33)},
			{PersonID: 3, Percentage: floatPtr(33.34)},
		})
		require.NoError(t, err)
		assert.InDelta(t, 100.00, sumOutputs(outputs), 0.001)
	})

	t.Run("tolerates the 0.1 epsilon", func(t *testing.T) {
		outputs, err := strategy.Calculate(100, []Input{
			{PersonID: 1, Percentage: floatPtr(50.05)},
			{PersonID: 2, Percentage: floatPtr(50)},
		})
		require.NoError(t, err)
		assert.InDelta(t, 100.00, sumOutputs(outputs), 0.001)
	})

	t.Run("missing percentage", func(t *testing.T) {
		_, err := strategy.Calculate(100, []Input{
			{PersonID: 1, Percentage: floatPtr(100)},
			{PersonID: 2},
		})
		assert.ErrorIs(t, err, ErrMissingPercentage)
	})

	t.Run("percentage out of range", func(t *testing.T) {
		_, err := strategy.Calculate(100, []Input{
			{PersonID: 1, Percentage: floatPtr(150)},
			{PersonID: 2, Percentage: floatPtr(-50)},
		})
		assert.ErrorIs(t, err, ErrPercentageOutOfRange)
	})
}

func TestSharesStrategy(t *testing.T) {
	strategy := &SharesStrategy{}

	t.Run("60 split 1:2", func(t *testing.T) {
		outputs, err := strategy.Calculate(60, []Input{
			{PersonID: 1, Shares: floatPtr(1)},
			{PersonID: 2, Shares: floatPtr(2)},
		})
		require.NoError(t, err)
		assert.InDelta(t, 20.00, outputs[0].Amount, 0.001)
		assert.InDelta(t, 40.00, outputs[1].Amount, 0.001)
	})

	t.Run("zero-share participant owes nothing", func(t *testing.T) {
		outputs, err := strategy.Calculate(60, []Input{
			{PersonID: 1, Shares: floatPtr(0)},
			{PersonID: 2, Shares: floatPtr(3)},
		})
		require.NoError(t, err)
		assert.InDelta(t, 0.00, outputs[0].Amount, 0.001)
		assert.InDelta(t, 60.00, outputs[1].Amount, 0.001)
	})

	t.Run("shares always close to the total", func(t *testing.T) {
		outputs, err := strategy.Calculate(100, []Input{
			{PersonID: 1, Shares: floatPtr(1)},
			{PersonID: 2, Shares: floatPtr(1)},
			{PersonID: 3, Shares: floatPtr(1)},
		})
		require.NoError(t, err)
		assert.InDelta(t, 100.00, sumOutputs(outputs), 0.001)
	})

	t.Run("all zero shares rejected", func(t *testing.T) {
		_, err := strategy.Calculate(60, []Input{
			{PersonID: 1, Shares: floatPtr(0)},
			{PersonID: 2, Shares: floatPtr(0)},
		})
		assert.ErrorIs(t, err, ErrZeroShares)
	})

	t.Run("missing shares", func(t *testing.T) {
		_, err := strategy.Calculate(60, []Input{{PersonID: 1}})
		assert.ErrorIs(t, err, ErrMissingShares)
	})
}

func TestExactStrategy(t *testing.T) {
	strategy := &ExactStrategy{splitType: TypeExact}

	t.Run("caller amounts pass through", func(t *testing.T) {
		outputs, err := strategy.Calculate(75.50, []Input{
			{PersonID: 1, Amount: floatPtr(25.50)},
			{PersonID: 2, Amount: floatPtr(50.00)},
		})
		require.NoError(t, err)
		assert.InDelta(t, 25.50, outputs[0].Amount, 0.001)
		assert.InDelta(t, 50.00, outputs[1].Amount, 0.001)
	})

	t.Run("amounts off by more than a cent are rejected", func(t *testing.T) {
		_, err := strategy.Calculate(100, []Input{
			{PersonID: 1, Amount: floatPtr(40)},
			{PersonID: 2, Amount: floatPtr(40)},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidExactAmounts)
		assert.Contains(t, err.Error(), "80.00")
		assert.Contains(t, err.Error(), "100.00")
	})

	t.Run("a one-cent drift is tolerated", func(t *testing.T) {
		_, err := strategy.Calculate(100, []Input{
			{PersonID: 1, Amount: floatPtr(50.00)},
			{PersonID: 2, Amount: floatPtr(49.99)},
		})
		assert.NoError(t, err)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := strategy.Calculate(100, []Input{
			{PersonID: 1, Amount: floatPtr(150)},
			{PersonID: 2, Amount: floatPtr(-50)},
		})
		assert.ErrorIs(t, err, ErrNegativeAmount)
	})

	t.Run("missing amount", func(t *testing.T) {
		_, err := strategy.Calculate(100, []Input{{PersonID: 1}})
		assert.ErrorIs(t, err, ErrMissingExactAmount)
	})
}

func TestFactory(t *testing.T) {
	factory := NewSplitStrategyFactory()

	tests := []struct {
		splitType Type
		wantType  Type
	}{
		{TypeEqually, TypeEqually},
		{TypePercentages, TypePercentages},
		{TypeShares, TypeShares},
		{TypeExact, TypeExact},
		{TypeAdjustments, TypeAdjustments},
	}

	for _, tt := range tests {
		t.Run(string(tt.splitType), func(t *testing.T) {
			strategy, err := factory.Create(tt.splitType)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, strategy.Type())
		})
	}

	t.Run("unknown type", func(t *testing.T) {
		_, err := factory.CreateFromString("VIBES")
		assert.ErrorIs(t, err, ErrUnknownSplitType)
	})

	t.Run("adjustments compute like exact amounts", func(t *testing.T) {
		strategy, err := factory.Create(TypeAdjustments)
		require.NoError(t, err)
		outputs, err := strategy.Calculate(30, []Input{
			{PersonID: 1, Amount: floatPtr(10)},
			{PersonID: 2, Amount: floatPtr(20)},
		})
		require.NoError(t, err)
		assert.InDelta(t, 10.00, outputs[0].Amount, 0.001)
		assert.InDelta(t, 20.00, outputs[1].Amount, 0.001)
	})
}
