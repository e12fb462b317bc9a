package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store with the same all-or-nothing semantics
// as the Postgres repository.
type fakeStore struct {
	balances    map[int64]float64
	names       map[int64]string
	settlements []*Settlement
	applyCalls  int
	nextID      int64
}

func newFakeStore(people map[int64]float64) *fakeStore {
	names := make(map[int64]string, len(people))
	for id := range people {
		names[id] = "person"
	}
	return &fakeStore{balances: people, names: names}
}

func (f *fakeStore) PersonExists(_ context.Context, personID int64) (bool, error) {
	_, ok := f.balances[personID]
	return ok, nil
}

func (f *fakeStore) ApplyDeltas(_ context.Context, deltas []Delta) error {
	f.applyCalls++
	for _, d := range deltas {
		if _, ok := f.balances[d.PersonID]; !ok {
			return ErrParticipantNotFound
		}
	}
	for _, d := range deltas {
		f.balances[d.PersonID] += d.Amount
	}
	return nil
}

func (f *fakeStore) GetBalance(_ context.Context, personID int64) (*Balance, error) {
	amount, ok := f.balances[personID]
	if !ok {
		return nil, nil
	}
	return &Balance{PersonID: personID, Name: f.names[personID], Amount: amount}, nil
}

func (f *fakeStore) ListBalances(_ context.Context) ([]*Balance, error) {
	var balances []*Balance
	for id, amount := range f.balances {
		balances = append(balances, &Balance{PersonID: id, Name: f.names[id], Amount: amount})
	}
	return balances, nil
}

func (f *fakeStore) ClearBalance(_ context.Context, personID int64, reference string) (*Settlement, error) {
	cleared := f.balances[personID]
	f.balances[personID] = 0
	f.nextID++
	settlement := &Settlement{
		ID:            f.nextID,
		Reference:     reference,
		PersonID:      personID,
		ClearedAmount: cleared,
		CreatedAt:     time.Now(),
	}
	f.settlements = append(f.settlements, settlement)
	return settlement, nil
}

func (f *fakeStore) ListSettlements(_ context.Context, limit, offset int) ([]*Settlement, int, error) {
	return f.settlements, len(f.settlements), nil
}

func (f *fakeStore) snapshot() map[int64]float64 {
	copied := make(map[int64]float64, len(f.balances))
	for id, amount := range f.balances {
		copied[id] = amount
	}
	return copied
}

func (f *fakeStore) totalBalance() float64 {
	var total float64
	for _, amount := range f.balances {
		total += amount
	}
	return total
}

func TestStageDeltas(t *testing.T) {
	t.Run("payer gains what the others owe", func(t *testing.T) {
		deltas := StageDeltas(1, []Share{
			{PersonID: 1, Amount: 30},
			{PersonID: 2, Amount: 30},
			{PersonID: 3, Amount: 30},
		})
		require.Len(t, deltas, 3)
		assert.Equal(t, Delta{PersonID: 2, Amount: -30}, deltas[0])
		assert.Equal(t, Delta{PersonID: 3, Amount: -30}, deltas[1])
		assert.Equal(t, Delta{PersonID: 1, Amount: 60}, deltas[2])
	})

	t.Run("payer outside the participant list gains the full total", func(t *testing.T) {
		deltas := StageDeltas(9, []Share{
			{PersonID: 1, Amount: 25},
			{PersonID: 2, Amount: 25},
		})
		require.Len(t, deltas, 3)
		assert.Equal(t, Delta{PersonID: 9, Amount: 50}, deltas[2])
	})

	t.Run("payer as the only participant stages nothing", func(t *testing.T) {
		deltas := StageDeltas(1, []Share{{PersonID: 1, Amount: 40}})
		assert.Empty(t, deltas)
	})

	t.Run("deltas sum to zero", func(t *testing.T) {
		deltas := StageDeltas(1, []Share{
			{PersonID: 1, Amount: 33.34},
			{PersonID: 2, Amount: 33.33},
			{PersonID: 3, Amount: 33.33},
		})
		var sum float64
		for _, d := range deltas {
			sum += d.Amount
		}
		assert.InDelta(t, 0, sum, 0.001)
	})
}

func TestApplySplit(t *testing.T) {
	t.Run("two-person bill moves both balances", func(t *testing.T) {
		// Total $30 between payer P(1) and Q(2), $15 each
		store := newFakeStore(map[int64]float64{1: 0, 2: 0})
		service := NewService(store)

		err := service.ApplySplit(context.Background(), 1, []Share{
			{PersonID: 1, Amount: 15},
			{PersonID: 2, Amount: 15},
		})
		require.NoError(t, err)
		assert.InDelta(t, 15, store.balances[1], 0.001)
		assert.InDelta(t, -15, store.balances[2], 0.001)
	})

	t.Run("total balance across people is conserved", func(t *testing.T) {
		store := newFakeStore(map[int64]float64{1: 12.50, 2: -4, 3: 0})
		service := NewService(store)

		err := service.ApplySplit(context.Background(), 2, []Share{
			{PersonID: 1, Amount: 20},
			{PersonID: 2, Amount: 20},
			{PersonID: 3, Amount: 20},
		})
		require.NoError(t, err)
		assert.InDelta(t, 8.50, store.totalBalance(), 0.001)
	})

	t.Run("missing participant leaves every balance untouched", func(t *testing.T) {
		store := newFakeStore(map[int64]float64{1: 10, 2: -5})
		service := NewService(store)
		before := store.snapshot()

		err := service.ApplySplit(context.Background(), 1, []Share{
			{PersonID: 1, Amount: 20},
			{PersonID: 2, Amount: 20},
			{PersonID: 404, Amount: 20},
		})
		require.ErrorIs(t, err, ErrParticipantNotFound)
		assert.Equal(t, before, store.snapshot())
		assert.Zero(t, store.applyCalls, "store must not be asked to apply anything")
	})

	t.Run("missing payer also aborts", func(t *testing.T) {
		store := newFakeStore(map[int64]float64{2: 0})
		service := NewService(store)

		err := service.ApplySplit(context.Background(), 404, []Share{
			{PersonID: 2, Amount: 10},
		})
		require.ErrorIs(t, err, ErrParticipantNotFound)
		assert.InDelta(t, 0, store.balances[2], 0.001)
	})

	t.Run("payer-only split is a no-op", func(t *testing.T) {
		store := newFakeStore(map[int64]float64{1: 3})
		service := NewService(store)

		err := service.ApplySplit(context.Background(), 1, []Share{
			{PersonID: 1, Amount: 50},
		})
		require.NoError(t, err)
		assert.InDelta(t, 3, store.balances[1], 0.001)
		assert.Zero(t, store.applyCalls)
	})
}

func TestSettle(t *testing.T) {
	t.Run("settle zeroes the balance and records what was cleared", func(t *testing.T) {
		store := newFakeStore(map[int64]float64{2: -15})
		service := NewService(store)

		settlement, err := service.Settle(context.Background(), 2)
		require.NoError(t, err)
		assert.InDelta(t, 0, store.balances[2], 0.001)
		assert.InDelta(t, -15, settlement.ClearedAmount, 0.001)
		assert.NotEmpty(t, settlement.Reference)
	})

	t.Run("settle is idempotent", func(t *testing.T) {
		store := newFakeStore(map[int64]float64{2: -15})
		service := NewService(store)

		_, err := service.Settle(context.Background(), 2)
		require.NoError(t, err)

		again, err := service.Settle(context.Background(), 2)
		require.NoError(t, err)
		assert.InDelta(t, 0, store.balances[2], 0.001)
		assert.InDelta(t, 0, again.ClearedAmount, 0.001)
	})

	t.Run("settling an unknown person fails", func(t *testing.T) {
		store := newFakeStore(map[int64]float64{})
		service := NewService(store)

		_, err := service.Settle(context.Background(), 404)
		assert.ErrorIs(t, err, ErrPersonNotFound)
	})

	t.Run("each settlement gets a distinct reference", func(t *testing.T) {
		store := newFakeStore(map[int64]float64{2: -5})
		service := NewService(store)

		first, err := service.Settle(context.Background(), 2)
		require.NoError(t, err)
		second, err := service.Settle(context.Background(), 2)
		require.NoError(t, err)
		assert.NotEqual(t, first.Reference, second.Reference)
	})
}

func TestGetBalance(t *testing.T) {
	store := newFakeStore(map[int64]float64{1: 7.25})
	service := NewService(store)

	balance, err := service.GetBalance(context.Background(), 1)
	require.NoError(t, err)
	assert.InDelta(t, 7.25, balance.Amount, 0.001)

	_, err = service.GetBalance(context.Background(), 404)
	assert.ErrorIs(t, err, ErrPersonNotFound)
}
