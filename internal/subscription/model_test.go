package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextRenewal(t *testing.T) {
	tests := []struct {
		name  string
		sub   Subscription
		now   time.Time
		want  time.Time
	}{
		{
			name: "monthly renews next month",
			sub:  Subscription{Cycle: CycleMonthly, StartDate: date(2026, time.January, 15)},
			now:  date(2026, time.March, 20),
			want: date(2026, time.April, 15),
		},
		{
			name: "renewal today counts as passed",
			sub:  Subscription{Cycle: CycleMonthly, StartDate: date(2026, time.January, 15)},
			now:  date(2026, time.February, 15),
			want: date(2026, time.March, 15),
		},
		{
			name: "future start date is the next renewal",
			sub:  Subscription{Cycle: CycleYearly, StartDate: date(2027, time.June, 1)},
			now:  date(2026, time.August, 29),
			want: date(2027, time.June, 1),
		},
		{
			name: "weekly steps in sevens",
			sub:  Subscription{Cycle: CycleWeekly, StartDate: date(2026, time.August, 3)},
			now:  date(2026, time.August, 11),
			want: date(2026, time.August, 17),
		},
		{
			name: "quarterly",
			sub:  Subscription{Cycle: CycleQuarterly, StartDate: date(2026, time.January, 1)},
			now:  date(2026, time.February, 1),
			want: date(2026, time.April, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.sub.NextRenewal(tt.now).Equal(tt.want),
				"got %v, want %v", tt.sub.NextRenewal(tt.now), tt.want)
		})
	}
}

func TestDueWithin(t *testing.T) {
	sub := Subscription{Cycle: CycleMonthly, StartDate: date(2026, time.January, 15)}
	now := date(2026, time.August, 1)

	assert.True(t, sub.DueWithin(now, 14), "renewal on the 15th is within 14 days")
	assert.False(t, sub.DueWithin(now, 7), "renewal on the 15th is not within 7 days")
}

func TestMonthlyCost(t *testing.T) {
	assert.InDelta(t, 10, Subscription{Cycle: CycleMonthly, Price: 10}.MonthlyCost(), 0.001)
	assert.InDelta(t, 1, Subscription{Cycle: CycleYearly, Price: 12}.MonthlyCost(), 0.001)
	assert.InDelta(t, 10, Subscription{Cycle: CycleQuarterly, Price: 30}.MonthlyCost(), 0.001)
	assert.InDelta(t, 13, Subscription{Cycle: CycleWeekly, Price: 3}.MonthlyCost(), 0.001)
}

func TestValidCycle(t *testing.T) {
	assert.True(t, ValidCycle(CycleMonthly))
	assert.False(t, ValidCycle("FORTNIGHTLY"))
}
