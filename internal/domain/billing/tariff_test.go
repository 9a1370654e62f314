//go:build unit

package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectTiers(t *testing.T) {
	full := PriceSchedule{PerHour: 20000, PerDay: 150000, PerMonth: 2500000}

	cases := []struct {
		name     string
		minutes  int64
		schedule PriceSchedule
		want     []tierSelection
	}{
		{
			name:     "zero minutes, hourly minimum",
			minutes:  0,
			schedule: full,
			want:     []tierSelection{{TierHour, 1}},
		},
		{
			name:     "zero minutes, no hourly rate",
			minutes:  0,
			schedule: PriceSchedule{PerDay: 150000},
			want:     nil,
		},
		{
			name:     "59 minutes rounds to one hour",
			minutes:  59,
			schedule: full,
			want:     []tierSelection{{TierHour, 1}},
		},
		{
			name:     "exactly one day",
			minutes:  minutesPerDay,
			schedule: full,
			want:     []tierSelection{{TierDay, 1}},
		},
		{
			name:     "one day and one minute",
			minutes:  minutesPerDay + 1,
			schedule: full,
			want:     []tierSelection{{TierDay, 1}, {TierHour, 1}},
		},
		{
			name:     "month day and hour blocks",
			minutes:  minutesPerMonth + 2*minutesPerDay + 61,
			schedule: full,
			want:     []tierSelection{{TierMonth, 1}, {TierDay, 2}, {TierHour, 2}},
		},
		{
			name:     "month rate unset falls to days",
			minutes:  minutesPerMonth,
			schedule: PriceSchedule{PerHour: 20000, PerDay: 150000},
			want:     []tierSelection{{TierDay, 30}},
		},
		{
			name:     "day rate unset falls to hours",
			minutes:  2*minutesPerDay + 30,
			schedule: PriceSchedule{PerHour: 20000},
			want:     []tierSelection{{TierHour, 49}},
		},
		{
			name:     "hour remainder dropped when hour rate unset",
			minutes:  minutesPerDay + 30,
			schedule: PriceSchedule{PerDay: 150000},
			want:     []tierSelection{{TierDay, 1}},
		},
		{
			name:     "hour block costlier than a day promotes to a day",
			minutes:  23*minutesPerHour + 48,
			schedule: full,
			want:     []tierSelection{{TierDay, 1}},
		},
		{
			name:     "day block costlier than a month promotes to a month",
			minutes:  17 * minutesPerDay,
			schedule: full,
			want:     []tierSelection{{TierMonth, 1}},
		},
		{
			name:     "promotion cascades through the day tier",
			minutes:  29*minutesPerDay + 23*minutesPerHour + 48,
			schedule: full,
			want:     []tierSelection{{TierMonth, 1}},
		},
		{
			name:     "no day rate, hour block capped against the month",
			minutes:  6 * minutesPerDay,
			schedule: PriceSchedule{PerHour: 20000, PerMonth: 2500000},
			want:     []tierSelection{{TierMonth, 1}},
		},
		{
			name:     "hour block exactly at the day rate stays hourly",
			minutes:  3 * minutesPerHour,
			schedule: PriceSchedule{PerHour: 50000, PerDay: 150000},
			want:     []tierSelection{{TierHour, 3}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, selectTiers(tc.minutes, tc.schedule))
		})
	}
}
