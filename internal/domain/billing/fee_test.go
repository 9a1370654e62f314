//go:build unit

package billing_test

import (
	"testing"
	"time"

	"parkgate/internal/domain/billing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testNow      = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	testSchedule = billing.PriceSchedule{
		PerHour:  20000,
		PerDay:   150000,
		PerMonth: 2500000,
	}
)

func checkOut(t time.Time) *time.Time {
	return &t
}

func TestCalculate_WalkinTariffs(t *testing.T) {
	cases := []struct {
		name        string
		stay        time.Duration
		schedule    billing.PriceSchedule
		wantAmount  billing.Money
		wantMinutes int64
		wantTiers   []billing.TierKind
	}{
		{
			name:        "zero duration bills minimum one hour",
			stay:        0,
			schedule:    testSchedule,
			wantAmount:  20000,
			wantMinutes: 0,
			wantTiers:   []billing.TierKind{billing.TierHour},
		},
		{
			name:        "partial minute rounds up to a full hour",
			stay:        30 * time.Second,
			schedule:    testSchedule,
			wantAmount:  20000,
			wantMinutes: 1,
			wantTiers:   []billing.TierKind{billing.TierHour},
		},
		{
			name:        "partial hour rounds up",
			stay:        2*time.Hour + 30*time.Minute,
			schedule:    testSchedule,
			wantAmount:  60000,
			wantMinutes: 150,
			wantTiers:   []billing.TierKind{billing.TierHour},
		},
		{
			name:        "exactly 24h bills one day with no hour leakage",
			stay:        24 * time.Hour,
			schedule:    testSchedule,
			wantAmount:  150000,
			wantMinutes: 1440,
			wantTiers:   []billing.TierKind{billing.TierDay},
		},
		{
			name:        "24h01m bills one day plus one hour",
			stay:        24*time.Hour + time.Minute,
			schedule:    testSchedule,
			wantAmount:  170000,
			wantMinutes: 1441,
			wantTiers:   []billing.TierKind{billing.TierDay, billing.TierHour},
		},
		{
			name:        "23h48m costs one day, not 24 hourly blocks",
			stay:        23*time.Hour + 48*time.Minute,
			schedule:    testSchedule,
			wantAmount:  150000,
			wantMinutes: 1428,
			wantTiers:   []billing.TierKind{billing.TierDay},
		},
		{
			name:        "26h30m bills one day and three hours",
			stay:        26*time.Hour + 30*time.Minute,
			schedule:    testSchedule,
			wantAmount:  210000,
			wantMinutes: 1590,
			wantTiers:   []billing.TierKind{billing.TierDay, billing.TierHour},
		},
		{
			name:        "31 days bills one month and one day",
			stay:        31 * 24 * time.Hour,
			schedule:    testSchedule,
			wantAmount:  2650000,
			wantMinutes: 31 * 24 * 60,
			wantTiers:   []billing.TierKind{billing.TierMonth, billing.TierDay},
		},
		{
			name:        "two whole months",
			stay:        60 * 24 * time.Hour,
			schedule:    testSchedule,
			wantAmount:  5000000,
			wantMinutes: 60 * 24 * 60,
			wantTiers:   []billing.TierKind{billing.TierMonth},
		},
		{
			name:        "unset month rate falls through to days",
			stay:        31 * 24 * time.Hour,
			schedule:    billing.PriceSchedule{PerHour: 20000, PerDay: 150000},
			wantAmount:  31 * 150000,
			wantMinutes: 31 * 24 * 60,
			wantTiers:   []billing.TierKind{billing.TierDay},
		},
		{
			name:        "unset day rate bills whole stay in hours",
			stay:        26*time.Hour + 30*time.Minute,
			schedule:    billing.PriceSchedule{PerHour: 20000},
			wantAmount:  27 * 20000,
			wantMinutes: 1590,
			wantTiers:   []billing.TierKind{billing.TierHour},
		},
		{
			name:        "all rates zero is free parking, not an error",
			stay:        5 * time.Hour,
			schedule:    billing.PriceSchedule{},
			wantAmount:  0,
			wantMinutes: 300,
			wantTiers:   nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			schedule := tc.schedule
			result, err := billing.Calculate(billing.Request{
				CheckInAt:  testNow,
				CheckOutAt: checkOut(testNow.Add(tc.stay)),
				Now:        testNow.Add(tc.stay),
				Schedule:   &schedule,
			})
			require.NoError(t, err)
			require.NotNil(t, result)

			assert.Equal(t, tc.wantAmount, result.AmountDue)
			assert.Equal(t, tc.wantMinutes, result.BillableMinutes)

			kinds := make([]billing.TierKind, len(result.Breakdown))
			var sum billing.Money
			for i, item := range result.Breakdown {
				kinds[i] = item.Kind
				assert.Positive(t, item.Quantity, "no zero-quantity line items")
				assert.Equal(t, billing.Money(item.Quantity)*item.UnitRate, item.Subtotal)
				assert.NotEmpty(t, item.Description)
				sum += item.Subtotal
			}
			if tc.wantTiers == nil {
				assert.Empty(t, kinds)
			} else {
				assert.Equal(t, tc.wantTiers, kinds)
			}
			assert.Equal(t, result.AmountDue, sum, "subtotals must sum to the total exactly")
		})
	}
}

func TestCalculate_ContractExemption(t *testing.T) {
	t.Run("active contract is free regardless of duration", func(t *testing.T) {
		schedule := testSchedule
		result, err := billing.Calculate(billing.Request{
			CheckInAt:  testNow.Add(-90 * 24 * time.Hour),
			CheckOutAt: checkOut(testNow),
			Now:        testNow,
			Schedule:   &schedule,
			Contract:   &billing.ContractCover{EndsAt: testNow.Add(24 * time.Hour)},
		})
		require.NoError(t, err)

		assert.Equal(t, billing.Money(0), result.AmountDue)
		require.Len(t, result.Breakdown, 1)
		assert.Equal(t, billing.TierContract, result.Breakdown[0].Kind)
		assert.Contains(t, result.Breakdown[0].Description, "hợp đồng")
	})

	t.Run("contract expiring exactly now is no longer active", func(t *testing.T) {
		schedule := testSchedule
		result, err := billing.Calculate(billing.Request{
			CheckInAt:  testNow.Add(-2 * time.Hour),
			CheckOutAt: checkOut(testNow),
			Now:        testNow,
			Schedule:   &schedule,
			Contract:   &billing.ContractCover{EndsAt: testNow},
		})
		require.NoError(t, err)

		assert.Equal(t, billing.Money(40000), result.AmountDue)
	})

	t.Run("expired contract bills as walk-in, never free", func(t *testing.T) {
		schedule := testSchedule
		result, err := billing.Calculate(billing.Request{
			CheckInAt:  testNow.Add(-3 * time.Hour),
			CheckOutAt: checkOut(testNow),
			Now:        testNow,
			Schedule:   &schedule,
			Contract:   &billing.ContractCover{EndsAt: testNow.Add(-24 * time.Hour)},
		})
		require.NoError(t, err)

		assert.Equal(t, billing.Money(60000), result.AmountDue)
		require.NotEmpty(t, result.Breakdown)
		assert.Equal(t, billing.TierHour, result.Breakdown[0].Kind)
	})
}

func TestCalculate_EstimateMode(t *testing.T) {
	// No checkout yet: the stay is priced against the injected now.
	schedule := testSchedule
	result, err := billing.Calculate(billing.Request{
		CheckInAt: testNow,
		Now:       testNow.Add(90 * time.Minute),
		Schedule:  &schedule,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(90), result.BillableMinutes)
	assert.Equal(t, billing.Money(40000), result.AmountDue)
}

func TestCalculate_Errors(t *testing.T) {
	t.Run("checkout before checkin", func(t *testing.T) {
		schedule := testSchedule
		result, err := billing.Calculate(billing.Request{
			CheckInAt:  testNow,
			CheckOutAt: checkOut(testNow.Add(-time.Minute)),
			Now:        testNow,
			Schedule:   &schedule,
		})
		require.Error(t, err)
		assert.Nil(t, result, "no partial result alongside an error")

		var invalid *billing.InvalidDurationError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, testNow, invalid.CheckInAt)
		assert.Equal(t, testNow.Add(-time.Minute), invalid.CheckOutAt)
	})

	t.Run("missing schedule", func(t *testing.T) {
		result, err := billing.Calculate(billing.Request{
			CheckInAt:  testNow,
			CheckOutAt: checkOut(testNow.Add(time.Hour)),
			Now:        testNow,
		})
		require.ErrorIs(t, err, billing.ErrMissingSchedule)
		assert.Nil(t, result)
	})
}

func TestCalculate_Monotonicity(t *testing.T) {
	schedule := testSchedule
	var prev billing.Money
	for minutes := int64(0); minutes <= 50*24*60; minutes += 17 {
		result, err := billing.Calculate(billing.Request{
			CheckInAt:  testNow,
			CheckOutAt: checkOut(testNow.Add(time.Duration(minutes) * time.Minute)),
			Now:        testNow,
			Schedule:   &schedule,
		})
		require.NoError(t, err)
		require.GreaterOrEqual(t, result.AmountDue, prev,
			"fee must not decrease as the stay grows (at %d minutes)", minutes)
		require.Positive(t, result.AmountDue, "hourly rate set, so every stay costs something")
		prev = result.AmountDue
	}
}

func TestNewPriceSchedule(t *testing.T) {
	t.Run("rejects negative rates", func(t *testing.T) {
		_, err := billing.NewPriceSchedule(-1, 0, 0)
		assert.ErrorIs(t, err, billing.ErrNegativeRate)
	})

	t.Run("all-zero schedule is valid", func(t *testing.T) {
		schedule, err := billing.NewPriceSchedule(0, 0, 0)
		require.NoError(t, err)
		assert.NotNil(t, schedule)
	})
}

func TestFeeResult_Note(t *testing.T) {
	schedule := testSchedule
	result, err := billing.Calculate(billing.Request{
		CheckInAt:  time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		CheckOutAt: checkOut(time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC)),
		Now:        time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC),
		Schedule:   &schedule,
	})
	require.NoError(t, err)

	assert.Equal(t, "1 ngày × 150000đ, 3 giờ × 20000đ", result.Note())
}
