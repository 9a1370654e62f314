//go:build unit

package session_test

import (
	"testing"
	"time"

	"parkgate/internal/domain/billing"
	"parkgate/internal/domain/session"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPlate(t *testing.T, raw string) session.LicensePlate {
	t.Helper()
	plate, err := session.NewLicensePlate(raw)
	require.NoError(t, err)
	return plate
}

func TestNewLicensePlate(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		want  string
		errIs error
	}{
		{name: "uppercases and strips separators", raw: "51f-123 45", want: "51F12345"},
		{name: "strips dots", raw: "51F-123.45", want: "51F12345"},
		{name: "already normalized", raw: "29A99999", want: "29A99999"},
		{name: "empty", raw: "", errIs: session.ErrEmptyLicensePlate},
		{name: "separators only", raw: " - - ", errIs: session.ErrEmptyLicensePlate},
		{name: "too long", raw: "ABCDEFGH123456789", errIs: session.ErrLicensePlateTooLong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plate, err := session.NewLicensePlate(tc.raw)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, plate.String()); diff != "" {
				t.Errorf("plate mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParkingSession_Finalize(t *testing.T) {
	checkIn := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(3 * time.Hour)
	fee := &billing.FeeResult{
		AmountDue:       60000,
		BillableMinutes: 180,
		Breakdown: []billing.LineItem{
			{Kind: billing.TierHour, Description: "3 giờ × 20000đ", Quantity: 3, UnitRate: 20000, Subtotal: 60000},
		},
	}

	t.Run("records checkout, amount and note once", func(t *testing.T) {
		s := session.NewParkingSession(mustPlate(t, "51F12345"), uuid.New(), session.RentalWalkin, checkIn)
		require.True(t, s.IsOpen())

		require.NoError(t, s.Finalize(checkOut, fee))

		assert.True(t, s.IsFinalized())
		assert.True(t, s.IsPaid())
		require.NotNil(t, s.CheckOutAt())
		assert.Equal(t, checkOut, *s.CheckOutAt())
		require.NotNil(t, s.AmountDue())
		assert.Equal(t, billing.Money(60000), *s.AmountDue())
		require.NotNil(t, s.FeeNote())
		assert.Equal(t, "3 giờ × 20000đ", *s.FeeNote())
	})

	t.Run("second finalize is a conflict", func(t *testing.T) {
		s := session.NewParkingSession(mustPlate(t, "51F12345"), uuid.New(), session.RentalWalkin, checkIn)
		require.NoError(t, s.Finalize(checkOut, fee))

		assert.ErrorIs(t, s.Finalize(checkOut.Add(time.Hour), fee), session.ErrAlreadyFinalized)
	})

	t.Run("nil fee result rejected", func(t *testing.T) {
		s := session.NewParkingSession(mustPlate(t, "51F12345"), uuid.New(), session.RentalWalkin, checkIn)

		assert.ErrorIs(t, s.Finalize(checkOut, nil), session.ErrNilFeeResult)
	})
}

func TestNewRentalType(t *testing.T) {
	for _, valid := range []string{"walkin", "contract"} {
		rt, err := session.NewRentalType(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, rt.String())
	}

	_, err := session.NewRentalType("monthly")
	assert.ErrorIs(t, err, session.ErrInvalidRentalType)
}
