//go:build unit

package contract_test

import (
	"testing"
	"time"

	"parkgate/internal/domain/contract"
	"parkgate/internal/domain/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContract_StatusIsDerived(t *testing.T) {
	plate, err := session.NewLicensePlate("29A12345")
	require.NoError(t, err)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 6, 0)

	c, err := contract.NewContract(plate, uuid.New(), "Nguyễn Văn A", start, end)
	require.NoError(t, err)

	t.Run("active strictly before end date", func(t *testing.T) {
		assert.True(t, c.IsActiveAt(end.Add(-time.Second)))
		assert.Equal(t, contract.StatusActive, c.StatusAt(end.Add(-time.Second)))
	})

	t.Run("expired at the exact end date", func(t *testing.T) {
		assert.False(t, c.IsActiveAt(end))
		assert.Equal(t, contract.StatusExpired, c.StatusAt(end))
	})

	t.Run("cover carries the end date to the fee engine", func(t *testing.T) {
		cover := c.Cover()
		require.NotNil(t, cover)
		assert.Equal(t, end, cover.EndsAt)
	})
}

func TestNewContract_InvalidPeriod(t *testing.T) {
	plate, err := session.NewLicensePlate("29A12345")
	require.NoError(t, err)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err = contract.NewContract(plate, uuid.New(), "Nguyễn Văn A", start, start)
	assert.ErrorIs(t, err, contract.ErrInvalidPeriod)
}
