//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"parkgate/internal/pkg/clock"
	"parkgate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractQueries_GetByPlate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	t.Run("status derived from end date, not storage", func(t *testing.T) {
		tests := []struct {
			name   string
			endsAt time.Time
			want   string
		}{
			{"ends in the future", now.Add(time.Hour), "active"},
			{"ends exactly now", now, "expired"},
			{"ended yesterday", now.Add(-24 * time.Hour), "expired"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				contracts := &fakeContractReadStore{contract: &queries.ContractView{
					ID:           uuid.New(),
					LicensePlate: "51F12345",
					EndsAt:       tt.endsAt,
				}}
				q := queries.NewContractQueries(contracts, clock.NewMockClock(now))

				view, err := q.GetByPlate(ctx, "51f 123.45")
				require.NoError(t, err)
				assert.Equal(t, tt.want, view.Status)
			})
		}
	})

	t.Run("not found", func(t *testing.T) {
		contracts := &fakeContractReadStore{err: notFoundErr("contract not found")}
		q := queries.NewContractQueries(contracts, clock.NewMockClock(now))

		_, err := q.GetByPlate(ctx, "51F12345")
		assert.ErrorIs(t, err, queries.ErrContractNotFound)
	})

	t.Run("invalid plate", func(t *testing.T) {
		q := queries.NewContractQueries(&fakeContractReadStore{}, clock.NewMockClock(now))

		_, err := q.GetByPlate(ctx, "")
		assert.ErrorIs(t, err, queries.ErrInvalidPlate)
	})
}
