//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"parkgate/internal/infra"
	"parkgate/internal/pkg/clock"
	"parkgate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionReadStore struct {
	open     *queries.SessionView
	openErr  error
	logs     []*queries.LogListItem
	logsErr  error
	byID     *queries.SessionView
	byIDErr  error
	gotAfter *time.Time
	gotLimit int32
}

func (f *fakeSessionReadStore) FindByID(_ context.Context, _ uuid.UUID) (*queries.SessionView, error) {
	return f.byID, f.byIDErr
}

func (f *fakeSessionReadStore) FindOpenByPlate(_ context.Context, _ string) (*queries.SessionView, error) {
	return f.open, f.openErr
}

func (f *fakeSessionReadStore) SearchLogs(_ context.Context, _ string, afterAt *time.Time, _ *uuid.UUID, limit int32) ([]*queries.LogListItem, error) {
	f.gotAfter = afterAt
	f.gotLimit = limit
	return f.logs, f.logsErr
}

type fakeFacilityReadStore struct {
	schedule    *queries.PriceScheduleView
	scheduleErr error
	stats       *queries.StatsView
	statsErr    error
	spaces      []*queries.SpaceStatusView
	spacesErr   error
	gotDayStart time.Time
}

func (f *fakeFacilityReadStore) Stats(_ context.Context, dayStart time.Time) (*queries.StatsView, error) {
	f.gotDayStart = dayStart
	return f.stats, f.statsErr
}

func (f *fakeFacilityReadStore) SpaceStatuses(_ context.Context) ([]*queries.SpaceStatusView, error) {
	return f.spaces, f.spacesErr
}

func (f *fakeFacilityReadStore) PriceSchedule(_ context.Context) (*queries.PriceScheduleView, error) {
	return f.schedule, f.scheduleErr
}

type fakeContractReadStore struct {
	contract *queries.ContractView
	err      error
}

func (f *fakeContractReadStore) FindLatestByPlate(_ context.Context, _ string) (*queries.ContractView, error) {
	return f.contract, f.err
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(infra.KindNotFound, msg, errors.New(msg))
}

var standardSchedule = &queries.PriceScheduleView{
	PerHour:  20000,
	PerDay:   150000,
	PerMonth: 2500000,
}

func openWalkinSession(checkInAt time.Time) *queries.SessionView {
	return &queries.SessionView{
		ID:           uuid.New(),
		LicensePlate: "51F12345",
		RentalType:   "walkin",
		SpaceID:      uuid.New(),
		SpaceName:    "A-01",
		CheckInAt:    checkInAt,
	}
}

func TestSessionQueries_PreviewFee(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	t.Run("walk-in session rounds up to whole hours", func(t *testing.T) {
		sessions := &fakeSessionReadStore{open: openWalkinSession(now.Add(-90 * time.Minute))}
		facility := &fakeFacilityReadStore{schedule: standardSchedule}
		q := queries.NewSessionQueries(sessions, facility, &fakeContractReadStore{}, clock.NewMockClock(now))

		preview, err := q.PreviewFee(ctx, "51F-123.45")
		require.NoError(t, err)

		assert.Equal(t, int64(40000), preview.AmountDue)
		assert.Equal(t, int64(90), preview.BillableMinutes)
		assert.Equal(t, now, preview.EstimatedAt)
		require.Len(t, preview.Breakdown, 1)
		assert.Equal(t, "hour", preview.Breakdown[0].Kind)
		assert.Equal(t, int64(2), preview.Breakdown[0].Quantity)
	})

	t.Run("active contract is exempt", func(t *testing.T) {
		open := openWalkinSession(now.Add(-50 * time.Hour))
		open.RentalType = "contract"
		sessions := &fakeSessionReadStore{open: open}
		facility := &fakeFacilityReadStore{schedule: standardSchedule}
		contracts := &fakeContractReadStore{contract: &queries.ContractView{
			LicensePlate: "51F12345",
			EndsAt:       now.Add(10 * 24 * time.Hour),
		}}
		q := queries.NewSessionQueries(sessions, facility, contracts, clock.NewMockClock(now))

		preview, err := q.PreviewFee(ctx, "51F12345")
		require.NoError(t, err)

		assert.Equal(t, int64(0), preview.AmountDue)
		require.Len(t, preview.Breakdown, 1)
		assert.Equal(t, "contract", preview.Breakdown[0].Kind)
	})

	t.Run("expired contract bills as walk-in", func(t *testing.T) {
		open := openWalkinSession(now.Add(-3 * time.Hour))
		open.RentalType = "contract"
		sessions := &fakeSessionReadStore{open: open}
		facility := &fakeFacilityReadStore{schedule: standardSchedule}
		contracts := &fakeContractReadStore{contract: &queries.ContractView{
			LicensePlate: "51F12345",
			EndsAt:       now.Add(-time.Hour),
		}}
		q := queries.NewSessionQueries(sessions, facility, contracts, clock.NewMockClock(now))

		preview, err := q.PreviewFee(ctx, "51F12345")
		require.NoError(t, err)

		assert.Equal(t, int64(60000), preview.AmountDue)
	})

	t.Run("contract rental without any contract bills as walk-in", func(t *testing.T) {
		open := openWalkinSession(now.Add(-1 * time.Hour))
		open.RentalType = "contract"
		sessions := &fakeSessionReadStore{open: open}
		facility := &fakeFacilityReadStore{schedule: standardSchedule}
		contracts := &fakeContractReadStore{err: notFoundErr("contract not found")}
		q := queries.NewSessionQueries(sessions, facility, contracts, clock.NewMockClock(now))

		preview, err := q.PreviewFee(ctx, "51F12345")
		require.NoError(t, err)

		assert.Equal(t, int64(20000), preview.AmountDue)
	})

	t.Run("no open session", func(t *testing.T) {
		sessions := &fakeSessionReadStore{openErr: notFoundErr("open session not found")}
		facility := &fakeFacilityReadStore{schedule: standardSchedule}
		q := queries.NewSessionQueries(sessions, facility, &fakeContractReadStore{}, clock.NewMockClock(now))

		_, err := q.PreviewFee(ctx, "51F12345")
		assert.ErrorIs(t, err, queries.ErrNoOpenSession)
	})

	t.Run("invalid plate", func(t *testing.T) {
		q := queries.NewSessionQueries(&fakeSessionReadStore{}, &fakeFacilityReadStore{}, &fakeContractReadStore{}, clock.NewMockClock(now))

		_, err := q.PreviewFee(ctx, "   ")
		assert.ErrorIs(t, err, queries.ErrInvalidPlate)
	})

	t.Run("missing schedule", func(t *testing.T) {
		sessions := &fakeSessionReadStore{open: openWalkinSession(now.Add(-time.Hour))}
		facility := &fakeFacilityReadStore{scheduleErr: notFoundErr("price schedule not found")}
		q := queries.NewSessionQueries(sessions, facility, &fakeContractReadStore{}, clock.NewMockClock(now))

		_, err := q.PreviewFee(ctx, "51F12345")
		assert.ErrorIs(t, err, queries.ErrScheduleNotFound)
	})
}

func TestSessionQueries_SearchLogs(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	makeLogs := func(n int) []*queries.LogListItem {
		items := make([]*queries.LogListItem, n)
		for i := range items {
			items[i] = &queries.LogListItem{
				ID:        uuid.New(),
				CheckInAt: now.Add(-time.Duration(i) * time.Hour),
			}
		}
		return items
	}

	t.Run("returns next cursor when more rows exist", func(t *testing.T) {
		sessions := &fakeSessionReadStore{logs: makeLogs(3)}
		q := queries.NewSessionQueries(sessions, &fakeFacilityReadStore{}, &fakeContractReadStore{}, clock.NewMockClock(now))

		items, next, err := q.SearchLogs(ctx, "", nil, 2)
		require.NoError(t, err)

		assert.Len(t, items, 2)
		require.NotNil(t, next)
		assert.Equal(t, int32(3), sessions.gotLimit)

		gotAt, gotID, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, items[1].CheckInAt.UnixMicro(), gotAt.UnixMicro())
		assert.Equal(t, items[1].ID, gotID)
	})

	t.Run("no cursor on final page", func(t *testing.T) {
		sessions := &fakeSessionReadStore{logs: makeLogs(2)}
		q := queries.NewSessionQueries(sessions, &fakeFacilityReadStore{}, &fakeContractReadStore{}, clock.NewMockClock(now))

		items, next, err := q.SearchLogs(ctx, "", nil, 2)
		require.NoError(t, err)

		assert.Len(t, items, 2)
		assert.Nil(t, next)
	})

	t.Run("decodes the incoming cursor", func(t *testing.T) {
		sessions := &fakeSessionReadStore{}
		q := queries.NewSessionQueries(sessions, &fakeFacilityReadStore{}, &fakeContractReadStore{}, clock.NewMockClock(now))

		after := queries.EncodeAfterCursor(now, uuid.New())
		_, _, err := q.SearchLogs(ctx, "", &queries.Cursor{After: after}, 10)
		require.NoError(t, err)

		require.NotNil(t, sessions.gotAfter)
		assert.Equal(t, now.UnixMicro(), sessions.gotAfter.UnixMicro())
	})

	t.Run("invalid cursor", func(t *testing.T) {
		q := queries.NewSessionQueries(&fakeSessionReadStore{}, &fakeFacilityReadStore{}, &fakeContractReadStore{}, clock.NewMockClock(now))

		_, _, err := q.SearchLogs(ctx, "", &queries.Cursor{After: "not-a-cursor"}, 10)
		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}
