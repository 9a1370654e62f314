package queries

import (
	"context"
	"time"

	"parkgate/internal/infra"
	"parkgate/internal/pkg/clock"
)

type FacilityQueries interface {
	// Stats reports occupancy and today's revenue, with "today" anchored
	// to the facility timezone.
	Stats(ctx context.Context) (*StatsView, error)
	// SpaceBoard lists every space with the open session occupying it,
	// plus whether the lot has no free space left.
	SpaceBoard(ctx context.Context) (*SpaceBoardView, error)
	PriceSchedule(ctx context.Context) (*PriceScheduleView, error)
}

type facilityQueriesImpl struct {
	facility FacilityReadStore
	clock    clock.Clock
	loc      *time.Location
}

func NewFacilityQueries(facility FacilityReadStore, clk clock.Clock, loc *time.Location) FacilityQueries {
	return &facilityQueriesImpl{facility: facility, clock: clk, loc: loc}
}

func (q *facilityQueriesImpl) Stats(ctx context.Context) (*StatsView, error) {
	now := q.clock.Now().In(q.loc)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, q.loc)

	stats, err := q.facility.Stats(ctx, dayStart)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (q *facilityQueriesImpl) SpaceBoard(ctx context.Context) (*SpaceBoardView, error) {
	spaces, err := q.facility.SpaceStatuses(ctx)
	if err != nil {
		return nil, err
	}

	board := &SpaceBoardView{Spaces: spaces, LotFull: len(spaces) > 0}
	for _, space := range spaces {
		if !space.Occupied {
			board.LotFull = false
			break
		}
	}
	return board, nil
}

func (q *facilityQueriesImpl) PriceSchedule(ctx context.Context) (*PriceScheduleView, error) {
	view, err := q.facility.PriceSchedule(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return view, nil
}
