package readstore

import (
	"context"
	"time"

	"parkgate/internal/infra"
	"parkgate/internal/infra/db"
	"parkgate/internal/pkg/pgconv"
	"parkgate/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type FacilityReadStore struct {
	db db.DBTX
}

func NewFacilityReadStore(db db.DBTX) *FacilityReadStore {
	return &FacilityReadStore{db: db}
}

// Revenue counts only paid sessions whose checkout fell on or after the
// facility-local day start passed in by the usecase.
const facilityStatsSQL = `
SELECT
	(SELECT count(*) FROM parking_spaces),
	(SELECT count(*) FROM parking_spaces WHERE occupied),
	(SELECT count(*) FROM parking_sessions WHERE check_out_at IS NULL AND rental_type = 'walkin'),
	(SELECT count(*) FROM parking_sessions WHERE check_out_at IS NULL AND rental_type = 'contract'),
	(SELECT count(*) FROM parking_sessions WHERE paid AND check_out_at >= $1),
	(SELECT coalesce(sum(amount_due), 0) FROM parking_sessions WHERE paid AND check_out_at >= $1)
`

func (r *FacilityReadStore) Stats(ctx context.Context, dayStart time.Time) (*queries.StatsView, error) {
	var view queries.StatsView
	err := r.db.QueryRow(ctx, facilityStatsSQL, dayStart).Scan(
		&view.TotalSpaces,
		&view.OccupiedSpaces,
		&view.OpenWalkinSessions,
		&view.OpenContractSessions,
		&view.PaidSessionsToday,
		&view.RevenueToday,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load facility stats", err)
	}
	view.AvailableSpaces = view.TotalSpaces - view.OccupiedSpaces
	return &view, nil
}

const spaceStatusesSQL = `
SELECT
	p.id, p.name, p.occupied,
	s.id, s.license_plate, s.rental_type, s.check_in_at
FROM parking_spaces p
LEFT JOIN parking_sessions s
	ON s.parking_space_id = p.id AND s.check_out_at IS NULL
ORDER BY p.name
`

func (r *FacilityReadStore) SpaceStatuses(ctx context.Context) ([]*queries.SpaceStatusView, error) {
	rows, err := r.db.Query(ctx, spaceStatusesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list space statuses", err)
	}
	defer rows.Close()

	var views []*queries.SpaceStatusView
	for rows.Next() {
		var view queries.SpaceStatusView
		var sessionID pgtype.UUID
		var plate, rental pgtype.Text
		var checkInAt pgtype.Timestamptz
		if err := rows.Scan(
			&view.SpaceID, &view.SpaceName, &view.Occupied,
			&sessionID, &plate, &rental, &checkInAt,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan space status", err)
		}
		view.SessionID = pgconv.UUIDPtrFromPgtype(sessionID)
		view.LicensePlate = pgconv.StringPtrFromPgtype(plate)
		view.RentalType = pgconv.StringPtrFromPgtype(rental)
		view.CheckInAt = pgconv.TimePtrFromPgtype(checkInAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list space statuses", err)
	}
	return views, nil
}

const priceScheduleSQL = `
SELECT per_hour, per_day, per_month, updated_at FROM price_schedules WHERE id = 1
`

func (r *FacilityReadStore) PriceSchedule(ctx context.Context) (*queries.PriceScheduleView, error) {
	var view queries.PriceScheduleView
	err := r.db.QueryRow(ctx, priceScheduleSQL).Scan(
		&view.PerHour, &view.PerDay, &view.PerMonth, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "price schedule not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load price schedule", err)
	}
	return &view, nil
}
