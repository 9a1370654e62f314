package repository

import (
	"context"

	"parkgate/internal/domain/billing"
	"parkgate/internal/infra"
	"parkgate/internal/infra/db"
	"parkgate/internal/pkg/pgconv"
	"parkgate/internal/usecase/commands"
)

type ScheduleRepository struct {
	db db.DBTX
}

func NewScheduleRepository(db db.DBTX) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

var _ commands.ScheduleRepository = (*ScheduleRepository)(nil)

const getScheduleSQL = `
SELECT per_hour, per_day, per_month FROM price_schedules WHERE id = 1
`

func (r *ScheduleRepository) Get(ctx context.Context) (*billing.PriceSchedule, error) {
	var perHour, perDay, perMonth int64
	err := r.db.QueryRow(ctx, getScheduleSQL).Scan(&perHour, &perDay, &perMonth)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "price schedule not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load price schedule", err)
	}

	schedule, err := billing.NewPriceSchedule(
		billing.Money(perHour), billing.Money(perDay), billing.Money(perMonth),
	)
	if err != nil {
		// Check constraints keep rates non-negative, so this means the
		// row was tampered with outside the application.
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored price schedule is invalid", err)
	}
	return schedule, nil
}

const updateScheduleSQL = `
UPDATE price_schedules SET per_hour = $1, per_day = $2, per_month = $3, updated_at = now() WHERE id = 1
`

func (r *ScheduleRepository) Update(ctx context.Context, tx db.DBTX, schedule *billing.PriceSchedule) error {
	tag, err := tx.Exec(ctx, updateScheduleSQL,
		int64(schedule.PerHour), int64(schedule.PerDay), int64(schedule.PerMonth),
	)
	if err != nil {
		return wrapWriteErr("failed to update price schedule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "price schedule not found", nil)
	}
	return nil
}
