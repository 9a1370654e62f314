package commands

import (
	"context"
	"log/slog"

	"parkgate/internal/domain/billing"
	reqdto "parkgate/internal/handler/dto/request"
	"parkgate/internal/infra"
	"parkgate/internal/pkg/errs"
	"parkgate/internal/pkg/patch"
	"parkgate/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrInvalidRate = errs.New("invalid price rate")

type FacilityCommands interface {
	// UpdatePriceSchedule applies a partial update; omitted rates keep
	// their current value.
	UpdatePriceSchedule(ctx context.Context, req reqdto.UpdatePriceScheduleRequest) (*queries.PriceScheduleView, error)
}

type facilityUseCaseImpl struct {
	scheduleRepo    ScheduleRepository
	facilityQueries queries.FacilityQueries
	db              *pgxpool.Pool
}

func NewFacilityUseCase(scheduleRepo ScheduleRepository, facilityQueries queries.FacilityQueries, db *pgxpool.Pool) FacilityCommands {
	return &facilityUseCaseImpl{
		scheduleRepo:    scheduleRepo,
		facilityQueries: facilityQueries,
		db:              db,
	}
}

func (f *facilityUseCaseImpl) UpdatePriceSchedule(ctx context.Context, req reqdto.UpdatePriceScheduleRequest) (*queries.PriceScheduleView, error) {
	current, err := f.scheduleRepo.Get(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	updated, err := billing.NewPriceSchedule(
		billing.Money(patch.Coalesce(req.PerHour, int64(current.PerHour))),
		billing.Money(patch.Coalesce(req.PerDay, int64(current.PerDay))),
		billing.Money(patch.Coalesce(req.PerMonth, int64(current.PerMonth))),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRate)
	}

	tx, err := f.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := f.scheduleRepo.Update(ctx, tx, updated); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return f.facilityQueries.PriceSchedule(ctx)
}
