package commands

import (
	"context"
	"log/slog"

	"parkgate/internal/domain/billing"
	"parkgate/internal/domain/contract"
	"parkgate/internal/domain/session"
	reqdto "parkgate/internal/handler/dto/request"
	"parkgate/internal/infra"
	"parkgate/internal/infra/db"
	"parkgate/internal/pkg/clock"
	"parkgate/internal/pkg/errs"
	"parkgate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInvalidPlate            = errs.New("invalid license plate")
	ErrInvalidRentalType       = errs.New("invalid rental type")
	ErrSpaceNotFound           = errs.New("parking space not found")
	ErrSpaceOccupied           = errs.New("parking space is occupied")
	ErrSessionAlreadyOpen      = errs.New("plate already has an open session")
	ErrNoOpenSession           = errs.New("no open session for license plate")
	ErrSessionConflict         = errs.New("session was finalized concurrently")
	ErrScheduleNotFound        = errs.New("price schedule not found")
	ErrFeeCalculation          = errs.New("fee calculation failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// SpaceSnapshot is the slice of a parking space the gate needs.
type SpaceSnapshot struct {
	ID       uuid.UUID
	Name     string
	Occupied bool
}

type SessionRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *session.ParkingSession) error
	// FindOpenByPlateForUpdate row-locks the open session so two exits
	// cannot finalize it twice.
	FindOpenByPlateForUpdate(ctx context.Context, tx db.DBTX, plate string) (*session.ParkingSession, error)
	SaveFinalized(ctx context.Context, tx db.DBTX, s *session.ParkingSession) error
}

type SpaceRepository interface {
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*SpaceSnapshot, error)
	SetOccupied(ctx context.Context, tx db.DBTX, id uuid.UUID, occupied bool) error
}

type ScheduleRepository interface {
	Get(ctx context.Context) (*billing.PriceSchedule, error)
	Update(ctx context.Context, tx db.DBTX, schedule *billing.PriceSchedule) error
}

type ContractRepository interface {
	FindLatestByPlate(ctx context.Context, plate string) (*contract.Contract, error)
}

type ExitReceipt struct {
	Session   *queries.SessionView
	Breakdown []queries.FeeLineView
}

type GateCommands interface {
	RegisterEntry(ctx context.Context, req reqdto.RegisterEntryRequest) (*queries.SessionView, error)
	FinalizeExit(ctx context.Context, req reqdto.FinalizeExitRequest) (*ExitReceipt, error)
}

type gateUseCaseImpl struct {
	sessionRepo    SessionRepository
	spaceRepo      SpaceRepository
	scheduleRepo   ScheduleRepository
	contractRepo   ContractRepository
	sessionQueries queries.SessionQueries
	db             *pgxpool.Pool
	clock          clock.Clock
}

func NewGateUseCase(
	sessionRepo SessionRepository,
	spaceRepo SpaceRepository,
	scheduleRepo ScheduleRepository,
	contractRepo ContractRepository,
	sessionQueries queries.SessionQueries,
	db *pgxpool.Pool,
	clock clock.Clock,
) GateCommands {
	return &gateUseCaseImpl{
		sessionRepo:    sessionRepo,
		spaceRepo:      spaceRepo,
		scheduleRepo:   scheduleRepo,
		contractRepo:   contractRepo,
		sessionQueries: sessionQueries,
		db:             db,
		clock:          clock,
	}
}

func (g *gateUseCaseImpl) RegisterEntry(ctx context.Context, req reqdto.RegisterEntryRequest) (*queries.SessionView, error) {
	plate, err := session.NewLicensePlate(req.LicensePlate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPlate)
	}
	rentalType, err := session.NewRentalType(req.RentalType)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRentalType)
	}

	entry := session.NewParkingSession(plate, req.SpaceID, rentalType, g.clock.Now())

	if err := g.executeEntryTransaction(ctx, entry); err != nil {
		return nil, err
	}
	return g.sessionQueries.GetByID(ctx, entry.ID())
}

func (g *gateUseCaseImpl) executeEntryTransaction(ctx context.Context, entry *session.ParkingSession) error {
	tx, err := g.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	space, err := g.spaceRepo.FindByIDForUpdate(ctx, tx, entry.SpaceID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSpaceNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if space.Occupied {
		return ErrSpaceOccupied
	}

	if err := g.sessionRepo.Create(ctx, tx, entry); err != nil {
		// Partial unique index on open plates turns a double entry
		// into a duplicate-key error.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return ErrSessionAlreadyOpen
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := g.spaceRepo.SetOccupied(ctx, tx, entry.SpaceID(), true); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (g *gateUseCaseImpl) FinalizeExit(ctx context.Context, req reqdto.FinalizeExitRequest) (*ExitReceipt, error) {
	plate, err := session.NewLicensePlate(req.LicensePlate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPlate)
	}

	schedule, err := g.scheduleRepo.Get(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	result, sessionID, err := g.executeExitTransaction(ctx, plate.String(), schedule)
	if err != nil {
		return nil, err
	}

	view, err := g.sessionQueries.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &ExitReceipt{
		Session:   view,
		Breakdown: queries.FeeLinesFromBreakdown(result.Breakdown),
	}, nil
}

func (g *gateUseCaseImpl) executeExitTransaction(
	ctx context.Context,
	plate string,
	schedule *billing.PriceSchedule,
) (*billing.FeeResult, uuid.UUID, error) {
	tx, err := g.db.Begin(ctx)
	if err != nil {
		return nil, uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	open, err := g.sessionRepo.FindOpenByPlateForUpdate(ctx, tx, plate)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, uuid.Nil, ErrNoOpenSession
		}
		return nil, uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	now := g.clock.Now()
	billReq := billing.Request{
		CheckInAt:  open.CheckInAt(),
		CheckOutAt: &now,
		Now:        now,
		Schedule:   schedule,
	}
	if open.RentalType() == session.RentalContract {
		cover, coverErr := g.contractCover(ctx, plate)
		if coverErr != nil {
			return nil, uuid.Nil, coverErr
		}
		billReq.Contract = cover
	}

	result, err := billing.Calculate(billReq)
	if err != nil {
		return nil, uuid.Nil, errs.Mark(err, ErrFeeCalculation)
	}

	if err := open.Finalize(now, result); err != nil {
		return nil, uuid.Nil, errs.Mark(err, ErrSessionConflict)
	}

	if err := g.sessionRepo.SaveFinalized(ctx, tx, open); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, uuid.Nil, ErrSessionConflict
		}
		return nil, uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := g.spaceRepo.SetOccupied(ctx, tx, open.SpaceID(), false); err != nil {
		return nil, uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return result, open.ID(), nil
}

// contractCover loads the plate's latest contract for the exemption
// check. Missing contract means walk-in billing, not an error.
func (g *gateUseCaseImpl) contractCover(ctx context.Context, plate string) (*billing.ContractCover, error) {
	c, err := g.contractRepo.FindLatestByPlate(ctx, plate)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c.Cover(), nil
}
