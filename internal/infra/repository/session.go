package repository

import (
	"context"
	"time"

	"parkgate/internal/domain/billing"
	"parkgate/internal/domain/session"
	"parkgate/internal/infra"
	"parkgate/internal/infra/db"
	"parkgate/internal/pkg/pgconv"
	"parkgate/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SessionRepository struct{}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

var _ commands.SessionRepository = (*SessionRepository)(nil)

const createSessionSQL = `
INSERT INTO parking_sessions (id, license_plate, parking_space_id, rental_type, check_in_at)
VALUES ($1, $2, $3, $4, $5)
`

func (r *SessionRepository) Create(ctx context.Context, tx db.DBTX, s *session.ParkingSession) error {
	_, err := tx.Exec(ctx, createSessionSQL,
		s.ID(),
		s.LicensePlate().String(),
		s.SpaceID(),
		s.RentalType().String(),
		s.CheckInAt(),
	)
	if err != nil {
		return wrapWriteErr("failed to create parking session", err)
	}
	return nil
}

const findOpenByPlateForUpdateSQL = `
SELECT id, license_plate, parking_space_id, rental_type, check_in_at,
       check_out_at, amount_due, fee_note, paid, created_at, updated_at
FROM parking_sessions
WHERE license_plate = $1 AND check_out_at IS NULL
FOR UPDATE
`

func (r *SessionRepository) FindOpenByPlateForUpdate(ctx context.Context, tx db.DBTX, plate string) (*session.ParkingSession, error) {
	var (
		id         uuid.UUID
		rawPlate   string
		spaceID    uuid.UUID
		rentalType string
		checkInAt  time.Time
		checkOutAt pgtype.Timestamptz
		amountDue  pgtype.Int8
		feeNote    pgtype.Text
		paid       bool
		createdAt  time.Time
		updatedAt  time.Time
	)
	err := tx.QueryRow(ctx, findOpenByPlateForUpdateSQL, plate).Scan(
		&id, &rawPlate, &spaceID, &rentalType, &checkInAt,
		&checkOutAt, &amountDue, &feeNote, &paid, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "open session not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find open session for update", err)
	}

	plateVO, err := session.NewLicensePlate(rawPlate)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored license plate is invalid", err)
	}
	rentalVO, err := session.NewRentalType(rentalType)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored rental type is invalid", err)
	}

	var amount *billing.Money
	if v := pgconv.Int64PtrFromPgtype(amountDue); v != nil {
		m := billing.Money(*v)
		amount = &m
	}

	return session.ReconstructParkingSession(
		id, plateVO, spaceID, rentalVO, checkInAt,
		pgconv.TimePtrFromPgtype(checkOutAt),
		amount,
		pgconv.StringPtrFromPgtype(feeNote),
		paid, createdAt, updatedAt,
	), nil
}

// The check_out_at IS NULL guard makes finalization idempotence failures
// visible as a conflict instead of a silent overwrite.
const saveFinalizedSessionSQL = `
UPDATE parking_sessions
SET check_out_at = $2, amount_due = $3, fee_note = $4, paid = $5, updated_at = now()
WHERE id = $1 AND check_out_at IS NULL
`

func (r *SessionRepository) SaveFinalized(ctx context.Context, tx db.DBTX, s *session.ParkingSession) error {
	var amount *int64
	if m := s.AmountDue(); m != nil {
		v := int64(*m)
		amount = &v
	}
	tag, err := tx.Exec(ctx, saveFinalizedSessionSQL,
		s.ID(),
		pgconv.TimePtrToPgtype(s.CheckOutAt()),
		pgconv.Int64PtrToPgtype(amount),
		pgconv.StringPtrToPgtype(s.FeeNote()),
		s.IsPaid(),
	)
	if err != nil {
		return wrapWriteErr("failed to finalize parking session", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindConflict, "session already finalized", nil)
	}
	return nil
}
