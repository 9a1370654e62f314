package session

import (
	"errors"
	"time"

	"parkgate/internal/domain/billing"

	"github.com/google/uuid"
)

var (
	ErrAlreadyFinalized = errors.New("session is already finalized")
	ErrNilFeeResult     = errors.New("fee result is required to finalize")
)

// ParkingSession is one vehicle's stay, created at the entrance gate and
// finalized exactly once at the paid exit. Until then only the checkout
// side is unset; everything else is immutable.
type ParkingSession struct {
	id           uuid.UUID
	licensePlate LicensePlate
	spaceID      uuid.UUID
	rentalType   RentalType
	checkInAt    time.Time
	checkOutAt   *time.Time
	amountDue    *billing.Money
	feeNote      *string
	paid         bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewParkingSession(plate LicensePlate, spaceID uuid.UUID, rentalType RentalType, checkInAt time.Time) *ParkingSession {
	return &ParkingSession{
		id:           uuid.New(),
		licensePlate: plate,
		spaceID:      spaceID,
		rentalType:   rentalType,
		checkInAt:    checkInAt,
	}
}

func ReconstructParkingSession(
	id uuid.UUID,
	plate LicensePlate,
	spaceID uuid.UUID,
	rentalType RentalType,
	checkInAt time.Time,
	checkOutAt *time.Time,
	amountDue *billing.Money,
	feeNote *string,
	paid bool,
	createdAt, updatedAt time.Time,
) *ParkingSession {
	return &ParkingSession{
		id:           id,
		licensePlate: plate,
		spaceID:      spaceID,
		rentalType:   rentalType,
		checkInAt:    checkInAt,
		checkOutAt:   checkOutAt,
		amountDue:    amountDue,
		feeNote:      feeNote,
		paid:         paid,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Finalize records the paid exit. A session finalizes exactly once;
// a second attempt is a conflict, not an overwrite.
func (s *ParkingSession) Finalize(checkOutAt time.Time, fee *billing.FeeResult) error {
	if s.IsFinalized() {
		return ErrAlreadyFinalized
	}
	if fee == nil {
		return ErrNilFeeResult
	}
	out := checkOutAt
	amount := fee.AmountDue
	note := fee.Note()
	s.checkOutAt = &out
	s.amountDue = &amount
	s.feeNote = &note
	s.paid = true
	return nil
}

func (s *ParkingSession) IsFinalized() bool {
	return s.checkOutAt != nil
}

func (s *ParkingSession) IsOpen() bool {
	return s.checkOutAt == nil
}

func (s *ParkingSession) ID() uuid.UUID               { return s.id }
func (s *ParkingSession) LicensePlate() LicensePlate  { return s.licensePlate }
func (s *ParkingSession) SpaceID() uuid.UUID          { return s.spaceID }
func (s *ParkingSession) RentalType() RentalType      { return s.rentalType }
func (s *ParkingSession) CheckInAt() time.Time        { return s.checkInAt }
func (s *ParkingSession) CheckOutAt() *time.Time      { return s.checkOutAt }
func (s *ParkingSession) AmountDue() *billing.Money   { return s.amountDue }
func (s *ParkingSession) FeeNote() *string            { return s.feeNote }
func (s *ParkingSession) IsPaid() bool                { return s.paid }
func (s *ParkingSession) CreatedAt() time.Time        { return s.createdAt }
func (s *ParkingSession) UpdatedAt() time.Time        { return s.updatedAt }
