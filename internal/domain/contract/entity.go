package contract

import (
	"errors"
	"time"

	"parkgate/internal/domain/billing"
	"parkgate/internal/domain/session"

	"github.com/google/uuid"
)

var ErrInvalidPeriod = errors.New("contract end date must be after start date")

type Status string

const (
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// Contract is a pre-paid rental for one parking space. Whether it is
// active is derived from the end date at evaluation time; a stored
// status column can go stale between billing runs, so it is never
// trusted here.
type Contract struct {
	id           uuid.UUID
	licensePlate session.LicensePlate
	spaceID      uuid.UUID
	customerName string
	startsAt     time.Time
	endsAt       time.Time
}

func NewContract(plate session.LicensePlate, spaceID uuid.UUID, customerName string, startsAt, endsAt time.Time) (*Contract, error) {
	if !endsAt.After(startsAt) {
		return nil, ErrInvalidPeriod
	}
	return &Contract{
		id:           uuid.New(),
		licensePlate: plate,
		spaceID:      spaceID,
		customerName: customerName,
		startsAt:     startsAt,
		endsAt:       endsAt,
	}, nil
}

func ReconstructContract(id uuid.UUID, plate session.LicensePlate, spaceID uuid.UUID, customerName string, startsAt, endsAt time.Time) *Contract {
	return &Contract{
		id:           id,
		licensePlate: plate,
		spaceID:      spaceID,
		customerName: customerName,
		startsAt:     startsAt,
		endsAt:       endsAt,
	}
}

// DeriveStatus classifies a contract period against the evaluation
// time. A contract ending exactly now is already expired.
func DeriveStatus(endsAt, now time.Time) Status {
	if endsAt.After(now) {
		return StatusActive
	}
	return StatusExpired
}

func (c *Contract) IsActiveAt(now time.Time) bool {
	return DeriveStatus(c.endsAt, now) == StatusActive
}

func (c *Contract) StatusAt(now time.Time) Status {
	return DeriveStatus(c.endsAt, now)
}

// Cover narrows the contract to what the fee engine needs.
func (c *Contract) Cover() *billing.ContractCover {
	return &billing.ContractCover{EndsAt: c.endsAt}
}

func (c *Contract) ID() uuid.UUID                      { return c.id }
func (c *Contract) LicensePlate() session.LicensePlate { return c.licensePlate }
func (c *Contract) SpaceID() uuid.UUID                 { return c.spaceID }
func (c *Contract) CustomerName() string               { return c.customerName }
func (c *Contract) StartsAt() time.Time                { return c.startsAt }
func (c *Contract) EndsAt() time.Time                  { return c.endsAt }
