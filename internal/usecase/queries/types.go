package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type SessionView struct {
	ID           uuid.UUID  `json:"id"`
	LicensePlate string     `json:"license_plate"`
	RentalType   string     `json:"rental_type"`
	SpaceID      uuid.UUID  `json:"space_id"`
	SpaceName    string     `json:"space_name"`
	CheckInAt    time.Time  `json:"check_in_at"`
	CheckOutAt   *time.Time `json:"check_out_at,omitempty"`
	AmountDue    *int64     `json:"amount_due,omitempty"`
	FeeNote      *string    `json:"fee_note,omitempty"`
	Paid         bool       `json:"paid"`
	CreatedAt    time.Time  `json:"created_at"`
}

type LogListItem struct {
	ID           uuid.UUID  `json:"id"`
	LicensePlate string     `json:"license_plate"`
	RentalType   string     `json:"rental_type"`
	SpaceName    string     `json:"space_name"`
	CheckInAt    time.Time  `json:"check_in_at"`
	CheckOutAt   *time.Time `json:"check_out_at,omitempty"`
	AmountDue    *int64     `json:"amount_due,omitempty"`
	Paid         bool       `json:"paid"`
	CreatedAt    time.Time  `json:"created_at"`
}

type FeeLineView struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
	UnitRate    int64  `json:"unit_rate"`
	Subtotal    int64  `json:"subtotal"`
}

type FeePreviewView struct {
	SessionID       uuid.UUID     `json:"session_id"`
	LicensePlate    string        `json:"license_plate"`
	RentalType      string        `json:"rental_type"`
	CheckInAt       time.Time     `json:"check_in_at"`
	EstimatedAt     time.Time     `json:"estimated_at"`
	BillableMinutes int64         `json:"billable_minutes"`
	AmountDue       int64         `json:"amount_due"`
	Breakdown       []FeeLineView `json:"breakdown"`
	Note            string        `json:"note"`
}

type StatsView struct {
	TotalSpaces          int64 `json:"total_spaces"`
	OccupiedSpaces       int64 `json:"occupied_spaces"`
	AvailableSpaces      int64 `json:"available_spaces"`
	OpenWalkinSessions   int64 `json:"open_walkin_sessions"`
	OpenContractSessions int64 `json:"open_contract_sessions"`
	PaidSessionsToday    int64 `json:"paid_sessions_today"`
	RevenueToday         int64 `json:"revenue_today"`
}

// SpaceStatusView is one row of the live space board: the space plus
// the open session occupying it, if any.
type SpaceStatusView struct {
	SpaceID      uuid.UUID  `json:"space_id"`
	SpaceName    string     `json:"space_name"`
	Occupied     bool       `json:"occupied"`
	SessionID    *uuid.UUID `json:"session_id,omitempty"`
	LicensePlate *string    `json:"license_plate,omitempty"`
	RentalType   *string    `json:"rental_type,omitempty"`
	CheckInAt    *time.Time `json:"check_in_at,omitempty"`
}

type SpaceBoardView struct {
	Spaces  []*SpaceStatusView `json:"spaces"`
	LotFull bool               `json:"lot_full"`
}

type PriceScheduleView struct {
	PerHour   int64     `json:"per_hour"`
	PerDay    int64     `json:"per_day"`
	PerMonth  int64     `json:"per_month"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ContractView struct {
	ID           uuid.UUID `json:"id"`
	LicensePlate string    `json:"license_plate"`
	SpaceID      uuid.UUID `json:"space_id"`
	SpaceName    string    `json:"space_name"`
	CustomerName string    `json:"customer_name"`
	StartsAt     time.Time `json:"starts_at"`
	EndsAt       time.Time `json:"ends_at"`
	Status       string    `json:"status"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// Read store ports implemented by internal/infra/readstore.
type SessionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SessionView, error)
	FindOpenByPlate(ctx context.Context, plate string) (*SessionView, error)
	SearchLogs(ctx context.Context, keyword string, afterAt *time.Time, afterID *uuid.UUID, limit int32) ([]*LogListItem, error)
}

type FacilityReadStore interface {
	Stats(ctx context.Context, dayStart time.Time) (*StatsView, error)
	SpaceStatuses(ctx context.Context) ([]*SpaceStatusView, error)
	PriceSchedule(ctx context.Context) (*PriceScheduleView, error)
}

type ContractReadStore interface {
	FindLatestByPlate(ctx context.Context, plate string) (*ContractView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}
