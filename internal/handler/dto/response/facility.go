package response

import (
	"time"

	"parkgate/internal/usecase/queries"

	"github.com/google/uuid"
)

type StatsResponse struct {
	TotalSpaces          int64 `json:"totalSpaces"`
	OccupiedSpaces       int64 `json:"occupiedSpaces"`
	AvailableSpaces      int64 `json:"availableSpaces"`
	OpenWalkinSessions   int64 `json:"openWalkinSessions"`
	OpenContractSessions int64 `json:"openContractSessions"`
	PaidSessionsToday    int64 `json:"paidSessionsToday"`
	RevenueToday         int64 `json:"revenueToday"`
}

func FromStatsView(rm *queries.StatsView) *StatsResponse {
	return &StatsResponse{
		TotalSpaces:          rm.TotalSpaces,
		OccupiedSpaces:       rm.OccupiedSpaces,
		AvailableSpaces:      rm.AvailableSpaces,
		OpenWalkinSessions:   rm.OpenWalkinSessions,
		OpenContractSessions: rm.OpenContractSessions,
		PaidSessionsToday:    rm.PaidSessionsToday,
		RevenueToday:         rm.RevenueToday,
	}
}

type SpaceStatusResponse struct {
	SpaceID      uuid.UUID  `json:"spaceId"`
	SpaceName    string     `json:"spaceName"`
	Occupied     bool       `json:"occupied"`
	SessionID    *uuid.UUID `json:"sessionId,omitempty"`
	LicensePlate *string    `json:"licensePlate,omitempty"`
	RentalType   *string    `json:"rentalType,omitempty"`
	CheckInAt    *time.Time `json:"checkInAt,omitempty"`
}

type SpaceBoardResponse struct {
	Spaces  []SpaceStatusResponse `json:"spaces"`
	LotFull bool                  `json:"lotFull"`
}

func FromSpaceBoardView(rm *queries.SpaceBoardView) *SpaceBoardResponse {
	resp := &SpaceBoardResponse{
		Spaces:  make([]SpaceStatusResponse, 0, len(rm.Spaces)),
		LotFull: rm.LotFull,
	}
	for _, space := range rm.Spaces {
		resp.Spaces = append(resp.Spaces, SpaceStatusResponse{
			SpaceID:      space.SpaceID,
			SpaceName:    space.SpaceName,
			Occupied:     space.Occupied,
			SessionID:    space.SessionID,
			LicensePlate: space.LicensePlate,
			RentalType:   space.RentalType,
			CheckInAt:    space.CheckInAt,
		})
	}
	return resp
}

type PriceScheduleResponse struct {
	PerHour   int64     `json:"perHour"`
	PerDay    int64     `json:"perDay"`
	PerMonth  int64     `json:"perMonth"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromPriceScheduleView(rm *queries.PriceScheduleView) *PriceScheduleResponse {
	return &PriceScheduleResponse{
		PerHour:   rm.PerHour,
		PerDay:    rm.PerDay,
		PerMonth:  rm.PerMonth,
		UpdatedAt: rm.UpdatedAt,
	}
}
