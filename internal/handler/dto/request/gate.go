package request

import (
	"github.com/google/uuid"
)

type RegisterEntryRequest struct {
	LicensePlate string    `json:"license_plate" binding:"required"`
	SpaceID      uuid.UUID `json:"space_id" binding:"required"`
	RentalType   string    `json:"rental_type" binding:"required,oneof=walkin contract"`
}

type FinalizeExitRequest struct {
	LicensePlate string `json:"license_plate" binding:"required"`
}
