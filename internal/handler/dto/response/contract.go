package response

import (
	"time"

	"parkgate/internal/usecase/queries"

	"github.com/google/uuid"
)

type ContractResponse struct {
	ID           uuid.UUID `json:"id"`
	LicensePlate string    `json:"licensePlate"`
	SpaceID      uuid.UUID `json:"spaceId"`
	SpaceName    string    `json:"spaceName"`
	CustomerName string    `json:"customerName"`
	StartsAt     time.Time `json:"startsAt"`
	EndsAt       time.Time `json:"endsAt"`
	Status       string    `json:"status"`
}

func FromContractView(rm *queries.ContractView) *ContractResponse {
	return &ContractResponse{
		ID:           rm.ID,
		LicensePlate: rm.LicensePlate,
		SpaceID:      rm.SpaceID,
		SpaceName:    rm.SpaceName,
		CustomerName: rm.CustomerName,
		StartsAt:     rm.StartsAt,
		EndsAt:       rm.EndsAt,
		Status:       rm.Status,
	}
}
