package response

import (
	"time"

	"parkgate/internal/usecase/queries"

	"github.com/google/uuid"
)

type SessionResponse struct {
	ID           uuid.UUID  `json:"id"`
	LicensePlate string     `json:"licensePlate"`
	RentalType   string     `json:"rentalType"`
	SpaceID      uuid.UUID  `json:"spaceId"`
	SpaceName    string     `json:"spaceName"`
	CheckInAt    time.Time  `json:"checkInAt"`
	CheckOutAt   *time.Time `json:"checkOutAt,omitempty"`
	AmountDue    *int64     `json:"amountDue,omitempty"`
	FeeNote      *string    `json:"feeNote,omitempty"`
	Paid         bool       `json:"paid"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func FromSessionView(rm *queries.SessionView) *SessionResponse {
	return &SessionResponse{
		ID:           rm.ID,
		LicensePlate: rm.LicensePlate,
		RentalType:   rm.RentalType,
		SpaceID:      rm.SpaceID,
		SpaceName:    rm.SpaceName,
		CheckInAt:    rm.CheckInAt,
		CheckOutAt:   rm.CheckOutAt,
		AmountDue:    rm.AmountDue,
		FeeNote:      rm.FeeNote,
		Paid:         rm.Paid,
		CreatedAt:    rm.CreatedAt,
	}
}

type LogItemResponse struct {
	ID           uuid.UUID  `json:"id"`
	LicensePlate string     `json:"licensePlate"`
	RentalType   string     `json:"rentalType"`
	SpaceName    string     `json:"spaceName"`
	CheckInAt    time.Time  `json:"checkInAt"`
	CheckOutAt   *time.Time `json:"checkOutAt,omitempty"`
	AmountDue    *int64     `json:"amountDue,omitempty"`
	Paid         bool       `json:"paid"`
}

type LogListResponse struct {
	Items      []*LogItemResponse `json:"items"`
	NextCursor *string            `json:"nextCursor,omitempty"`
}

func FromLogListItems(items []*queries.LogListItem, next *queries.Cursor) *LogListResponse {
	resp := &LogListResponse{Items: make([]*LogItemResponse, len(items))}
	for i, item := range items {
		resp.Items[i] = &LogItemResponse{
			ID:           item.ID,
			LicensePlate: item.LicensePlate,
			RentalType:   item.RentalType,
			SpaceName:    item.SpaceName,
			CheckInAt:    item.CheckInAt,
			CheckOutAt:   item.CheckOutAt,
			AmountDue:    item.AmountDue,
			Paid:         item.Paid,
		}
	}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}
