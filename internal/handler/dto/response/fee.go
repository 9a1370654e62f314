package response

import (
	"time"

	"parkgate/internal/usecase/commands"
	"parkgate/internal/usecase/queries"

	"github.com/google/uuid"
)

type FeeLineResponse struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
	UnitRate    int64  `json:"unitRate"`
	Subtotal    int64  `json:"subtotal"`
}

type FeePreviewResponse struct {
	SessionID       uuid.UUID         `json:"sessionId"`
	LicensePlate    string            `json:"licensePlate"`
	RentalType      string            `json:"rentalType"`
	CheckInAt       time.Time         `json:"checkInAt"`
	EstimatedAt     time.Time         `json:"estimatedAt"`
	BillableMinutes int64             `json:"billableMinutes"`
	AmountDue       int64             `json:"amountDue"`
	Breakdown       []FeeLineResponse `json:"breakdown"`
	Note            string            `json:"note"`
}

func FromFeePreview(rm *queries.FeePreviewView) *FeePreviewResponse {
	return &FeePreviewResponse{
		SessionID:       rm.SessionID,
		LicensePlate:    rm.LicensePlate,
		RentalType:      rm.RentalType,
		CheckInAt:       rm.CheckInAt,
		EstimatedAt:     rm.EstimatedAt,
		BillableMinutes: rm.BillableMinutes,
		AmountDue:       rm.AmountDue,
		Breakdown:       feeLines(rm.Breakdown),
		Note:            rm.Note,
	}
}

type ExitReceiptResponse struct {
	Session   *SessionResponse  `json:"session"`
	Breakdown []FeeLineResponse `json:"breakdown"`
}

func FromExitReceipt(receipt *commands.ExitReceipt) *ExitReceiptResponse {
	return &ExitReceiptResponse{
		Session:   FromSessionView(receipt.Session),
		Breakdown: feeLines(receipt.Breakdown),
	}
}

func feeLines(views []queries.FeeLineView) []FeeLineResponse {
	lines := make([]FeeLineResponse, len(views))
	for i, v := range views {
		lines[i] = FeeLineResponse{
			Kind:        v.Kind,
			Description: v.Description,
			Quantity:    v.Quantity,
			UnitRate:    v.UnitRate,
			Subtotal:    v.Subtotal,
		}
	}
	return lines
}
