package queries

import (
	"context"
	"time"

	"parkgate/internal/domain/billing"
	"parkgate/internal/domain/session"
	"parkgate/internal/infra"
	"parkgate/internal/pkg/clock"
	"parkgate/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound  = errs.New("session not found")
	ErrNoOpenSession    = errs.New("no open session for license plate")
	ErrInvalidPlate     = errs.New("invalid license plate")
	ErrScheduleNotFound = errs.New("price schedule not found")
	ErrFeeCalculation   = errs.New("fee calculation failed")
	ErrInvalidCursor    = errs.New("invalid pagination cursor")
)

type SessionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SessionView, error)
	// PreviewFee estimates the amount owed by the open session for the
	// plate as of now, without finalizing anything.
	PreviewFee(ctx context.Context, rawPlate string) (*FeePreviewView, error)
	SearchLogs(ctx context.Context, keyword string, after *Cursor, limit int) ([]*LogListItem, *Cursor, error)
}

type sessionQueriesImpl struct {
	sessions  SessionReadStore
	facility  FacilityReadStore
	contracts ContractReadStore
	clock     clock.Clock
}

func NewSessionQueries(sessions SessionReadStore, facility FacilityReadStore, contracts ContractReadStore, clk clock.Clock) SessionQueries {
	return &sessionQueriesImpl{
		sessions:  sessions,
		facility:  facility,
		contracts: contracts,
		clock:     clk,
	}
}

func (q *sessionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	view, err := q.sessions.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *sessionQueriesImpl) PreviewFee(ctx context.Context, rawPlate string) (*FeePreviewView, error) {
	plate, err := session.NewLicensePlate(rawPlate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPlate)
	}

	open, err := q.sessions.FindOpenByPlate(ctx, plate.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNoOpenSession
		}
		return nil, err
	}

	scheduleView, err := q.facility.PriceSchedule(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}

	now := q.clock.Now()

	req := billing.Request{
		CheckInAt: open.CheckInAt,
		Now:       now,
		Schedule: &billing.PriceSchedule{
			PerHour:  billing.Money(scheduleView.PerHour),
			PerDay:   billing.Money(scheduleView.PerDay),
			PerMonth: billing.Money(scheduleView.PerMonth),
		},
	}

	if open.RentalType == session.RentalContract.String() {
		cover, err := q.contractCover(ctx, plate.String())
		if err != nil {
			return nil, err
		}
		req.Contract = cover
	}

	result, err := billing.Calculate(req)
	if err != nil {
		return nil, errs.Mark(err, ErrFeeCalculation)
	}

	return feePreviewFromResult(open, result, now), nil
}

// contractCover finds the plate's latest contract; a missing contract is
// not an error here, it just means walk-in billing applies.
func (q *sessionQueriesImpl) contractCover(ctx context.Context, plate string) (*billing.ContractCover, error) {
	view, err := q.contracts.FindLatestByPlate(ctx, plate)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &billing.ContractCover{EndsAt: view.EndsAt}, nil
}

func (q *sessionQueriesImpl) SearchLogs(ctx context.Context, keyword string, after *Cursor, limit int) ([]*LogListItem, *Cursor, error) {
	validLimit := ValidateLimit(limit)

	var (
		afterAt *time.Time
		afterID *uuid.UUID
	)
	if after != nil && after.After != "" {
		t, id, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidCursor)
		}
		afterAt = &t
		afterID = &id
	}

	items, err := q.sessions.SearchLogs(ctx, keyword, afterAt, afterID, validLimit+1)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(items) > int(validLimit) {
		items = items[:validLimit]
		last := items[len(items)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CheckInAt, last.ID)}
	}

	return items, next, nil
}

// FeeLinesFromBreakdown converts engine line items into the read model
// shared by the preview and exit responses.
func FeeLinesFromBreakdown(items []billing.LineItem) []FeeLineView {
	views := make([]FeeLineView, 0, len(items))
	for _, line := range items {
		views = append(views, FeeLineView{
			Kind:        line.Kind.String(),
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitRate:    int64(line.UnitRate),
			Subtotal:    int64(line.Subtotal),
		})
	}
	return views
}

func feePreviewFromResult(open *SessionView, result *billing.FeeResult, now time.Time) *FeePreviewView {
	return &FeePreviewView{
		SessionID:       open.ID,
		LicensePlate:    open.LicensePlate,
		RentalType:      open.RentalType,
		CheckInAt:       open.CheckInAt,
		EstimatedAt:     now,
		BillableMinutes: result.BillableMinutes,
		AmountDue:       int64(result.AmountDue),
		Breakdown:       FeeLinesFromBreakdown(result.Breakdown),
		Note:            result.Note(),
	}
}
