package billing

import (
	"errors"
	"strings"
	"time"
)

var ErrMissingSchedule = errors.New("price schedule is required")

// ContractCover is the slice of a rental contract the engine needs: when
// the cover is still running at evaluation time, the stay is exempt from
// time-based billing. Activity is always derived from EndsAt against the
// injected now, never from a stored status flag, which can go stale.
type ContractCover struct {
	EndsAt time.Time
}

func (c ContractCover) ActiveAt(now time.Time) bool {
	return c.EndsAt.After(now)
}

// Request carries every input of one fee calculation. Now is explicit so
// the engine stays deterministic and never reads a wall clock. Contract
// is set only for contract rentals; an expired cover falls through to
// walk-in billing rather than silently parking for free.
type Request struct {
	CheckInAt  time.Time
	CheckOutAt *time.Time // nil estimates against Now without finalizing
	Now        time.Time
	Schedule   *PriceSchedule
	Contract   *ContractCover
	Describe   DescribeFunc // nil uses the default Vietnamese renderer
}

type LineItem struct {
	Kind        TierKind
	Description string
	Quantity    int64
	UnitRate    Money
	Subtotal    Money
}

type FeeResult struct {
	AmountDue       Money
	BillableMinutes int64
	Breakdown       []LineItem
}

// Note renders the breakdown as the one-line receipt text shown to staff.
func (r *FeeResult) Note() string {
	parts := make([]string, len(r.Breakdown))
	for i, item := range r.Breakdown {
		parts[i] = item.Description
	}
	return strings.Join(parts, ", ")
}

// Calculate is the fee engine entry point: a pure function over the
// request, safe to invoke concurrently. Either a complete FeeResult or
// an error is returned, never both.
func Calculate(req Request) (*FeeResult, error) {
	if req.Schedule == nil {
		return nil, ErrMissingSchedule
	}

	describe := req.Describe
	if describe == nil {
		describe = DescribeVietnamese
	}

	if req.Contract != nil && req.Contract.ActiveAt(req.Now) {
		item := LineItem{Kind: TierContract, Quantity: 1}
		item.Description = describe(item, req.Contract)
		return &FeeResult{
			AmountDue: 0,
			Breakdown: []LineItem{item},
		}, nil
	}

	checkOutAt := req.Now
	if req.CheckOutAt != nil {
		checkOutAt = *req.CheckOutAt
	}

	minutes, err := resolveMinutes(req.CheckInAt, checkOutAt)
	if err != nil {
		return nil, err
	}

	result := &FeeResult{BillableMinutes: minutes}
	for _, sel := range selectTiers(minutes, *req.Schedule) {
		rate := req.Schedule.rateFor(sel.kind)
		item := LineItem{
			Kind:     sel.kind,
			Quantity: sel.quantity,
			UnitRate: rate,
			Subtotal: Money(sel.quantity) * rate,
		}
		item.Description = describe(item, nil)
		result.Breakdown = append(result.Breakdown, item)
		result.AmountDue += item.Subtotal
	}

	return result, nil
}
