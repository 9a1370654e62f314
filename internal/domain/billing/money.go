package billing

import (
	"errors"
	"strconv"
)

var ErrNegativeRate = errors.New("rate cannot be negative")

// Money is an amount in whole Vietnamese đồng. VND has no minor unit,
// so all arithmetic stays in int64 and never touches floating point.
type Money int64

func (m Money) Int64() int64 {
	return int64(m)
}

func (m Money) String() string {
	return strconv.FormatInt(int64(m), 10) + "đ"
}

// PriceSchedule is the facility's posted tariff. A schedule with all
// rates zero is valid and means free parking.
type PriceSchedule struct {
	PerHour  Money
	PerDay   Money
	PerMonth Money
}

func NewPriceSchedule(perHour, perDay, perMonth Money) (*PriceSchedule, error) {
	if perHour < 0 || perDay < 0 || perMonth < 0 {
		return nil, ErrNegativeRate
	}
	return &PriceSchedule{
		PerHour:  perHour,
		PerDay:   perDay,
		PerMonth: perMonth,
	}, nil
}

func (s PriceSchedule) rateFor(kind TierKind) Money {
	switch kind {
	case TierHour:
		return s.PerHour
	case TierDay:
		return s.PerDay
	case TierMonth:
		return s.PerMonth
	default:
		return 0
	}
}
