package session

import "errors"

var ErrInvalidRentalType = errors.New("invalid rental type")

// RentalType distinguishes walk-in vehicles from contract holders.
type RentalType string

const (
	RentalWalkin   RentalType = "walkin"
	RentalContract RentalType = "contract"
)

func (r RentalType) String() string {
	return string(r)
}

func (r RentalType) IsValid() bool {
	switch r {
	case RentalWalkin, RentalContract:
		return true
	default:
		return false
	}
}

func NewRentalType(s string) (RentalType, error) {
	rt := RentalType(s)
	if !rt.IsValid() {
		return "", ErrInvalidRentalType
	}
	return rt, nil
}
