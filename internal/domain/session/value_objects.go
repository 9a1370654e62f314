package session

import (
	"errors"
	"strings"
)

var (
	ErrEmptyLicensePlate   = errors.New("license plate cannot be empty")
	ErrLicensePlateTooLong = errors.New("license plate too long")
)

const maxLicensePlateLength = 16

// LicensePlate is stored normalized: spaces, dots and dashes removed,
// upper case. Camera OCR and manual entry disagree on formatting, so
// lookups must not depend on it.
type LicensePlate struct {
	value string
}

func NewLicensePlate(raw string) (LicensePlate, error) {
	normalized := strings.ToUpper(strings.NewReplacer(" ", "", "-", "", ".", "").Replace(raw))
	if normalized == "" {
		return LicensePlate{}, ErrEmptyLicensePlate
	}
	if len(normalized) > maxLicensePlateLength {
		return LicensePlate{}, ErrLicensePlateTooLong
	}
	return LicensePlate{value: normalized}, nil
}

func (p LicensePlate) String() string {
	return p.value
}

func (p LicensePlate) IsZero() bool {
	return p.value == ""
}
