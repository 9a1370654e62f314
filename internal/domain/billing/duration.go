package billing

import (
	"fmt"
	"time"
)

// InvalidDurationError reports a checkout that precedes checkin. This is
// bad data (clock skew, corrupted log) and must surface to the caller;
// clamping it to zero would hide a billing discrepancy.
type InvalidDurationError struct {
	CheckInAt  time.Time
	CheckOutAt time.Time
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("checkout %s precedes checkin %s",
		e.CheckOutAt.Format(time.RFC3339), e.CheckInAt.Format(time.RFC3339))
}

// resolveMinutes converts a stay into billable whole minutes. Partial
// minutes always round up against the customer, the standard parking
// convention.
func resolveMinutes(checkInAt, checkOutAt time.Time) (int64, error) {
	if checkOutAt.Before(checkInAt) {
		return 0, &InvalidDurationError{CheckInAt: checkInAt, CheckOutAt: checkOutAt}
	}
	d := checkOutAt.Sub(checkInAt)
	minutes := int64(d / time.Minute)
	if d%time.Minute != 0 {
		minutes++
	}
	return minutes, nil
}
