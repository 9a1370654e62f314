package request

// UpdatePriceScheduleRequest is a partial update; nil fields keep the
// current rate.
type UpdatePriceScheduleRequest struct {
	PerHour  *int64 `json:"per_hour,omitempty" binding:"omitempty,gte=0"`
	PerDay   *int64 `json:"per_day,omitempty" binding:"omitempty,gte=0"`
	PerMonth *int64 `json:"per_month,omitempty" binding:"omitempty,gte=0"`
}
