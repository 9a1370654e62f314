package billing

type TierKind string

const (
	TierMonth    TierKind = "month"
	TierDay      TierKind = "day"
	TierHour     TierKind = "hour"
	TierContract TierKind = "contract"
)

func (k TierKind) String() string {
	return string(k)
}

const (
	minutesPerHour  = 60
	minutesPerDay   = 24 * minutesPerHour
	minutesPerMonth = 30 * minutesPerDay
)

type tierSelection struct {
	kind     TierKind
	quantity int64
}

// selectTiers decomposes a billable duration into posted-tariff blocks,
// greedy largest unit first. A tier with a zero rate is skipped entirely
// and its share falls through to the next smaller unit. The remainder is
// billed in whole hours, rounding up, with a minimum of one hour: a
// vehicle occupies a space even for a zero-minute stay.
//
// A block that would cost more than the next larger tier's flat rate is
// promoted to that tier instead. Without the promotion the fee would
// drop as a stay grows past a tier boundary (24 hours charged hourly
// exceeds one day's rate).
func selectTiers(minutes int64, schedule PriceSchedule) []tierSelection {
	remaining := minutes

	var months, days, hours int64
	if schedule.PerMonth > 0 && remaining >= minutesPerMonth {
		months = remaining / minutesPerMonth
		remaining %= minutesPerMonth
	}

	if schedule.PerDay > 0 && remaining >= minutesPerDay {
		days = remaining / minutesPerDay
		remaining %= minutesPerDay
	}

	if schedule.PerHour > 0 {
		hours = remaining / minutesPerHour
		if remaining%minutesPerHour != 0 {
			hours++
		}
		if hours == 0 && months == 0 && days == 0 {
			hours = 1
		}
	}

	if hours > 0 && schedule.PerDay > 0 && Money(hours)*schedule.PerHour > schedule.PerDay {
		days++
		hours = 0
	}
	if hours > 0 && schedule.PerDay == 0 && schedule.PerMonth > 0 && Money(hours)*schedule.PerHour > schedule.PerMonth {
		months++
		hours = 0
	}
	if days > 0 && schedule.PerMonth > 0 && Money(days)*schedule.PerDay > schedule.PerMonth {
		months++
		days = 0
	}

	var selected []tierSelection
	if months > 0 {
		selected = append(selected, tierSelection{TierMonth, months})
	}
	if days > 0 {
		selected = append(selected, tierSelection{TierDay, days})
	}
	if hours > 0 {
		selected = append(selected, tierSelection{TierHour, hours})
	}
	return selected
}
