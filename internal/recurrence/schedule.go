package recurrence

import (
	"time"

	"github.com/jdewildt/Finance-Ledger-Backend/internal/model"
)

// frequencyStep returns the calendar interval of a frequency as either
// a day count or a month count. Exactly one of the two is non-zero.
func frequencyStep(f model.Frequency) (days, months int) {
	switch f {
	case model.FrequencyDaily:
		return 1, 0
	case model.FrequencyWeekly:
		return 7, 0
	case model.FrequencyBiweekly:
		return 14, 0
	case model.FrequencyMonthly:
		return 0, 1
	case model.FrequencyBimonthly:
		return 0, 2
	case model.FrequencyQuarterly:
		return 0, 3
	case model.FrequencySemiannual:
		return 0, 6
	case model.FrequencyAnnual:
		return 0, 12
	}
	return 0, 0
}

// Advance returns the scheduled date n intervals after the anchor date.
//
// Day-based frequencies advance by whole days. Month-based frequencies
// preserve the anchor's day-of-month and clamp to the last day of
// shorter months, so a schedule anchored on January 31st lands on
// February 29th in a leap year and back on March 31st the month after.
// Advancing is always computed from the anchor, never from the previous
// occurrence, so the clamp never sticks.
func Advance(anchor time.Time, f model.Frequency, n int) time.Time {
	days, months := frequencyStep(f)
	if days > 0 {
		return anchor.AddDate(0, 0, n*days)
	}
	return addMonthsClamped(anchor, n*months)
}

// addMonthsClamped adds months to a date, clamping the day-of-month to
// the target month's last day instead of letting time.AddDate overflow
// into the next month.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := lastDayOfMonth(first); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// lastDayOfMonth returns the number of days in the month of t.
func lastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
