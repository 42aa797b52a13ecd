package dates

import (
	"time"

	"tableflip.dev/ambit/pkg/state"
)

// NextFromRecurring computes when a recurring task is next due after now.
// Results land at end of day; callers apply any explicit clock time on top.
func NextFromRecurring(rec *state.Recurrence, now time.Time) (time.Time, bool) {
	if rec == nil {
		return time.Time{}, false
	}
	switch rec.Type {
	case state.RecurWeekday:
		target := 0
		if rec.Weekday != nil {
			target = *rec.Weekday
		}
		// Next strict occurrence, never today.
		delta := (7 - int(now.Weekday()) + target) % 7
		if delta == 0 {
			delta = 7
		}
		return AtEndOfDay(now.AddDate(0, 0, delta)), true
	case state.RecurInterval:
		days := 7
		if rec.Days != nil && *rec.Days > 0 {
			days = *rec.Days
		}
		return AtEndOfDay(now.AddDate(0, 0, days)), true
	case state.RecurMonthDay:
		day := 1
		if rec.Day != nil {
			day = *rec.Day
		}
		t := time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, now.Location())
		if !t.After(now) {
			t = t.AddDate(0, 1, 0)
		}
		return AtEndOfDay(t), true
	}
	return time.Time{}, false
}
