// Package dates resolves free-form date phrases ("by friday", "in 3 business
// days", "+2w", "5pm") to concrete timestamps.
//
// Resolution is an ordered cascade of pattern checks and the first match
// wins; the ordering is a behavioral contract, not an optimization, so the
// checks are written as one explicit sequence.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	weekdaysShort = []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}
	weekdaysFull  = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

	timeAmPmPattern = regexp.MustCompile(`\b(?:at\s+)?(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	time24Pattern   = regexp.MustCompile(`\b(?:at\s+)?(\d{1,2}):(\d{2})\b`)

	plusShorthandPattern = regexp.MustCompile(`^\+(\d+)\s*([dwm])$`)
	inBusinessPattern    = regexp.MustCompile(`^in\s+(\d+|[a-z-]+)\s*(business\s+days?|biz\s+days?|bdays?)$`)
	inNumericPattern     = regexp.MustCompile(`^in\s+(\d+)\s*(days?|weeks?|wks?|months?|mos?|years?|yrs?)$`)
	inWordPattern        = regexp.MustCompile(`^in\s+([a-z-]+)\s*(days?|weeks?|wks?|months?|mos?|years?|yrs?)$`)
	bareUnitPattern      = regexp.MustCompile(`^(\d+)\s*(wks?|weeks?|mos?|months?|yrs?|years?)$`)
	thisNextPattern      = regexp.MustCompile(`^(this|next)\s+([a-z]+)$`)
	compactPattern       = regexp.MustCompile(`^(\d+)\s*([dw])$`)
	dateLiteralPattern   = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?$`)
)

// WeekdayIndex maps a short or full weekday name to 0-6 (0 = Sunday), or -1.
func WeekdayIndex(token string) int {
	s := strings.ToLower(token)
	for i, w := range weekdaysShort {
		if s == w {
			return i
		}
	}
	for i, w := range weekdaysFull {
		if s == w {
			return i
		}
	}
	return -1
}

// AtEndOfDay returns 23:59:00 on the same calendar day, so a bare date means
// "due by end of that day".
func AtEndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 0, 0, t.Location())
}

type clockTime struct {
	hour, minute int
}

// Resolve turns a date phrase into a concrete timestamp. The second return
// is false when no pattern matched, which callers treat as "no date
// intended", not as an error.
func Resolve(phrase string, now time.Time) (time.Time, bool) {
	p := strings.ToLower(strings.TrimSpace(phrase))
	if p == "" {
		return time.Time{}, false
	}

	// An embedded clock time applies to whichever calendar date the rest of
	// the phrase resolves to.
	var clock *clockTime
	if m := timeAmPmPattern.FindStringSubmatch(p); m != nil {
		hh, _ := strconv.Atoi(m[1])
		mm := 0
		if m[2] != "" {
			mm, _ = strconv.Atoi(m[2])
		}
		h := hh % 12
		if m[3] == "pm" {
			h += 12
		}
		clock = &clockTime{hour: h, minute: mm}
		p = strings.TrimSpace(strings.Replace(p, m[0], "", 1))
	} else if m := time24Pattern.FindStringSubmatch(p); m != nil {
		h, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		clock = &clockTime{hour: h, minute: mm}
		p = strings.TrimSpace(strings.Replace(p, m[0], "", 1))
	}

	withClock := func(t time.Time) time.Time {
		if clock == nil {
			return AtEndOfDay(t)
		}
		return time.Date(t.Year(), t.Month(), t.Day(), clock.hour, clock.minute, 0, 0, t.Location())
	}

	// +3d, +2w, +1m
	if m := plusShorthandPattern.FindStringSubmatch(p); m != nil {
		n, _ := strconv.Atoi(m[1])
		switch m[2] {
		case "d":
			return withClock(now.AddDate(0, 0, n)), true
		case "w":
			return withClock(now.AddDate(0, 0, n*7)), true
		case "m":
			return withClock(now.AddDate(0, n, 0)), true
		}
	}

	// in N business days (numeric or word number)
	if m := inBusinessPattern.FindStringSubmatch(p); m != nil {
		if n, ok := numberToken(m[1]); ok {
			return withClock(AddBusinessDays(now, n)), true
		}
	}

	// in N days/weeks/months/years
	if m := inNumericPattern.FindStringSubmatch(p); m != nil {
		n, _ := strconv.Atoi(m[1])
		return withClock(addUnit(now, n, m[2])), true
	}

	// in <word number> days/weeks/months/years
	if m := inWordPattern.FindStringSubmatch(p); m != nil {
		if n, ok := ParseNumberWord(m[1]); ok {
			return withClock(addUnit(now, n, m[2])), true
		}
	}

	// standalone "2 wks", "3 mo", "1 yr" without "in"
	if m := bareUnitPattern.FindStringSubmatch(p); m != nil {
		n, _ := strconv.Atoi(m[1])
		return withClock(addUnit(now, n, m[2])), true
	}

	switch p {
	case "today":
		return withClock(now), true
	case "tomorrow", "tmr", "tmrw":
		return withClock(now.AddDate(0, 0, 1)), true
	case "next week":
		return withClock(now.AddDate(0, 0, 7)), true
	case "next month":
		return withClock(now.AddDate(0, 1, 0)), true
	case "next year":
		return withClock(now.AddDate(1, 0, 0)), true
	case "eom", "end of month":
		// Day zero of the next month is the last day of this one.
		return withClock(time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location())), true
	case "eow", "end of week":
		delta := (7 - int(now.Weekday())) % 7
		return withClock(now.AddDate(0, 0, delta)), true
	}

	if strings.Contains(p, "business day") || strings.Contains(p, "biz day") || strings.Contains(p, "bday") {
		return withClock(AddBusinessDays(now, 1)), true
	}

	// this <weekday> / next <weekday>. "this" is the coming occurrence
	// inside the current week and resolves to today when the weekday matches
	// today; "next" always lands in a following week.
	if m := thisNextPattern.FindStringSubmatch(p); m != nil {
		if idx := WeekdayIndex(m[2]); idx != -1 {
			delta := (7 - int(now.Weekday()) + idx) % 7
			if m[1] == "next" {
				delta += 7
			}
			return withClock(now.AddDate(0, 0, delta)), true
		}
	}

	// bare weekday name: next strict occurrence, never today
	if idx := WeekdayIndex(p); idx != -1 {
		delta := (7 - int(now.Weekday()) + idx) % 7
		if delta == 0 {
			delta = 7
		}
		return withClock(now.AddDate(0, 0, delta)), true
	}

	// compact 3d / 2w
	if m := compactPattern.FindStringSubmatch(p); m != nil {
		n, _ := strconv.Atoi(m[1])
		if m[2] == "w" {
			n *= 7
		}
		return withClock(now.AddDate(0, 0, n)), true
	}

	// m/d, m/d/yy, m/d/yyyy
	if m := dateLiteralPattern.FindStringSubmatch(p); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year := now.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			if year < 100 {
				year += 2000
			}
		}
		return withClock(time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())), true
	}

	// Only a clock time was given: today at that time, or tomorrow if it
	// already passed.
	if clock != nil {
		t := time.Date(now.Year(), now.Month(), now.Day(), clock.hour, clock.minute, 0, 0, now.Location())
		if !t.After(now) {
			t = t.AddDate(0, 0, 1)
		}
		return t, true
	}

	return time.Time{}, false
}

func addUnit(t time.Time, n int, unit string) time.Time {
	switch {
	case strings.HasPrefix(unit, "day"):
		return t.AddDate(0, 0, n)
	case strings.HasPrefix(unit, "wk"), strings.HasPrefix(unit, "week"):
		return t.AddDate(0, 0, n*7)
	case strings.HasPrefix(unit, "mo"):
		return t.AddDate(0, n, 0)
	case strings.HasPrefix(unit, "yr"), strings.HasPrefix(unit, "year"):
		return t.AddDate(n, 0, 0)
	}
	return t
}

func numberToken(token string) (int, bool) {
	if n, err := strconv.Atoi(token); err == nil {
		return n, true
	}
	return ParseNumberWord(token)
}

// IsHoliday reports whether the date falls on one of the six fixed US
// holidays observed by the business-day stepper.
func IsHoliday(t time.Time) bool {
	m, d := t.Month(), t.Day()
	switch {
	case m == time.January && d == 1: // New Year's Day
		return true
	case m == time.May && t.Weekday() == time.Monday && d > 24: // Memorial Day
		return true
	case m == time.July && d == 4: // Independence Day
		return true
	case m == time.September && t.Weekday() == time.Monday && d < 8: // Labor Day
		return true
	case m == time.November && t.Weekday() == time.Thursday && d > 21 && d < 29: // Thanksgiving
		return true
	case m == time.December && d == 25: // Christmas Day
		return true
	}
	return false
}

// AddBusinessDays steps forward n days that are neither weekends nor
// holidays.
func AddBusinessDays(t time.Time, n int) time.Time {
	count := 0
	for count < n {
		t = t.AddDate(0, 0, 1)
		if wd := t.Weekday(); wd != time.Saturday && wd != time.Sunday && !IsHoliday(t) {
			count++
		}
	}
	return t
}
