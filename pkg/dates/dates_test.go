package dates

import (
	"testing"
	"time"
)

// Tuesday, January 7 2025, 10:00 local.
var testNow = time.Date(2025, time.January, 7, 10, 0, 0, 0, time.Local)

func mustResolve(t *testing.T, phrase string, now time.Time) time.Time {
	t.Helper()
	got, ok := Resolve(phrase, now)
	if !ok {
		t.Fatalf("expected %q to resolve", phrase)
	}
	return got
}

func wantDay(t *testing.T, got time.Time, year int, month time.Month, day int) {
	t.Helper()
	if got.Year() != year || got.Month() != month || got.Day() != day {
		t.Fatalf("expected %d-%02d-%02d, got %v", year, month, day, got)
	}
}

func TestResolveNoMatch(t *testing.T) {
	for _, phrase := range []string{"", "banana", "next something", "call mom"} {
		if _, ok := Resolve(phrase, testNow); ok {
			t.Fatalf("expected %q not to resolve", phrase)
		}
	}
}

func TestResolveEndOfDayDefault(t *testing.T) {
	got := mustResolve(t, "today", testNow)
	wantDay(t, got, 2025, time.January, 7)
	if got.Hour() != 23 || got.Minute() != 59 {
		t.Fatalf("expected end of day, got %v", got)
	}
}

func TestResolvePlusShorthand(t *testing.T) {
	wantDay(t, mustResolve(t, "+3d", testNow), 2025, time.January, 10)
	wantDay(t, mustResolve(t, "+2w", testNow), 2025, time.January, 21)
	wantDay(t, mustResolve(t, "+1m", testNow), 2025, time.February, 7)
}

func TestResolveInUnits(t *testing.T) {
	wantDay(t, mustResolve(t, "in 3 days", testNow), 2025, time.January, 10)
	wantDay(t, mustResolve(t, "in 2 weeks", testNow), 2025, time.January, 21)
	wantDay(t, mustResolve(t, "in 1 month", testNow), 2025, time.February, 7)
	wantDay(t, mustResolve(t, "in 2 yrs", testNow), 2027, time.January, 7)
}

func TestResolveInWordNumbers(t *testing.T) {
	wantDay(t, mustResolve(t, "in three days", testNow), 2025, time.January, 10)
	wantDay(t, mustResolve(t, "in twenty-one days", testNow), 2025, time.January, 28)
	wantDay(t, mustResolve(t, "in couple weeks", testNow), 2025, time.January, 21)
}

func TestResolveBareUnit(t *testing.T) {
	wantDay(t, mustResolve(t, "2 wks", testNow), 2025, time.January, 21)
	wantDay(t, mustResolve(t, "1 mo", testNow), 2025, time.February, 7)
	wantDay(t, mustResolve(t, "1 yr", testNow), 2026, time.January, 7)
}

func TestResolveCompact(t *testing.T) {
	wantDay(t, mustResolve(t, "3d", testNow), 2025, time.January, 10)
	wantDay(t, mustResolve(t, "2w", testNow), 2025, time.January, 21)
}

func TestResolveLiterals(t *testing.T) {
	wantDay(t, mustResolve(t, "tomorrow", testNow), 2025, time.January, 8)
	wantDay(t, mustResolve(t, "tmrw", testNow), 2025, time.January, 8)
	wantDay(t, mustResolve(t, "next week", testNow), 2025, time.January, 14)
	wantDay(t, mustResolve(t, "next month", testNow), 2025, time.February, 7)
	wantDay(t, mustResolve(t, "next year", testNow), 2026, time.January, 7)
	wantDay(t, mustResolve(t, "eom", testNow), 2025, time.January, 31)
	wantDay(t, mustResolve(t, "end of month", testNow), 2025, time.January, 31)
}

func TestResolveEndOfWeek(t *testing.T) {
	// Next Sunday from a Tuesday.
	wantDay(t, mustResolve(t, "eow", testNow), 2025, time.January, 12)

	// Already Sunday: today.
	sunday := time.Date(2025, time.January, 12, 10, 0, 0, 0, time.Local)
	wantDay(t, mustResolve(t, "eow", sunday), 2025, time.January, 12)
}

func TestResolveNextBusinessDay(t *testing.T) {
	wantDay(t, mustResolve(t, "next business day", testNow), 2025, time.January, 8)
	wantDay(t, mustResolve(t, "biz day", testNow), 2025, time.January, 8)

	// Friday rolls over the weekend.
	friday := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.Local)
	wantDay(t, mustResolve(t, "next business day", friday), 2025, time.January, 13)
}

func TestResolveInBusinessDays(t *testing.T) {
	friday := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.Local)
	wantDay(t, mustResolve(t, "in 1 business day", friday), 2025, time.January, 13)
	wantDay(t, mustResolve(t, "in three business days", friday), 2025, time.January, 15)

	// Thanksgiving 2025 is Thursday November 27; the step skips it along
	// with the weekend.
	wednesday := time.Date(2025, time.November, 26, 9, 0, 0, 0, time.Local)
	wantDay(t, mustResolve(t, "in 2 business days", wednesday), 2025, time.December, 1)
}

func TestResolveBareWeekdayNeverToday(t *testing.T) {
	for idx, name := range weekdaysFull {
		got := mustResolve(t, name, testNow)
		if int(got.Weekday()) != idx {
			t.Fatalf("%q landed on %v", name, got.Weekday())
		}
		if !got.After(testNow) {
			t.Fatalf("%q did not land after now: %v", name, got)
		}
		days := int(got.Sub(AtEndOfDay(testNow)).Hours() / 24)
		if days < 0 || days > 7 {
			t.Fatalf("%q landed %d days out", name, days)
		}
	}

	// Today is Tuesday; "tue" means next Tuesday.
	wantDay(t, mustResolve(t, "tue", testNow), 2025, time.January, 14)
	wantDay(t, mustResolve(t, "tuesday", testNow), 2025, time.January, 14)
}

func TestResolveNextWeekday(t *testing.T) {
	for idx, name := range weekdaysShort {
		got := mustResolve(t, "next "+name, testNow)
		if int(got.Weekday()) != idx {
			t.Fatalf("next %q landed on %v", name, got.Weekday())
		}
		if !got.After(testNow) {
			t.Fatalf("next %q did not land after now", name)
		}
		if got.Sub(testNow) > 14*24*time.Hour {
			t.Fatalf("next %q landed more than 14 days out: %v", name, got)
		}
	}

	// Within-week delta plus a full week: Friday the 17th, not the 10th.
	wantDay(t, mustResolve(t, "next fri", testNow), 2025, time.January, 17)
}

func TestResolveThisWeekday(t *testing.T) {
	wantDay(t, mustResolve(t, "this fri", testNow), 2025, time.January, 10)

	// "this <today's weekday>" resolves to today. Deliberate: this pins the
	// asymmetric branch, it is not a bug fix target.
	wantDay(t, mustResolve(t, "this tue", testNow), 2025, time.January, 7)
}

func TestResolveDateLiteral(t *testing.T) {
	wantDay(t, mustResolve(t, "4/7", testNow), 2025, time.April, 7)
	wantDay(t, mustResolve(t, "4/7/26", testNow), 2026, time.April, 7)
	wantDay(t, mustResolve(t, "12/25/2030", testNow), 2030, time.December, 25)
}

func TestResolveClockTime(t *testing.T) {
	got := mustResolve(t, "fri at 5pm", testNow)
	wantDay(t, got, 2025, time.January, 10)
	if got.Hour() != 17 || got.Minute() != 0 {
		t.Fatalf("expected 17:00, got %v", got)
	}

	got = mustResolve(t, "tomorrow at 9:30am", testNow)
	wantDay(t, got, 2025, time.January, 8)
	if got.Hour() != 9 || got.Minute() != 30 {
		t.Fatalf("expected 09:30, got %v", got)
	}

	got = mustResolve(t, "today 17:45", testNow)
	if got.Hour() != 17 || got.Minute() != 45 {
		t.Fatalf("expected 17:45, got %v", got)
	}
}

func TestResolveTimeOnly(t *testing.T) {
	// 5pm is still ahead of 10:00, so it means today.
	got := mustResolve(t, "5pm", testNow)
	wantDay(t, got, 2025, time.January, 7)
	if got.Hour() != 17 {
		t.Fatalf("expected 17:00, got %v", got)
	}

	// 8am already passed; roll to tomorrow.
	got = mustResolve(t, "8am", testNow)
	wantDay(t, got, 2025, time.January, 8)
	if got.Hour() != 8 {
		t.Fatalf("expected 08:00, got %v", got)
	}
}

func TestIsHoliday(t *testing.T) {
	holidays := []time.Time{
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local),   // New Year's
		time.Date(2025, time.May, 26, 0, 0, 0, 0, time.Local),      // Memorial Day
		time.Date(2025, time.July, 4, 0, 0, 0, 0, time.Local),      // Independence Day
		time.Date(2025, time.September, 1, 0, 0, 0, 0, time.Local), // Labor Day
		time.Date(2025, time.November, 27, 0, 0, 0, 0, time.Local), // Thanksgiving
		time.Date(2025, time.December, 25, 0, 0, 0, 0, time.Local), // Christmas
	}
	for _, d := range holidays {
		if !IsHoliday(d) {
			t.Fatalf("expected %v to be a holiday", d)
		}
	}

	ordinary := []time.Time{
		time.Date(2025, time.May, 19, 0, 0, 0, 0, time.Local),      // a Monday, not the last
		time.Date(2025, time.November, 20, 0, 0, 0, 0, time.Local), // third Thursday
		time.Date(2025, time.July, 3, 0, 0, 0, 0, time.Local),
	}
	for _, d := range ordinary {
		if IsHoliday(d) {
			t.Fatalf("expected %v not to be a holiday", d)
		}
	}
}

func TestAddBusinessDaysSkipsWeekend(t *testing.T) {
	friday := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.Local)
	got := AddBusinessDays(friday, 1)
	wantDay(t, got, 2025, time.January, 13)

	got = AddBusinessDays(friday, 5)
	wantDay(t, got, 2025, time.January, 17)
}

func TestQuickShortcut(t *testing.T) {
	clean, due := QuickShortcut("pay rent !tomorrow", testNow)
	if clean != "pay rent" {
		t.Fatalf("unexpected clean text: %q", clean)
	}
	if due == nil {
		t.Fatalf("expected a due date")
	}
	wantDay(t, *due, 2025, time.January, 8)

	clean, due = QuickShortcut("no shortcut here", testNow)
	if clean != "no shortcut here" || due != nil {
		t.Fatalf("expected passthrough, got %q %v", clean, due)
	}
}

func TestByClause(t *testing.T) {
	clean, due := ByClause("buy milk by friday", testNow)
	if clean != "buy milk" {
		t.Fatalf("unexpected clean text: %q", clean)
	}
	if due == nil {
		t.Fatalf("expected a due date")
	}
	wantDay(t, *due, 2025, time.January, 10)

	// An unresolvable clause leaves the text alone.
	clean, due = ByClause("stand by the door", testNow)
	if clean != "stand by the door" || due != nil {
		t.Fatalf("expected passthrough, got %q %v", clean, due)
	}
}
