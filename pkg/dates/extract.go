package dates

import (
	"regexp"
	"strings"
	"time"
)

var (
	quickShortcutPattern = regexp.MustCompile(`(?i)!(today|tomorrow|mon|tue|wed|thu|fri|sat|sun|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	byClausePattern      = regexp.MustCompile(`(?i)^(.*?)(?:\s+by\s+([^,]+))$`)
)

// QuickShortcut strips a "!today" / "!fri" style shortcut from task text and
// resolves it. Returns the cleaned text and the due date, if any.
func QuickShortcut(text string, now time.Time) (string, *time.Time) {
	m := quickShortcutPattern.FindStringSubmatch(text)
	if m == nil {
		return text, nil
	}
	due, ok := Resolve(strings.ToLower(m[1]), now)
	clean := strings.TrimSpace(strings.Replace(text, m[0], "", 1))
	if !ok {
		return clean, nil
	}
	return clean, &due
}

// ByClause strips a trailing "by <phrase>" clause from task text when the
// phrase resolves to a date. Text with an unresolvable clause is returned
// untouched.
func ByClause(text string, now time.Time) (string, *time.Time) {
	m := byClausePattern.FindStringSubmatch(text)
	if m == nil {
		return text, nil
	}
	due, ok := Resolve(strings.TrimSpace(m[2]), now)
	if !ok {
		return text, nil
	}
	return strings.TrimSpace(m[1]), &due
}
