package printers

import (
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/ambit/pkg/state"
)

func taskDue(text string, due time.Time) *state.Task {
	t := state.NewTask(text)
	t.Due = &due
	return t
}

func TestFormatDue(t *testing.T) {
	if got := FormatDue(state.NewTask("no date")); got != "" {
		t.Fatalf("FormatDue() = %q, want empty", got)
	}
	due := time.Date(2025, time.January, 10, 23, 59, 0, 0, time.Local)
	if got := FormatDue(taskDue("ship it", due)); got != "1/10" {
		t.Fatalf("FormatDue() = %q, want 1/10", got)
	}
}

func TestSummary(t *testing.T) {
	later := time.Date(2025, time.February, 1, 23, 59, 0, 0, time.Local)
	sooner := time.Date(2025, time.January, 10, 23, 59, 0, 0, time.Local)

	done := state.NewTask("done")
	done.Completed = true
	// A completed task's due date never counts as the next one.
	doneSoonest := taskDue("done early", time.Date(2025, time.January, 2, 0, 0, 0, 0, time.Local))
	doneSoonest.Completed = true

	pending, completed, nextDue := Summary([]*state.Task{
		taskDue("later", later),
		taskDue("sooner", sooner),
		state.NewTask("undated"),
		done,
		doneSoonest,
	})
	if pending != 3 || completed != 2 {
		t.Fatalf("Summary() = %d pending, %d completed", pending, completed)
	}
	if nextDue != "1/10" {
		t.Fatalf("nextDue = %q, want 1/10", nextDue)
	}
}

func TestSummaryEmpty(t *testing.T) {
	pending, completed, nextDue := Summary(nil)
	if pending != 0 || completed != 0 || nextDue != "" {
		t.Fatalf("Summary(nil) = %d, %d, %q", pending, completed, nextDue)
	}
}

func TestHighlightDueClausesMatchesInlinePhrases(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	// With color disabled the highlight is the identity; this pins which
	// phrases the pattern recognizes.
	for _, text := range []string{
		"buy milk by friday",
		"file taxes by 4/15",
		"call mom by tomorrow",
	} {
		if !dueClausePattern.MatchString(text) {
			t.Fatalf("expected %q to contain a due clause", text)
		}
		if got := highlightDueClauses(text); got != text {
			t.Fatalf("highlightDueClauses(%q) = %q", text, got)
		}
	}
	if dueClausePattern.MatchString("standby generator") {
		t.Fatalf("matched a bare word containing 'by'")
	}
}
