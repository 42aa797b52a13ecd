package printers

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/fatih/color"

	"tableflip.dev/ambit/pkg/state"
)

const (
	pendingBullet   = "-"
	completedBullet = "+"
)

var dueClausePattern = regexp.MustCompile(`(?i)\b(by\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday|today|tomorrow|\d{1,2}/\d{1,2}(/\d{2,4})?))\b`)

type PrettyPrint struct {
	ShowCompleted bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

// Title prints a category heading; the focused category is marked "> name".
func (pp *PrettyPrint) Title(name string, focused bool) {
	t := color.New(color.Bold, color.Underline)
	if focused {
		_, _ = t.Printf("> %s\n", name)
	} else {
		_, _ = t.Println(name)
	}
}

// Category prints a category's tasks, completed ones last.
func (pp *PrettyPrint) Category(tasks ...*state.Task) {
	ordered := make([]*state.Task, len(tasks))
	copy(ordered, tasks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return !ordered[i].Completed && ordered[j].Completed
	})

	shown := 0
	plain := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	due := color.New(color.FgHiYellow, color.Italic)

	for _, task := range ordered {
		if task.Completed && !pp.ShowCompleted {
			continue
		}
		shown++
		if task.Completed {
			_, _ = done.Printf("%s %s", completedBullet, task.Text)
		} else {
			_, _ = plain.Printf("%s %s", pendingBullet, highlightDueClauses(task.Text))
		}
		if task.Due != nil {
			_, _ = due.Printf(" [%d/%d]", int(task.Due.Month()), task.Due.Day())
		}
		fmt.Println("")
	}

	if shown == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n")
	}
	fmt.Println("")
}

// State prints every category in display order: pinned first, then the rest.
func (pp *PrettyPrint) State(st *state.AppState) {
	for _, name := range st.DisplayOrder() {
		pp.Title(name, name == st.Focused)
		pp.Category(st.Categories[name]...)
	}
}

// highlightDueClauses colors inline "by friday" style phrases left in task
// text.
func highlightDueClauses(text string) string {
	hl := color.New(color.FgHiYellow).SprintFunc()
	return dueClausePattern.ReplaceAllStringFunc(text, func(m string) string {
		return hl(m)
	})
}

// FormatDue renders a due timestamp the way task rows display it.
func FormatDue(t *state.Task) string {
	if t.Due == nil {
		return ""
	}
	return fmt.Sprintf("%d/%d", int(t.Due.Month()), t.Due.Day())
}

// Summary is a one-line category digest used by tabular listings.
func Summary(tasks []*state.Task) (pending, completed int, nextDue string) {
	var soonest *state.Task
	for _, task := range tasks {
		if task.Completed {
			completed++
			continue
		}
		pending++
		if task.Due != nil && (soonest == nil || task.Due.Before(*soonest.Due)) {
			soonest = task
		}
	}
	if soonest != nil {
		nextDue = FormatDue(soonest)
	}
	return pending, completed, nextDue
}
