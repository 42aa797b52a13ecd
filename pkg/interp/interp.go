// Package interp executes single-line tracker commands against an AppState.
// Malformed lines and references to missing entities are silent no-ops; the
// only externally visible outcome is whether the state changed.
package interp

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"tableflip.dev/ambit/pkg/dates"
	"tableflip.dev/ambit/pkg/state"
)

// Interpreter dispatches command lines. The zero value is usable; completions
// apply immediately unless CompleteDelay is set.
type Interpreter struct {
	// CompleteDelay defers the visible effect of "done" so a UI can play its
	// removal transition first. Zero applies completions inline.
	CompleteDelay time.Duration

	// OnChange runs after every applied mutation, including deferred
	// completions firing later. Callers hook persistence here. It must not
	// re-enter the interpreter. A deferred fire passes a copy of the state,
	// since it may run on a timer goroutine.
	OnChange func(*state.AppState)

	// Clock supplies the fire-time "now" for deferred completions.
	// Defaults to time.Now.
	Clock func() time.Time

	// Schedule runs fn after d and returns a cancel func. Defaults to
	// time.AfterFunc. Tests inject a manual trigger here.
	Schedule func(d time.Duration, fn func()) func()

	mu      sync.Mutex
	pending map[*state.Task]func()
}

func New() *Interpreter {
	return &Interpreter{}
}

// outcome classifies a dispatch internally. Both non-applied outcomes look
// identical from the outside (no change), but tests care which one happened.
type outcome int

const (
	outcomeNoSyntax outcome = iota
	outcomeMissingEntity
	outcomeApplied
	outcomeDeferred
)

// Execute runs one command line against the state and reports whether
// anything changed, compared by structural snapshot. A deferred completion
// reports no change now; the change surfaces through OnChange when it fires.
func (in *Interpreter) Execute(line string, st *state.AppState, now time.Time) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	in.mu.Lock()
	before := st.Snapshot()
	in.dispatch(line, st, now)
	changed := !bytes.Equal(before, st.Snapshot())
	onChange := in.OnChange
	in.mu.Unlock()

	if changed && onChange != nil {
		onChange(st)
	}
	return changed
}

// Command forms are checked in a fixed priority order; the first matching
// form handles the line.
func (in *Interpreter) dispatch(line string, st *state.AppState, now time.Time) outcome {
	switch {
	case strings.HasPrefix(line, "order "):
		return orderCommand(st, line[len("order "):])
	case strings.HasPrefix(line, "every "):
		return everyCommand(st, line[len("every "):], now)
	case strings.HasPrefix(line, "snooze "):
		return snoozeCommand(st, line[len("snooze "):], now)
	case strings.HasPrefix(line, "rn "):
		return renameCommand(st, line[len("rn "):])
	case strings.HasPrefix(line, "mv "):
		return moveCommand(st, line[len("mv "):])
	case strings.HasPrefix(line, "ed "):
		return editCommand(st, line[len("ed "):])
	case strings.HasPrefix(line, "dup "):
		return duplicateCommand(st, line[len("dup "):])
	case strings.HasPrefix(line, "+ "):
		return createCategory(st, line[2:])
	case strings.HasPrefix(line, "@ "):
		return focusCategory(st, line[2:])
	case strings.HasPrefix(line, "- "):
		return deleteCategory(st, line[2:])
	case strings.HasPrefix(line, "pin "):
		return pinCategory(st, line[len("pin "):])
	case strings.HasPrefix(line, "done "):
		return in.doneCommand(st, line[len("done "):], now)
	case strings.HasPrefix(line, "undo "):
		return undoCommand(st, line[len("undo "):])
	case strings.HasPrefix(line, "del "):
		return deleteTask(st, line[len("del "):])
	case strings.Contains(line, ":"):
		return addToNamedCategory(st, line, now)
	case st.Focused != "":
		return addTask(st, st.Focused, line, now)
	}
	return outcomeNoSyntax
}

// order <item>!<direction>, where item is a category (exact name) or a task
// prefix within the focused category. up/down clamp; top/bottom jump.
func orderCommand(st *state.AppState, body string) outcome {
	parts := strings.Split(strings.TrimSpace(body), "!")
	if len(parts) != 2 {
		return outcomeNoSyntax
	}
	item := strings.TrimSpace(parts[0])
	direction := strings.TrimSpace(parts[1])
	if item == "" || direction == "" {
		return outcomeNoSyntax
	}

	if idx := indexOf(st.CategoryOrder, item); idx != -1 {
		moveElement(st.CategoryOrder, idx, shiftedIndex(idx, len(st.CategoryOrder), direction))
		return outcomeApplied
	}

	if st.Focused != "" {
		tasks := st.Categories[st.Focused]
		if idx := findTask(tasks, strings.ToLower(item), anyTask); idx != -1 {
			moveElement(tasks, idx, shiftedIndex(idx, len(tasks), direction))
			return outcomeApplied
		}
	}
	return outcomeMissingEntity
}

var (
	everyWeeksPattern    = regexp.MustCompile(`^(\d+)w$`)
	everyDaysPattern     = regexp.MustCompile(`^(\d+)d$`)
	everyMonthDayPattern = regexp.MustCompile(`^(\d+)(st|nd|rd|th)$`)
)

// every <token> <text> creates a recurring task in the focused category.
// Token grammar: weekday abbreviation, N+w / N+d interval, or N+ordinal for
// a day of the month.
func everyCommand(st *state.AppState, body string, now time.Time) outcome {
	if st.Focused == "" {
		return outcomeMissingEntity
	}
	fields := strings.Fields(strings.TrimSpace(body))
	if len(fields) < 2 {
		return outcomeNoSyntax
	}
	token := strings.ToLower(fields[0])
	text := strings.TrimSpace(strings.Join(fields[1:], " "))

	var rec *state.Recurrence
	switch {
	case shortWeekdayIndex(token) != -1:
		rec = state.Weekly(shortWeekdayIndex(token))
	case everyWeeksPattern.MatchString(token):
		n, _ := strconv.Atoi(everyWeeksPattern.FindStringSubmatch(token)[1])
		rec = state.Every(n * 7)
	case everyDaysPattern.MatchString(token):
		n, _ := strconv.Atoi(everyDaysPattern.FindStringSubmatch(token)[1])
		rec = state.Every(n)
	case everyMonthDayPattern.MatchString(token):
		n, _ := strconv.Atoi(everyMonthDayPattern.FindStringSubmatch(token)[1])
		rec = state.Monthly(n)
	default:
		return outcomeNoSyntax
	}

	task := state.NewTask(text)
	task.Recur = rec
	if due, ok := dates.NextFromRecurring(rec, now); ok {
		task.Due = &due
	}
	st.Categories[st.Focused] = append(st.Categories[st.Focused], task)
	return outcomeApplied
}

// snooze <query> -> <phrase> re-dates a task in the focused category.
func snoozeCommand(st *state.AppState, body string, now time.Time) outcome {
	if st.Focused == "" {
		return outcomeMissingEntity
	}
	query, phrase, ok := splitArrow(body)
	if !ok {
		return outcomeNoSyntax
	}
	tasks := st.Categories[st.Focused]
	idx := findTask(tasks, strings.ToLower(query), anyTask)
	if idx == -1 {
		return outcomeMissingEntity
	}
	if due, ok := dates.Resolve(phrase, now); ok {
		tasks[idx].Due = &due
	}
	return outcomeApplied
}

// rn <old> -> <new> renames a category; when the target already exists the
// source's tasks are appended to it instead (rename doubles as merge).
func renameCommand(st *state.AppState, body string) outcome {
	oldName, newName, ok := splitArrow(body)
	if !ok {
		return outcomeNoSyntax
	}
	if oldName == "" || newName == "" {
		return outcomeNoSyntax
	}
	src, exists := st.Categories[oldName]
	if !exists {
		return outcomeMissingEntity
	}

	if dst, merge := st.Categories[newName]; merge {
		st.Categories[newName] = append(dst, src...)
	} else {
		st.Categories[newName] = src
	}
	delete(st.Categories, oldName)

	replaceOrRemove(&st.CategoryOrder, oldName, newName)
	replaceOrRemove(&st.Pinned, oldName, newName)
	if st.Focused == oldName {
		st.Focused = newName
	}
	return outcomeApplied
}

// mv <query> -> <category> moves a task out of the focused category,
// creating the target when it does not exist yet.
func moveCommand(st *state.AppState, body string) outcome {
	query, target, ok := splitArrow(body)
	if !ok {
		return outcomeNoSyntax
	}
	if st.Focused == "" || query == "" || target == "" {
		return outcomeMissingEntity
	}
	tasks := st.Categories[st.Focused]
	idx := findTask(tasks, strings.ToLower(query), anyTask)
	if idx == -1 {
		return outcomeMissingEntity
	}

	task := tasks[idx]
	st.Categories[st.Focused] = append(tasks[:idx], tasks[idx+1:]...)
	if _, ok := st.Categories[target]; !ok {
		st.Categories[target] = []*state.Task{}
		if indexOf(st.CategoryOrder, target) == -1 {
			st.CategoryOrder = append(st.CategoryOrder, target)
		}
	}
	st.Categories[target] = append(st.Categories[target], task)
	return outcomeApplied
}

// ed <query> -> <text> replaces the task's text, keeping everything else.
// The record is replaced, not mutated, so a pending deferred completion on
// the old record becomes a no-op.
func editCommand(st *state.AppState, body string) outcome {
	query, text, ok := splitArrow(body)
	if !ok {
		return outcomeNoSyntax
	}
	if st.Focused == "" || query == "" || text == "" {
		return outcomeMissingEntity
	}
	tasks := st.Categories[st.Focused]
	idx := findTask(tasks, strings.ToLower(query), anyTask)
	if idx == -1 {
		return outcomeMissingEntity
	}
	prev := tasks[idx]
	tasks[idx] = &state.Task{
		Text:      text,
		Completed: prev.Completed,
		Due:       prev.Due,
		Recur:     prev.Recur,
	}
	return outcomeApplied
}

// dup <query> appends a copy of the matched task.
func duplicateCommand(st *state.AppState, body string) outcome {
	query := strings.ToLower(strings.TrimSpace(body))
	if st.Focused == "" || query == "" {
		return outcomeMissingEntity
	}
	tasks := st.Categories[st.Focused]
	idx := findTask(tasks, query, anyTask)
	if idx == -1 {
		return outcomeMissingEntity
	}
	src := tasks[idx]
	copied := *src
	if src.Due != nil {
		due := *src.Due
		copied.Due = &due
	}
	st.Categories[st.Focused] = append(tasks, &copied)
	return outcomeApplied
}

// + <name> creates a category and focuses it. Creating an existing category
// is a no-op.
func createCategory(st *state.AppState, name string) outcome {
	name = strings.TrimSpace(name)
	if name == "" {
		return outcomeNoSyntax
	}
	if _, ok := st.Categories[name]; ok {
		return outcomeMissingEntity
	}
	st.Categories[name] = []*state.Task{}
	st.CategoryOrder = append(st.CategoryOrder, name)
	st.Focused = name
	return outcomeApplied
}

// @ <name> focuses an existing category.
func focusCategory(st *state.AppState, name string) outcome {
	name = strings.TrimSpace(name)
	if _, ok := st.Categories[name]; !ok {
		return outcomeMissingEntity
	}
	st.Focused = name
	return outcomeApplied
}

// - <name> deletes a category and purges it from the order and pin lists,
// clearing focus if it was focused.
func deleteCategory(st *state.AppState, name string) outcome {
	name = strings.TrimSpace(name)
	if _, ok := st.Categories[name]; !ok {
		return outcomeMissingEntity
	}
	delete(st.Categories, name)
	if st.Focused == name {
		st.Focused = ""
	}
	removeString(&st.Pinned, name)
	removeString(&st.CategoryOrder, name)
	return outcomeApplied
}

// pin <name> toggles pin membership.
func pinCategory(st *state.AppState, name string) outcome {
	name = strings.TrimSpace(name)
	if _, ok := st.Categories[name]; !ok {
		return outcomeMissingEntity
	}
	if st.IsPinned(name) {
		removeString(&st.Pinned, name)
	} else {
		st.Pinned = append(st.Pinned, name)
	}
	return outcomeApplied
}

// done <query> completes the first matching incomplete task. With a
// CompleteDelay the mutation is scheduled, keyed by task identity, and
// re-validated against live state when it fires.
func (in *Interpreter) doneCommand(st *state.AppState, body string, now time.Time) outcome {
	query := strings.ToLower(strings.TrimSpace(body))
	if st.Focused == "" || query == "" {
		return outcomeMissingEntity
	}
	tasks := st.Categories[st.Focused]
	idx := findTask(tasks, query, incompleteTask)
	if idx == -1 {
		return outcomeMissingEntity
	}
	task := tasks[idx]

	if in.CompleteDelay > 0 {
		in.scheduleCompletion(st, task)
		return outcomeDeferred
	}
	completeTask(task, now)
	return outcomeApplied
}

// undo <query> marks a completed task incomplete again.
func undoCommand(st *state.AppState, body string) outcome {
	query := strings.ToLower(strings.TrimSpace(body))
	if st.Focused == "" || query == "" {
		return outcomeMissingEntity
	}
	tasks := st.Categories[st.Focused]
	idx := findTask(tasks, query, completedTask)
	if idx == -1 {
		return outcomeMissingEntity
	}
	tasks[idx].Completed = false
	return outcomeApplied
}

// del <query> removes the first matching task regardless of completion.
func deleteTask(st *state.AppState, body string) outcome {
	query := strings.ToLower(strings.TrimSpace(body))
	if st.Focused == "" || query == "" {
		return outcomeMissingEntity
	}
	tasks := st.Categories[st.Focused]
	idx := findTask(tasks, query, anyTask)
	if idx == -1 {
		return outcomeMissingEntity
	}
	st.Categories[st.Focused] = append(tasks[:idx], tasks[idx+1:]...)
	return outcomeApplied
}

// <category>: <text> adds a task to the named category, which must already
// exist. Independent of focus.
func addToNamedCategory(st *state.AppState, line string, now time.Time) outcome {
	parts := strings.SplitN(line, ":", 2)
	name := strings.TrimSpace(parts[0])
	text := strings.TrimSpace(parts[1])
	if text == "" {
		return outcomeNoSyntax
	}
	if _, ok := st.Categories[name]; !ok {
		return outcomeMissingEntity
	}
	return addTask(st, name, text, now)
}

// addTask strips a leading !shortcut and a trailing "by <phrase>" clause
// from the text; the shortcut's date wins when both resolve.
func addTask(st *state.AppState, category, text string, now time.Time) outcome {
	clean, quickDue := dates.QuickShortcut(text, now)
	clean, byDue := dates.ByClause(clean, now)
	if clean == "" {
		return outcomeNoSyntax
	}
	due := quickDue
	if due == nil {
		due = byDue
	}
	task := state.NewTask(clean)
	task.Due = due
	st.Categories[category] = append(st.Categories[category], task)
	return outcomeApplied
}

func completeTask(task *state.Task, now time.Time) {
	task.Completed = true
	if task.Recur != nil {
		// The same record rolls forward to its next occurrence; completing a
		// recurring task never duplicates it.
		if next, ok := dates.NextFromRecurring(task.Recur, now); ok {
			task.Due = &next
		}
	}
}

func splitArrow(body string) (left, right string, ok bool) {
	parts := strings.Split(strings.TrimSpace(body), "->")
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}
