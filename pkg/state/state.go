// Package state holds the in-memory task tracker aggregate: categories of
// tasks plus the ordering, pin, and focus bookkeeping around them.
package state

import (
	"encoding/json"
	"sort"
	"time"
)

// RecurKind tags the recurrence variants.
type RecurKind string

const (
	// RecurWeekday repeats on a fixed weekday (0 = Sunday).
	RecurWeekday RecurKind = "weekday"
	// RecurInterval repeats every N days.
	RecurInterval RecurKind = "interval"
	// RecurMonthDay repeats on a fixed day of the month (1-31).
	RecurMonthDay RecurKind = "monthday"
)

// Recurrence is a closed tagged variant. Exactly one payload field is set,
// matching its kind, so the serialized form is {type, weekday|days|day}.
// Immutable once created.
type Recurrence struct {
	Type    RecurKind `json:"type"`
	Weekday *int      `json:"weekday,omitempty"`
	Days    *int      `json:"days,omitempty"`
	Day     *int      `json:"day,omitempty"`
}

func Weekly(weekday int) *Recurrence {
	return &Recurrence{Type: RecurWeekday, Weekday: &weekday}
}

func Every(days int) *Recurrence {
	return &Recurrence{Type: RecurInterval, Days: &days}
}

func Monthly(day int) *Recurrence {
	return &Recurrence{Type: RecurMonthDay, Day: &day}
}

// Task is a unit of work inside a category.
type Task struct {
	Text      string      `json:"text"`
	Completed bool        `json:"completed"`
	Due       *time.Time  `json:"due,omitempty"`
	Recur     *Recurrence `json:"recur,omitempty"`
}

func NewTask(text string) *Task {
	return &Task{Text: text}
}

// AppState is the aggregate the interpreter mutates. CategoryOrder and
// Pinned only ever reference existing category keys; Focused references an
// existing category or is empty. Focus is session-local and not persisted.
type AppState struct {
	Categories    map[string][]*Task `json:"categories"`
	Pinned        []string           `json:"pinnedCategories"`
	CategoryOrder []string           `json:"categoryOrder"`

	Focused string `json:"-"`
}

func New() *AppState {
	return &AppState{
		Categories:    map[string][]*Task{},
		Pinned:        []string{},
		CategoryOrder: []string{},
	}
}

// Normalize hardens a state loaded from an external document: nil maps and
// slices become empty, order entries for vanished categories are dropped,
// and categories missing from the order list are appended.
func (s *AppState) Normalize() {
	if s.Categories == nil {
		s.Categories = map[string][]*Task{}
	}
	if s.Pinned == nil {
		s.Pinned = []string{}
	}
	if s.CategoryOrder == nil {
		s.CategoryOrder = []string{}
	}

	order := s.CategoryOrder[:0]
	seen := make(map[string]bool, len(s.CategoryOrder))
	for _, name := range s.CategoryOrder {
		if _, ok := s.Categories[name]; ok && !seen[name] {
			order = append(order, name)
			seen[name] = true
		}
	}
	s.CategoryOrder = order
	var missing []string
	for name := range s.Categories {
		if !seen[name] {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	s.CategoryOrder = append(s.CategoryOrder, missing...)

	pinned := s.Pinned[:0]
	for _, name := range s.Pinned {
		if _, ok := s.Categories[name]; ok {
			pinned = append(pinned, name)
		}
	}
	s.Pinned = pinned

	if s.Focused != "" {
		if _, ok := s.Categories[s.Focused]; !ok {
			s.Focused = ""
		}
	}
}

// IsPinned reports whether the category name is in the pin set.
func (s *AppState) IsPinned(name string) bool {
	for _, p := range s.Pinned {
		if p == name {
			return true
		}
	}
	return false
}

// DisplayOrder returns category names with pinned ones first, each group in
// CategoryOrder order.
func (s *AppState) DisplayOrder() []string {
	names := make([]string, 0, len(s.CategoryOrder))
	for _, name := range s.CategoryOrder {
		if _, ok := s.Categories[name]; ok && s.IsPinned(name) {
			names = append(names, name)
		}
	}
	for _, name := range s.CategoryOrder {
		if _, ok := s.Categories[name]; ok && !s.IsPinned(name) {
			names = append(names, name)
		}
	}
	return names
}

// Snapshot renders a canonical structural fingerprint of the state,
// including focus. Two states mutated identically produce identical bytes,
// which is what "did this command change anything" compares.
func (s *AppState) Snapshot() []byte {
	b, err := json.Marshal(struct {
		*AppState
		Focused string `json:"focusedCategory"`
	}{AppState: s, Focused: s.Focused})
	if err != nil {
		// The aggregate is plain data; marshaling cannot fail.
		panic(err)
	}
	return b
}

// Clone deep-copies the state.
func (s *AppState) Clone() *AppState {
	out := New()
	out.Focused = s.Focused
	out.Pinned = append(out.Pinned, s.Pinned...)
	out.CategoryOrder = append(out.CategoryOrder, s.CategoryOrder...)
	for name, tasks := range s.Categories {
		copied := make([]*Task, 0, len(tasks))
		for _, t := range tasks {
			ct := *t
			if t.Due != nil {
				due := *t.Due
				ct.Due = &due
			}
			if t.Recur != nil {
				rec := *t.Recur
				ct.Recur = &rec
			}
			copied = append(copied, &ct)
		}
		out.Categories[name] = copied
	}
	return out
}

// Contains reports whether the exact task record is still present anywhere
// in the state. Identity is the record itself, not its text, so a task that
// moved categories is still found and a deleted one is not.
func (s *AppState) Contains(task *Task) bool {
	for _, tasks := range s.Categories {
		for _, t := range tasks {
			if t == task {
				return true
			}
		}
	}
	return false
}
