package interp

import (
	"strings"

	"tableflip.dev/ambit/pkg/state"
)

type taskFilter int

const (
	anyTask taskFilter = iota
	incompleteTask
	completedTask
)

// findTask returns the index of the first task whose text starts with the
// lower-cased query, honoring the completion filter, or -1.
func findTask(tasks []*state.Task, queryLower string, filter taskFilter) int {
	for i, t := range tasks {
		switch filter {
		case incompleteTask:
			if t.Completed {
				continue
			}
		case completedTask:
			if !t.Completed {
				continue
			}
		}
		if strings.HasPrefix(strings.ToLower(t.Text), queryLower) {
			return i
		}
	}
	return -1
}

func indexOf(list []string, value string) int {
	for i, v := range list {
		if v == value {
			return i
		}
	}
	return -1
}

func removeString(list *[]string, value string) {
	if i := indexOf(*list, value); i != -1 {
		*list = append((*list)[:i], (*list)[i+1:]...)
	}
}

// replaceOrRemove swaps oldValue for newValue in place, or just removes
// oldValue when newValue is already present (the rename-as-merge case must
// not introduce duplicates).
func replaceOrRemove(list *[]string, oldValue, newValue string) {
	i := indexOf(*list, oldValue)
	if i == -1 {
		return
	}
	if indexOf(*list, newValue) != -1 {
		*list = append((*list)[:i], (*list)[i+1:]...)
		return
	}
	(*list)[i] = newValue
}

func moveElement[T any](list []T, from, to int) {
	if from == -1 || to < 0 || to >= len(list) || from == to {
		return
	}
	item := list[from]
	if from < to {
		copy(list[from:to], list[from+1:to+1])
	} else {
		copy(list[to+1:from+1], list[to:from])
	}
	list[to] = item
}

// shiftedIndex maps an order direction to the destination index. Unknown
// directions keep the current position.
func shiftedIndex(current, length int, direction string) int {
	switch direction {
	case "up":
		if current > 0 {
			return current - 1
		}
		return 0
	case "down":
		if current < length-1 {
			return current + 1
		}
		return length - 1
	case "top":
		return 0
	case "bottom":
		return length - 1
	}
	return current
}

var shortWeekdays = []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// shortWeekdayIndex accepts only the three-letter forms the "every" token
// grammar allows.
func shortWeekdayIndex(token string) int {
	for i, w := range shortWeekdays {
		if token == w {
			return i
		}
	}
	return -1
}
