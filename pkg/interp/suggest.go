package interp

import (
	"strings"

	"tableflip.dev/ambit/pkg/state"
)

// Suggestion completes a partially-typed command line. Prefix is the command
// portion already typed; Match is the full entity name that completes it.
type Suggestion struct {
	Prefix string
	Match  string
}

// Line returns the completed input line.
func (s Suggestion) Line() string {
	return s.Prefix + s.Match
}

// Suggest proposes an autocomplete match for an in-progress line. Read-only;
// no match is an empty result, never an error. It takes the interpreter lock
// so a deferred completion firing on a timer goroutine cannot race the scan.
func (in *Interpreter) Suggest(partial string, st *state.AppState) (Suggestion, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()

	fields := strings.Fields(partial)
	if len(fields) == 0 {
		return Suggestion{}, false
	}
	command := fields[0]
	prefix := command + " "
	rest := ""
	if len(partial) > len(prefix) {
		rest = partial[len(prefix):]
	}

	switch command {
	case "@", "-", "pin":
		if match, ok := matchCategory(st, rest); ok {
			return Suggestion{Prefix: prefix, Match: match}, true
		}

	case "done", "undo", "del", "ed", "mv", "dup":
		filter := incompleteTask
		if command == "undo" {
			filter = completedTask
		}
		if match, ok := matchFocusedTask(st, rest, filter); ok {
			return Suggestion{Prefix: prefix, Match: match}, true
		}

	case "order":
		// Tasks in the focused category win; categories are the fallback.
		if match, ok := matchFocusedTask(st, rest, anyTask); ok {
			return Suggestion{Prefix: prefix, Match: match}, true
		}
		if match, ok := matchCategory(st, rest); ok {
			return Suggestion{Prefix: prefix, Match: match}, true
		}
	}
	return Suggestion{}, false
}

// matchCategory finds the first category key starting with the partial,
// compared case-insensitively, walking the order list so results are
// deterministic. The stored key is returned as typed by the user originally.
func matchCategory(st *state.AppState, partial string) (string, bool) {
	if partial == "" {
		return "", false
	}
	lower := strings.ToLower(partial)
	for _, name := range st.CategoryOrder {
		if _, ok := st.Categories[name]; !ok {
			continue
		}
		if strings.HasPrefix(strings.ToLower(name), lower) {
			return name, true
		}
	}
	return "", false
}

func matchFocusedTask(st *state.AppState, partial string, filter taskFilter) (string, bool) {
	if partial == "" || st.Focused == "" {
		return "", false
	}
	tasks, ok := st.Categories[st.Focused]
	if !ok {
		return "", false
	}
	if idx := findTask(tasks, strings.ToLower(partial), filter); idx != -1 {
		return tasks[idx].Text, true
	}
	return "", false
}
