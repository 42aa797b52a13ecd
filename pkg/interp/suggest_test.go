package interp

import (
	"testing"

	"tableflip.dev/ambit/pkg/state"
)

func suggestFixture(t *testing.T) (*Interpreter, *state.AppState) {
	t.Helper()
	in := New()
	st := state.New()
	run(t, in, st,
		"+ Work", "+ Home",
		"@ Work", "buy milk", "ship the release", "done ship",
	)
	return in, st
}

func TestSuggestCategory(t *testing.T) {
	in, st := suggestFixture(t)

	s, ok := in.Suggest("@ wo", st)
	if !ok {
		t.Fatalf("expected a suggestion")
	}
	if s.Line() != "@ Work" {
		t.Fatalf("suggested %q", s.Line())
	}

	// The stored key comes back, not the typed casing.
	s, _ = in.Suggest("pin HO", st)
	if s.Line() != "pin Home" {
		t.Fatalf("suggested %q", s.Line())
	}

	if _, ok := in.Suggest("- x", st); ok {
		t.Fatalf("expected no suggestion for an unknown prefix")
	}
}

func TestSuggestTaskByCommand(t *testing.T) {
	in, st := suggestFixture(t)

	// done completes against incomplete tasks only.
	s, ok := in.Suggest("done b", st)
	if !ok || s.Line() != "done buy milk" {
		t.Fatalf("suggested %q, %v", s.Line(), ok)
	}
	if _, ok := in.Suggest("done s", st); ok {
		t.Fatalf("done suggested a completed task")
	}

	// undo completes against completed tasks only.
	s, ok = in.Suggest("undo s", st)
	if !ok || s.Line() != "undo ship the release" {
		t.Fatalf("suggested %q, %v", s.Line(), ok)
	}
	if _, ok := in.Suggest("undo b", st); ok {
		t.Fatalf("undo suggested an incomplete task")
	}

	s, ok = in.Suggest("del b", st)
	if !ok || s.Line() != "del buy milk" {
		t.Fatalf("suggested %q, %v", s.Line(), ok)
	}
}

func TestSuggestOrderPrefersTasks(t *testing.T) {
	in, st := suggestFixture(t)

	s, ok := in.Suggest("order b", st)
	if !ok || s.Line() != "order buy milk" {
		t.Fatalf("suggested %q, %v", s.Line(), ok)
	}

	// No matching task; categories are the fallback.
	s, ok = in.Suggest("order ho", st)
	if !ok || s.Line() != "order Home" {
		t.Fatalf("suggested %q, %v", s.Line(), ok)
	}
}

func TestSuggestNeedsInput(t *testing.T) {
	in, st := suggestFixture(t)

	for _, partial := range []string{"", "  ", "@", "@ ", "done", "unknown wo"} {
		if _, ok := in.Suggest(partial, st); ok {
			t.Fatalf("expected no suggestion for %q", partial)
		}
	}
}

func TestSuggestTaskWithoutFocus(t *testing.T) {
	in, st := suggestFixture(t)
	st.Focused = ""

	if _, ok := in.Suggest("done b", st); ok {
		t.Fatalf("expected no task suggestion without focus")
	}
}
