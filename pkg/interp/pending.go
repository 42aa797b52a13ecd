package interp

import (
	"time"

	"tableflip.dev/ambit/pkg/state"
)

// scheduleCompletion queues the done mutation for after CompleteDelay.
// Scheduling again for the same task replaces the earlier timer. The
// continuation re-reads live state when it fires: a task that was deleted or
// edited away in the interim no longer exists by identity and the completion
// becomes a no-op.
func (in *Interpreter) scheduleCompletion(st *state.AppState, task *state.Task) {
	if in.pending == nil {
		in.pending = map[*state.Task]func(){}
	}
	if cancel, ok := in.pending[task]; ok {
		cancel()
	}
	schedule := in.Schedule
	if schedule == nil {
		schedule = afterFunc
	}
	in.pending[task] = schedule(in.CompleteDelay, func() {
		in.fireCompletion(st, task)
	})
}

func (in *Interpreter) fireCompletion(st *state.AppState, task *state.Task) {
	in.mu.Lock()
	delete(in.pending, task)
	if !st.Contains(task) || task.Completed {
		in.mu.Unlock()
		return
	}
	now := time.Now()
	if in.Clock != nil {
		now = in.Clock()
	}
	completeTask(task, now)
	onChange := in.OnChange
	// The default schedule fires on a timer goroutine, so the hook gets a
	// copy taken under the lock rather than the live aggregate.
	var snapshot *state.AppState
	if onChange != nil {
		snapshot = st.Clone()
	}
	in.mu.Unlock()

	if onChange != nil {
		onChange(snapshot)
	}
}

// PendingCompletions reports how many completions are still waiting to fire.
func (in *Interpreter) PendingCompletions() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.pending)
}

func afterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
