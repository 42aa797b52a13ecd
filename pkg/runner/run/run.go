package run

import (
	"context"
	"time"

	"tableflip.dev/ambit/pkg/interp"
	"tableflip.dev/ambit/pkg/printers"
	"tableflip.dev/ambit/pkg/store"
)

// Run executes a single command line against the persisted state and saves
// the result when anything changed.
type Run struct {
	Line  string
	Quiet bool

	Persistence store.Persistence
}

func (r *Run) Do(ctx context.Context) error {
	st, err := r.Persistence.Load(ctx)
	if err != nil {
		return err
	}

	in := interp.New()
	if in.Execute(r.Line, st, time.Now()) {
		if err := r.Persistence.Save(st); err != nil {
			return err
		}
	}

	if !r.Quiet {
		pp := printers.PrettyPrint{ShowCompleted: true}
		pp.State(st)
	}
	return nil
}
