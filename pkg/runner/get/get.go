package get

import (
	"context"

	"tableflip.dev/ambit/pkg/printers"
	"tableflip.dev/ambit/pkg/store"
)

// Get prints one category, or every category in display order.
type Get struct {
	Category      string
	ShowCompleted bool

	Persistence store.Persistence
}

func (g *Get) Do(ctx context.Context) error {
	st, err := g.Persistence.Load(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowCompleted: g.ShowCompleted}
	if g.Category != "" {
		tasks := st.Categories[g.Category]
		pp.Title(g.Category, g.Category == st.Focused)
		pp.Category(tasks...)
		return nil
	}

	pp.State(st)
	return nil
}
