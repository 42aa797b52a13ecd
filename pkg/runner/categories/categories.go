package categories

import (
	"context"
	"fmt"

	"github.com/gosuri/uitable"

	"tableflip.dev/ambit/pkg/printers"
	"tableflip.dev/ambit/pkg/store"
)

// List prints a tabular digest of every category.
type List struct {
	Persistence store.Persistence
}

func (l *List) Do(ctx context.Context) error {
	st, err := l.Persistence.Load(ctx)
	if err != nil {
		return err
	}

	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("CATEGORY", "PENDING", "DONE", "PINNED", "NEXT DUE")
	for _, name := range st.DisplayOrder() {
		pending, completed, nextDue := printers.Summary(st.Categories[name])
		pinned := ""
		if st.IsPinned(name) {
			pinned = "*"
		}
		table.AddRow(name, pending, completed, pinned, nextDue)
	}
	fmt.Println(table)
	return nil
}
