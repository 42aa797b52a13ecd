package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/ambit/pkg/runner/categories"
	"tableflip.dev/ambit/pkg/store"
)

func addCategories(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories with task counts and next due dates.",
		Example: `
ambit categories
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := &categories.List{Persistence: p}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
