package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/ambit/pkg/runner/get"
	"tableflip.dev/ambit/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	showCompleted := true
	cmd := &cobra.Command{
		Use:   "get [category]",
		Short: "Print one category, or everything.",
		Example: `
ambit get
ambit get Work
ambit get Work --completed=false
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := &get.Get{
				Category:      strings.Join(args, " "),
				ShowCompleted: showCompleted,
				Persistence:   p,
			}
			return r.Do(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&showCompleted, "completed", true, "Include completed tasks.")

	topLevel.AddCommand(cmd)
}
