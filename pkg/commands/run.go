package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/ambit/pkg/runner/run"
	"tableflip.dev/ambit/pkg/store"
)

func addRun(topLevel *cobra.Command) {
	quiet := false
	cmd := &cobra.Command{
		Use:   "run <command line>",
		Short: "Execute one tracker command and save the result.",
		Example: `
ambit run "+ Work"
ambit run "Work: buy milk by friday"
ambit run "order Work !top"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := &run.Run{
				Line:        strings.Join(args, " "),
				Quiet:       quiet,
				Persistence: p,
			}
			return r.Do(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Skip printing the resulting state.")

	topLevel.AddCommand(cmd)
}
