package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/ambit/pkg/runner/prompt"
	"tableflip.dev/ambit/pkg/store"
)

func addPrompt(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Start the interactive prompt session.",
		Example: `
ambit prompt
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := &prompt.Prompt{Persistence: p}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
