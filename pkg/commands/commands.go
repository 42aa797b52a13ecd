package commands

import (
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ambit",
		Short: "A command-line task tracker with natural-language dates.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addPrompt(topLevel)
	addRun(topLevel)
	addGet(topLevel)
	addCategories(topLevel)
	addVersion(topLevel)
}
