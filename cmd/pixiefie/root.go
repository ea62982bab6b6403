package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "pixiefie",
		Short:         "pixiefie generates shareable social profile cards",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation on a terminal opens the studio.
			if term.IsTerminal(int(os.Stdout.Fd())) {
				return runStudio(flags, &studioOptions{outDir: "."})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newStudioCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newFetchCmd(flags))
	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
