package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type themesOptions struct {
	jsonOutput bool
}

func newThemesCmd(root *rootFlags) *cobra.Command {
	opts := &themesOptions{}

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the available card themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemes(cmd, root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runThemes(cmd *cobra.Command, root *rootFlags, opts *themesOptions) error {
	app, err := newAppContext(root.verbose)
	if err != nil {
		return err
	}

	themes := app.registry.Themes()

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(themes)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPATTERN\tDESCRIPTION")
	for _, t := range themes {
		pattern := string(t.Pattern)
		if !t.HasPattern() {
			pattern = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Name, pattern, t.Description)
	}
	return w.Flush()
}
