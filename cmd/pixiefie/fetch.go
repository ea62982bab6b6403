package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/spf13/cobra"
)

func newFetchCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <handle|url>",
		Short: "Fetch and print a normalized profile as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, root, args[0])
		},
	}

	return cmd
}

func runFetch(cmd *cobra.Command, root *rootFlags, input string) error {
	app, err := newAppContext(root.verbose)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()

	p, err := app.platforms.Fetch(ctx, input)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(p)
}
