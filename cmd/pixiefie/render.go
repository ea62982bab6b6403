package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sabique-Islam/pixiefie/internal/card"
	"github.com/Sabique-Islam/pixiefie/internal/export"
	"github.com/Sabique-Islam/pixiefie/internal/theme"
)

type renderOptions struct {
	themeID string
	format  string
	outDir  string
	colors  []string
}

var renderCmdRunner = runRender

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <handle|url>",
		Short: "Fetch a profile and export its card in one shot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderCmdRunner(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.themeID, "theme", "t", "midnight", "Theme id (see `pixiefie themes`)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "svg", "Export format: svg, png or jpg")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", ".", "Output directory")
	cmd.Flags().StringArrayVar(&opts.colors, "color", nil, "Palette override, repeatable (e.g. --color primary=#3B82F6)")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, opts *renderOptions, input string) error {
	app, err := newAppContext(root.verbose)
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	overrides, err := parseColorFlags(opts.colors)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	p, err := app.platforms.Fetch(ctx, input)
	if err != nil {
		return err
	}

	t, err := app.resolveTheme(opts.themeID, p)
	if err != nil {
		return err
	}

	in := card.Input{
		Profile:   p,
		Theme:     t,
		Overrides: overrides,
		Surface:   card.NewSessionSurface(p, app.log),
	}

	path, err := app.exports.Export(ctx, in, format, opts.outDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", path)
	return nil
}

// parseColorFlags turns repeated key=color flags into a validated override
// record.
func parseColorFlags(pairs []string) (theme.Overrides, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	overrides := make(theme.Overrides, len(pairs))
	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid --color %q, expected key=color", pair)
		}
		overrides[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}

	if err := theme.ValidateOverrides(overrides); err != nil {
		return nil, err
	}
	return overrides, nil
}
