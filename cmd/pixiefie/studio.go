package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Sabique-Islam/pixiefie/internal/card"
	"github.com/Sabique-Islam/pixiefie/internal/export"
	"github.com/Sabique-Islam/pixiefie/internal/logger"
	"github.com/Sabique-Islam/pixiefie/internal/pipeline"
	"github.com/Sabique-Islam/pixiefie/internal/platform"
	"github.com/Sabique-Islam/pixiefie/internal/theme"
	"github.com/Sabique-Islam/pixiefie/internal/tui"
)

type studioOptions struct {
	outDir  string
	initial string
}

func newStudioCmd(root *rootFlags) *cobra.Command {
	opts := &studioOptions{}

	cmd := &cobra.Command{
		Use:   "studio [handle|url]",
		Short: "Open the interactive card studio",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.initial = args[0]
			}
			return runStudio(root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out", "o", ".", "Directory exports are written to")

	return cmd
}

func runStudio(root *rootFlags, opts *studioOptions) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the studio needs an interactive terminal; use `pixiefie render` instead")
	}

	// The studio owns the terminal while it runs; route all service
	// logging to the nop logger so nothing scribbles over the UI.
	log := logger.Nop()

	registry, err := theme.Load()
	if err != nil {
		return err
	}

	exports := pipeline.NewService(card.NewCompositor(log), export.NewEncoder(), log)
	model := tui.NewModel(platform.NewService(log), exports, registry, log, opts.outDir, opts.initial)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("studio terminated abnormally: %w", err)
	}
	return nil
}
