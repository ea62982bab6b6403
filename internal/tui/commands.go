package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sabique-Islam/pixiefie/internal/card"
	"github.com/Sabique-Islam/pixiefie/internal/export"
	"github.com/Sabique-Islam/pixiefie/internal/pipeline"
	"github.com/Sabique-Islam/pixiefie/internal/platform"
)

const (
	fetchTimeout  = 15 * time.Second
	exportTimeout = 30 * time.Second
	copiedVisible = 2 * time.Second
)

// fetchProfileCmd resolves the pasted handle or URL and fetches the profile
// asynchronously.
func fetchProfileCmd(svc *platform.Service, input string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		p, err := svc.Fetch(ctx, input)
		if err != nil {
			return FetchErrorMsg{Err: err}
		}
		return ProfileFetchedMsg{Profile: p}
	}
}

// exportCmd runs one export through the pipeline asynchronously.
func exportCmd(svc *pipeline.Service, in card.Input, format export.Format, dir string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		path, err := svc.Export(ctx, in, format, dir)
		if err != nil {
			return ExportErrorMsg{Format: format, Err: err}
		}
		return ExportDoneMsg{Format: format, Path: path}
	}
}

// copyCmd places the card's vector document on the clipboard asynchronously.
func copyCmd(svc *pipeline.Service, in card.Input) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		if err := svc.CopySVG(ctx, in); err != nil {
			return CopyErrorMsg{Err: err}
		}
		return CopyDoneMsg{}
	}
}

// clearCopiedCmd dismisses the clipboard confirmation after its display
// window.
func clearCopiedCmd() tea.Cmd {
	return tea.Tick(copiedVisible, func(time.Time) tea.Msg { return CopiedClearMsg{} })
}
