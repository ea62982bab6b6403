// Package tui implements the interactive card studio: a live preview of the
// profile card with theme cycling, color overrides and export actions.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sabique-Islam/pixiefie/internal/card"
	"github.com/Sabique-Islam/pixiefie/internal/logger"
	"github.com/Sabique-Islam/pixiefie/internal/pipeline"
	"github.com/Sabique-Islam/pixiefie/internal/platform"
	"github.com/Sabique-Islam/pixiefie/internal/profile"
	"github.com/Sabique-Islam/pixiefie/internal/theme"
)

// mode determines which screen the studio renders.
type mode int

const (
	modeInput mode = iota
	modeFetching
	modeCard
)

// Model contains the Bubbletea state for the card studio.
type Model struct {
	platforms *platform.Service
	exports   *pipeline.Service
	registry  *theme.Registry
	log       *logger.Logger

	outDir string

	mode  mode
	input textinput.Model
	spin  spinner.Model

	profile   *profile.Profile
	surface   card.Surface
	themes    []theme.Theme
	themeIdx  int
	overrides theme.Overrides

	overrideActive bool
	copied         bool
	status         string
	errText        string
	quitting       bool
}

// NewModel constructs the studio model. When initial is non-empty the studio
// starts by fetching that handle or URL instead of prompting for one.
func NewModel(platforms *platform.Service, exports *pipeline.Service, registry *theme.Registry, log *logger.Logger, outDir, initial string) Model {
	input := textinput.New()
	input.Placeholder = "github handle or profile URL"
	input.CharLimit = 200
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := Model{
		platforms: platforms,
		exports:   exports,
		registry:  registry,
		log:       log,
		outDir:    outDir,
		mode:      modeInput,
		input:     input,
		spin:      spin,
		themes:    registry.Themes(),
		overrides: make(theme.Overrides),
	}

	if initial != "" {
		m.mode = modeFetching
		m.input.SetValue(initial)
	}

	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spin.Tick}
	if m.mode == modeFetching {
		cmds = append(cmds, fetchProfileCmd(m.platforms, m.input.Value()))
	}
	return tea.Batch(cmds...)
}

// CurrentTheme returns the theme under the cursor, with the platform-default
// entry resolved against the loaded profile.
func (m Model) CurrentTheme() theme.Theme {
	if len(m.themes) == 0 {
		return theme.Theme{}
	}
	t := m.themes[m.themeIdx]
	if t.ID == theme.PlatformDefaultID && m.profile != nil {
		return m.registry.PlatformTheme(m.profile.Platform, nil)
	}
	return t
}

// Profile returns the loaded profile, nil before a fetch completes.
func (m Model) Profile() *profile.Profile {
	return m.profile
}

// Overrides returns a copy of the active color overrides.
func (m Model) Overrides() theme.Overrides {
	out := make(theme.Overrides, len(m.overrides))
	for k, v := range m.overrides {
		out[k] = v
	}
	return out
}

// exportInput snapshots everything one export action needs.
func (m Model) exportInput() card.Input {
	return card.Input{
		Profile:   m.profile,
		Theme:     m.CurrentTheme(),
		Overrides: m.Overrides(),
		Surface:   m.surface,
	}
}

// mount attaches a fetched profile and its session surface.
func (m *Model) mount(p *profile.Profile) {
	m.profile = p
	m.surface = card.NewSessionSurface(p, m.log)
	m.mode = modeCard
	m.errText = ""
	m.status = ""
	m.input.Blur()
	m.input.SetValue("")
}
