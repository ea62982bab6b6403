package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sabique-Islam/pixiefie/internal/export"
	"github.com/Sabique-Islam/pixiefie/internal/theme"
	pixieerrors "github.com/Sabique-Islam/pixiefie/pkg/errors"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case ProfileFetchedMsg:
		m.mount(msg.Profile)
		return m, nil

	case FetchErrorMsg:
		m.mode = modeInput
		m.errText = msg.Err.Error()
		m.input.Focus()
		return m, nil

	case ExportDoneMsg:
		if msg.Path == "" {
			m.status = "nothing to export yet"
			return m, nil
		}
		m.status = fmt.Sprintf("saved %s", msg.Path)
		m.errText = ""
		return m, nil

	case ExportErrorMsg:
		if errors.Is(msg.Err, pixieerrors.ErrBusy) {
			m.status = fmt.Sprintf("%s export already running", msg.Format)
			return m, nil
		}
		m.errText = msg.Err.Error()
		return m, nil

	case CopyDoneMsg:
		m.copied = true
		m.status = "SVG copied to clipboard"
		m.errText = ""
		return m, clearCopiedCmd()

	case CopiedClearMsg:
		m.copied = false
		if m.status == "SVG copied to clipboard" {
			m.status = ""
		}
		return m, nil

	case CopyErrorMsg:
		if errors.Is(msg.Err, pixieerrors.ErrBusy) {
			m.status = "copy already running"
			return m, nil
		}
		m.errText = msg.Err.Error()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeInput:
		return m.handleInputKey(msg)
	case modeFetching:
		return m, nil
	case modeCard:
		if m.overrideActive {
			return m.handleOverrideKey(msg)
		}
		return m.handleCardKey(msg)
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		if value == "" {
			return m, nil
		}
		m.mode = modeFetching
		m.errText = ""
		return m, fetchProfileCmd(m.platforms, value)
	case tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleCardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "right", "l", "t":
		m.themeIdx = (m.themeIdx + 1) % len(m.themes)
		return m, nil

	case "left", "h", "T":
		m.themeIdx = (m.themeIdx - 1 + len(m.themes)) % len(m.themes)
		return m, nil

	case "s":
		return m, exportCmd(m.exports, m.exportInput(), export.FormatSVG, m.outDir)

	case "p":
		return m, exportCmd(m.exports, m.exportInput(), export.FormatPNG, m.outDir)

	case "j":
		return m, exportCmd(m.exports, m.exportInput(), export.FormatJPEG, m.outDir)

	case "c":
		return m, copyCmd(m.exports, m.exportInput())

	case "o":
		m.overrideActive = true
		m.input.Placeholder = "primary=#3B82F6"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "r":
		m.overrides = make(theme.Overrides)
		m.status = "overrides cleared"
		return m, nil

	case "n":
		m.mode = modeInput
		m.profile = nil
		m.surface = nil
		m.input.Placeholder = "github handle or profile URL"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) handleOverrideKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		key, value, err := parseOverride(m.input.Value())
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.overrides[key] = value
		m.overrideActive = false
		m.errText = ""
		m.status = fmt.Sprintf("override %s=%s", key, value)
		m.input.Blur()
		return m, nil
	case tea.KeyEsc:
		m.overrideActive = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// parseOverride splits a "key=color" entry and validates both halves.
func parseOverride(s string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "=", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("expected key=color, e.g. primary=#3B82F6")
	}

	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])

	if err := theme.ValidateOverrides(theme.Overrides{key: value}); err != nil {
		return "", "", err
	}
	return key, value, nil
}
