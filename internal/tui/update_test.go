package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sabique-Islam/pixiefie/internal/export"
	pixieerrors "github.com/Sabique-Islam/pixiefie/pkg/errors"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	next, _ := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated
}

func TestProfileFetchedMountsCard(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = update(t, m, ProfileFetchedMsg{Profile: testProfile()})

	assert.Equal(t, modeCard, m.mode)
	require.NotNil(t, m.Profile())
	assert.Equal(t, "octocat", m.Profile().Username)
}

func TestFetchErrorReturnsToInput(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.mode = modeFetching

	m = update(t, m, FetchErrorMsg{Err: fmt.Errorf("user not found")})

	assert.Equal(t, modeInput, m.mode)
	assert.Equal(t, "user not found", m.errText)
}

func TestThemeCyclingWraps(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.mount(testProfile())

	total := len(m.themes)
	for i := 0; i < total; i++ {
		m = update(t, m, keyMsg("right"))
	}
	assert.Zero(t, m.themeIdx, "a full cycle returns to the first theme")

	m = update(t, m, keyMsg("left"))
	assert.Equal(t, total-1, m.themeIdx, "cycling left from the first theme wraps")
}

func TestOverrideEntryAppliesValidPair(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.mount(testProfile())

	m = update(t, m, keyMsg("o"))
	require.True(t, m.overrideActive)

	m.input.SetValue("primary=#123456")
	m = update(t, m, keyMsg("enter"))

	assert.False(t, m.overrideActive)
	assert.Equal(t, "#123456", m.Overrides()["primary"])
}

func TestOverrideEntryRejectsBadColor(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.mount(testProfile())

	m = update(t, m, keyMsg("o"))
	m.input.SetValue("primary=chartreuse")
	m = update(t, m, keyMsg("enter"))

	assert.True(t, m.overrideActive, "invalid entry keeps the prompt open")
	assert.NotEmpty(t, m.errText)
	assert.Empty(t, m.Overrides())
}

func TestOverrideEntryRejectsUnknownKey(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.mount(testProfile())

	m = update(t, m, keyMsg("o"))
	m.input.SetValue("borderwidth=#123456")
	m = update(t, m, keyMsg("enter"))

	assert.NotEmpty(t, m.errText)
	assert.Empty(t, m.Overrides())
}

func TestResetClearsOverrides(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.mount(testProfile())
	m.overrides["accent"] = "#FF00FF"

	m = update(t, m, keyMsg("r"))

	assert.Empty(t, m.overrides)
}

func TestExportBusyShowsStatusNotError(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.mount(testProfile())

	m = update(t, m, ExportErrorMsg{Format: export.FormatPNG, Err: pixieerrors.ErrBusy})

	assert.Contains(t, m.status, "already running")
	assert.Empty(t, m.errText)
}

func TestCopyConfirmationIsTransient(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.mount(testProfile())

	next, cmd := m.Update(CopyDoneMsg{})
	m = next.(Model)
	assert.True(t, m.copied)
	assert.NotNil(t, cmd, "a clear command must be scheduled")

	m = update(t, m, CopiedClearMsg{})
	assert.False(t, m.copied)
}

func TestCtrlCQuitsFromAnyMode(t *testing.T) {
	t.Parallel()

	for _, start := range []mode{modeInput, modeFetching, modeCard} {
		m := newTestModel(t)
		if start == modeCard {
			m.mount(testProfile())
		} else {
			m.mode = start
		}

		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		m = next.(Model)
		assert.True(t, m.quitting)
		assert.NotNil(t, cmd)
	}
}

func TestNewProfileKeyReturnsToInput(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.mount(testProfile())

	m = update(t, m, keyMsg("n"))

	assert.Equal(t, modeInput, m.mode)
	assert.Nil(t, m.Profile())
}
