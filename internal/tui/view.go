package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Sabique-Islam/pixiefie/internal/card"
	"github.com/Sabique-Islam/pixiefie/internal/theme"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeInput:
		return m.viewInput()
	case modeFetching:
		return m.viewFetching()
	case modeCard:
		return m.viewCard()
	}
	return ""
}

func (m Model) viewInput() string {
	sections := []string{
		titleStyle.Render("pixiefie studio"),
		promptStyle.Render("Whose card should we make?"),
		m.input.View(),
	}
	if m.errText != "" {
		sections = append(sections, errorStyle.Render(m.errText))
	}
	sections = append(sections, faintStyle.Render("enter to fetch • esc to quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewFetching() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("pixiefie studio"),
		fmt.Sprintf("%s fetching %s...", m.spin.View(), m.input.Value()),
	)
}

func (m Model) viewCard() string {
	t := m.CurrentTheme()

	var sections []string
	sections = append(sections, titleStyle.Render("pixiefie studio"))
	sections = append(sections, m.renderCard(t))
	sections = append(sections, m.renderThemeLine())

	if len(m.overrides) > 0 {
		sections = append(sections, faintStyle.Render("overrides: "+formatOverrides(m.overrides)))
	}
	if m.copied {
		sections = append(sections, copiedStyle.Render("✓ copied"))
	} else if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	if m.errText != "" {
		sections = append(sections, errorStyle.Render(m.errText))
	}

	if m.overrideActive {
		sections = append(sections, promptStyle.Render("Set a palette override (key=color)"), m.input.View())
	} else {
		sections = append(sections, faintStyle.Render(
			"←/→ theme • o override • r reset • s/p/j export svg/png/jpg • c copy svg • n new • q quit"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderCard draws the terminal approximation of the card: same content and
// ordering as the export document, scaled to glyphs.
func (m Model) renderCard(t theme.Theme) string {
	p := m.profile

	var rows []string
	rows = append(rows, avatarStyle.Render(p.Initial()))
	rows = append(rows, nameStyle.Render(p.DisplayName()))
	rows = append(rows, usernameStyle.Render("@"+p.Username))

	if p.Bio != "" {
		rows = append(rows, bioStyle.Render(card.TruncateBio(p.Bio)))
	}

	if m.surface != nil {
		if qr := renderQR(m.surface.QRFragment()); qr != "" {
			rows = append(rows, qr, faintStyle.Render(card.QRCaption))
		}
	}

	rows = append(rows, badgeStyle.Render(p.Platform.BadgeLabel()))

	frame := cardStyle
	if t.Colors.Primary != "" {
		frame = frame.BorderForeground(lipgloss.Color(t.Colors.Primary))
	}
	return frame.Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}

func (m Model) renderThemeLine() string {
	t := m.themes[m.themeIdx]
	line := fmt.Sprintf("theme %d/%d: %s", m.themeIdx+1, len(m.themes), t.Name)
	if t.Description != "" {
		line += faintStyle.Render(" · " + t.Description)
	}
	return line
}

// renderQR rasterizes the QR fragment into half-block glyphs, two module
// rows per text row.
func renderQR(f card.Fragment) string {
	if f.Empty() {
		return ""
	}

	size := int(f.Viewport)
	grid := make([][]bool, size)
	for i := range grid {
		grid[i] = make([]bool, size)
	}
	for _, prim := range f.Primitives {
		x, y := int(prim.X), int(prim.Y)
		if x >= 0 && x < size && y >= 0 && y < size {
			grid[y][x] = true
		}
	}

	var b strings.Builder
	for y := 0; y < size; y += 2 {
		for x := 0; x < size; x++ {
			top := grid[y][x]
			bottom := y+1 < size && grid[y+1][x]
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if y+2 < size {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

func formatOverrides(overrides theme.Overrides) string {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, overrides[k]))
	}
	return strings.Join(pairs, " ")
}
