package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sabique-Islam/pixiefie/internal/card"
)

func TestViewInputShowsPrompt(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "pixiefie studio")
	assert.Contains(t, view, "Whose card")
}

func TestViewCardShowsIdentityAndBadge(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	p := testProfile()
	p.Bio = strings.Repeat("x", 73)
	m.mount(p)

	view := m.View()
	assert.Contains(t, view, "The Octocat")
	assert.Contains(t, view, "@octocat")
	assert.Contains(t, view, "GITHUB PROFILE")
	assert.Contains(t, view, strings.Repeat("x", 50)+"...")
	assert.NotContains(t, view, strings.Repeat("x", 51))
}

func TestViewCardShowsQRCaptionForLinkedProfile(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.mount(testProfile())

	assert.Contains(t, m.View(), card.QRCaption)
}

func TestViewCardOmitsQRWithoutLink(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	p := testProfile()
	p.Link = ""
	m.mount(p)

	assert.NotContains(t, m.View(), card.QRCaption)
}

func TestRenderQRHalfBlocks(t *testing.T) {
	t.Parallel()

	f := card.Fragment{
		Viewport: 2,
		Primitives: []card.Primitive{
			{X: 0, Y: 0, Width: 1, Height: 1},
			{X: 1, Y: 1, Width: 1, Height: 1},
		},
	}

	assert.Equal(t, "▀▄", renderQR(f))
}

func TestRenderQREmptyFragment(t *testing.T) {
	t.Parallel()

	assert.Empty(t, renderQR(card.Fragment{}))
}

func TestViewQuittingIsBlank(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.quitting = true

	assert.Empty(t, m.View())
}
