package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sabique-Islam/pixiefie/internal/card"
	"github.com/Sabique-Islam/pixiefie/internal/export"
	"github.com/Sabique-Islam/pixiefie/internal/logger"
	"github.com/Sabique-Islam/pixiefie/internal/profile"
	"github.com/Sabique-Islam/pixiefie/internal/theme"
	pixieerrors "github.com/Sabique-Islam/pixiefie/pkg/errors"
)

// stubSurface satisfies card.Surface; block makes AvatarData hang until the
// channel closes, which keeps an export inflight for concurrency tests.
type stubSurface struct {
	started chan struct{}
	block   chan struct{}
	once    sync.Once
}

func (s *stubSurface) QRFragment() card.Fragment {
	return card.Fragment{}
}

func (s *stubSurface) AvatarData(ctx context.Context) (string, error) {
	if s.started != nil {
		s.once.Do(func() { close(s.started) })
	}
	if s.block != nil {
		<-s.block
	}
	return "", nil
}

func testTheme() theme.Theme {
	return theme.Theme{
		ID:   "midnight",
		Name: "Midnight",
		Colors: theme.ThemeColors{
			Primary:       "#3B82F6",
			Secondary:     "#8B5CF6",
			Accent:        "#06B6D4",
			Background:    "#0F172A",
			Text:          "#F8FAFC",
			TextSecondary: "#94A3B8",
		},
		Gradient: []string{"#0F172A", "#1E3A8A"},
	}
}

func testInput(surface card.Surface) card.Input {
	return card.Input{
		Profile: &profile.Profile{
			Platform: profile.PlatformGitHub,
			Username: "octocat",
			Name:     "The Octocat",
		},
		Theme:   testTheme(),
		Surface: surface,
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	log := logger.Nop()
	return NewService(card.NewCompositor(log), export.NewEncoder(), log)
}

func TestExportWritesFile(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	dir := t.TempDir()

	path, err := svc.Export(context.Background(), testInput(&stubSurface{}), export.FormatSVG, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "octocat-profile-card.svg"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "GITHUB PROFILE")
}

func TestExportWithoutSurfaceIsNoOp(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	dir := t.TempDir()

	path, err := svc.Export(context.Background(), card.Input{Theme: testTheme()}, export.FormatSVG, dir)
	require.NoError(t, err)
	assert.Empty(t, path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no-op export must not touch the filesystem")
}

func TestExportSameFormatWhileInflightIsBusy(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	dir := t.TempDir()

	slow := &stubSurface{started: make(chan struct{}), block: make(chan struct{})}

	done := make(chan error, 1)
	go func() {
		_, err := svc.Export(context.Background(), testInput(slow), export.FormatSVG, dir)
		done <- err
	}()

	<-slow.started

	_, err := svc.Export(context.Background(), testInput(&stubSurface{}), export.FormatSVG, dir)
	require.ErrorIs(t, err, pixieerrors.ErrBusy)

	close(slow.block)
	require.NoError(t, <-done)

	// The slot frees once the first export finishes.
	_, err = svc.Export(context.Background(), testInput(&stubSurface{}), export.FormatSVG, dir)
	require.NoError(t, err)
}

func TestExportFormatsRunIndependently(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	dir := t.TempDir()

	slow := &stubSurface{started: make(chan struct{}), block: make(chan struct{})}

	done := make(chan error, 1)
	go func() {
		_, err := svc.Export(context.Background(), testInput(slow), export.FormatSVG, dir)
		done <- err
	}()

	<-slow.started

	path, err := svc.Export(context.Background(), testInput(&stubSurface{}), export.FormatPNG, dir)
	require.NoError(t, err, "a different format must not be blocked")
	assert.FileExists(t, path)

	close(slow.block)
	require.NoError(t, <-done)
}

func TestExportFailureReleasesSlot(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	// Using a file as the output directory forces the save to fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := svc.Export(context.Background(), testInput(&stubSurface{}), export.FormatSVG, blocker)
	require.Error(t, err)
	require.NotErrorIs(t, err, pixieerrors.ErrBusy)

	_, err = svc.Export(context.Background(), testInput(&stubSurface{}), export.FormatSVG, t.TempDir())
	require.NoError(t, err, "slot must be released after a failed export")
}

func TestCopySVGSetsTransientFlag(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	svc.resetDelay = 25 * time.Millisecond

	var copied string
	svc.copyText = func(text string) error {
		copied = text
		return nil
	}

	require.NoError(t, svc.CopySVG(context.Background(), testInput(&stubSurface{})))
	assert.Contains(t, copied, "<svg")
	assert.True(t, svc.Copied())

	assert.Eventually(t, func() bool { return !svc.Copied() },
		time.Second, 5*time.Millisecond, "confirmation must clear on its own")
}

func TestCopySVGWithoutSurfaceSkipsClipboard(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	calls := 0
	svc.copyText = func(string) error {
		calls++
		return nil
	}

	require.NoError(t, svc.CopySVG(context.Background(), card.Input{Theme: testTheme()}))
	assert.Zero(t, calls)
	assert.False(t, svc.Copied())
}

func TestCopySVGClipboardFailure(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	svc.copyText = func(string) error {
		return assert.AnError
	}

	err := svc.CopySVG(context.Background(), testInput(&stubSurface{}))
	require.ErrorIs(t, err, assert.AnError)
	assert.False(t, svc.Copied(), "failed copy must not flash the confirmation")

	svc.copyText = func(string) error { return nil }
	require.NoError(t, svc.CopySVG(context.Background(), testInput(&stubSurface{})),
		"slot must be released after a failed copy")
}
