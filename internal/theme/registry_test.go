package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sabique-Islam/pixiefie/internal/profile"
)

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	reg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 17, reg.Len())

	for _, theme := range reg.Themes() {
		assert.GreaterOrEqual(t, len(theme.Gradient), 2, "theme %s needs at least two gradient stops", theme.ID)
		assert.True(t, IsColor(theme.Colors.Primary), "theme %s primary", theme.ID)
		assert.True(t, IsColor(theme.Colors.Background), "theme %s background", theme.ID)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	t.Parallel()

	reg := MustLoad()
	for _, want := range reg.Themes() {
		first, err := reg.Resolve(want.ID)
		require.NoError(t, err)
		second, err := reg.Resolve(want.ID)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, want, first)
	}
}

func TestResolveUnknownTheme(t *testing.T) {
	t.Parallel()

	reg := MustLoad()
	_, err := reg.Resolve("vaporwave")
	require.Error(t, err)
}

func TestNewRegistryRejectsDuplicateIDs(t *testing.T) {
	t.Parallel()

	colors := ThemeColors{
		Primary: "#FFFFFF", Secondary: "#000000", Accent: "#FF0000",
		Background: "rgba(0,0,0,0.5)", Text: "#FFFFFF", TextSecondary: "#CCCCCC",
	}
	dup := []Theme{
		{ID: "twin", Name: "Twin", Colors: colors, Gradient: []string{"#000000", "#FFFFFF"}},
		{ID: "twin", Name: "Twin Again", Colors: colors, Gradient: []string{"#000000", "#FFFFFF"}},
	}

	_, err := NewRegistry(dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate theme id")
}

func TestNewRegistryRejectsBadColors(t *testing.T) {
	t.Parallel()

	bad := []Theme{{
		ID: "broken", Name: "Broken",
		Colors: ThemeColors{
			Primary: "spicy-red", Secondary: "#000000", Accent: "#FF0000",
			Background: "#111111", Text: "#FFFFFF", TextSecondary: "#CCCCCC",
		},
		Gradient: []string{"#000000", "#FFFFFF"},
	}}

	_, err := NewRegistry(bad)
	require.Error(t, err)
}

func TestPlatformThemeGradients(t *testing.T) {
	t.Parallel()

	reg := MustLoad()

	github := reg.PlatformTheme(profile.PlatformGitHub, nil)
	assert.Equal(t, []string{"#1F2937", "#111827"}, github.Gradient)

	x := reg.PlatformTheme(profile.PlatformX, nil)
	assert.Equal(t, []string{"#1E40AF", "#1E3A8A"}, x.Gradient)
}

func TestPlatformThemeUnknownPlatformFallsBack(t *testing.T) {
	t.Parallel()

	reg := MustLoad()
	derived := reg.PlatformTheme(profile.Platform("myspace"), nil)
	assert.Equal(t, []string{"#1F2937", "#111827"}, derived.Gradient)
}

func TestPlatformThemeMergesOverrides(t *testing.T) {
	t.Parallel()

	reg := MustLoad()
	derived := reg.PlatformTheme(profile.PlatformGitHub, Overrides{"primary": "#123456"})
	assert.Equal(t, "#123456", derived.Colors.Primary)
	// Untouched keys keep the platform-default palette.
	assert.Equal(t, "#7C3AED", derived.Colors.Secondary)
}

func TestEffectiveColorsMergeSemantics(t *testing.T) {
	t.Parallel()

	reg := MustLoad()
	cyberpunk, err := reg.Resolve("cyberpunk")
	require.NoError(t, err)

	merged := cyberpunk.EffectiveColors(Overrides{"primary": "#123456", "textSecondary": "#ABCDEF"})
	assert.Equal(t, "#123456", merged.Primary)
	assert.Equal(t, "#ABCDEF", merged.TextSecondary)
	assert.Equal(t, cyberpunk.Colors.Secondary, merged.Secondary)
	assert.Equal(t, cyberpunk.Colors.Background, merged.Background)

	// No overrides returns the palette untouched.
	assert.Equal(t, cyberpunk.Colors, cyberpunk.EffectiveColors(nil))
}

func TestOpacityDefault(t *testing.T) {
	t.Parallel()

	reg := MustLoad()

	oceanDepths, err := reg.Resolve("ocean-depths")
	require.NoError(t, err)
	assert.InDelta(t, 0.1, oceanDepths.Opacity(), 1e-9)

	obsidian, err := reg.Resolve("obsidian")
	require.NoError(t, err)
	assert.InDelta(t, 0.02, obsidian.Opacity(), 1e-9)
}

func TestValidateOverrides(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateOverrides(Overrides{"primary": "#FF0000"}))
	require.Error(t, ValidateOverrides(Overrides{"tertiary": "#FF0000"}))
	require.Error(t, ValidateOverrides(Overrides{"primary": "reddish"}))
}
