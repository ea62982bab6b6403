package theme

// PatternType names a background pattern the card renderer knows how to
// draw. Unrecognized values render nothing rather than failing.
type PatternType string

const (
	PatternNone           PatternType = "none"
	PatternDots           PatternType = "dots"
	PatternGrid           PatternType = "grid"
	PatternCrossHatch     PatternType = "cross-hatch"
	PatternDiagonalLines  PatternType = "diagonal-lines"
	PatternMesh           PatternType = "mesh"
	PatternCircuit        PatternType = "circuit"
	PatternHexagon        PatternType = "hexagon"
	PatternRadialGradient PatternType = "radial-gradient"
)

// ThemeColors is a theme's palette. Every value is a CSS-style color string,
// either hex or rgba().
type ThemeColors struct {
	Primary       string `yaml:"primary" json:"primary" validate:"required,csscolor"`
	Secondary     string `yaml:"secondary" json:"secondary" validate:"required,csscolor"`
	Accent        string `yaml:"accent" json:"accent" validate:"required,csscolor"`
	Background    string `yaml:"background" json:"background" validate:"required,csscolor"`
	Text          string `yaml:"text" json:"text" validate:"required,csscolor"`
	TextSecondary string `yaml:"text_secondary" json:"textSecondary" validate:"required,csscolor"`
}

// Overrides is a sparse set of palette replacements keyed by palette name.
// Merge semantics are key-by-key: an override replaces exactly the named
// key, untouched keys keep the theme's value.
type Overrides map[string]string

// OverrideKeys lists the palette keys an override may target.
var OverrideKeys = []string{"primary", "secondary", "accent", "background", "text", "textSecondary"}

// Merge applies overrides over the base palette.
func (c ThemeColors) Merge(overrides Overrides) ThemeColors {
	merged := c
	for key, value := range overrides {
		if value == "" {
			continue
		}
		switch key {
		case "primary":
			merged.Primary = value
		case "secondary":
			merged.Secondary = value
		case "accent":
			merged.Accent = value
		case "background":
			merged.Background = value
		case "text":
			merged.Text = value
		case "textSecondary":
			merged.TextSecondary = value
		}
	}
	return merged
}

// Theme is one immutable entry of the catalog.
type Theme struct {
	ID          string      `yaml:"id" validate:"required,theme_id"`
	Name        string      `yaml:"name" validate:"required"`
	Description string      `yaml:"description,omitempty"`
	Colors      ThemeColors `yaml:"colors" validate:"required"`
	Gradient    []string    `yaml:"gradient" validate:"required,min=2,dive,csscolor"`
	Pattern     PatternType `yaml:"pattern,omitempty"`
	// PatternOpacity is a pointer so the catalog can distinguish "unset"
	// (default 0.1) from an explicit 0.
	PatternOpacity *float64 `yaml:"pattern_opacity,omitempty" validate:"omitempty,min=0,max=1"`
	BorderStyle    string   `yaml:"border_style,omitempty"`
	ShadowStyle    string   `yaml:"shadow_style,omitempty"`
	GlowColor      string   `yaml:"glow_color,omitempty"`
	GlowIntensity  string   `yaml:"glow_intensity,omitempty" validate:"omitempty,oneof=subtle medium strong"`
}

const defaultPatternOpacity = 0.1

// Opacity returns the pattern opacity, defaulting to 0.1 when unset.
func (t Theme) Opacity() float64 {
	if t.PatternOpacity == nil {
		return defaultPatternOpacity
	}
	return *t.PatternOpacity
}

// HasPattern reports whether the theme declares a drawable pattern.
func (t Theme) HasPattern() bool {
	return t.Pattern != "" && t.Pattern != PatternNone
}

// EffectiveColors resolves the palette the renderers use: the theme palette
// with overrides merged key-by-key.
func (t Theme) EffectiveColors(overrides Overrides) ThemeColors {
	if len(overrides) == 0 {
		return t.Colors
	}
	return t.Colors.Merge(overrides)
}
