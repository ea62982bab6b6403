package theme

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Sabique-Islam/pixiefie/internal/profile"
	pixieerrors "github.com/Sabique-Islam/pixiefie/pkg/errors"
)

//go:embed themes.yaml
var catalogYAML []byte

// PlatformDefaultID is the special theme whose gradient is derived from the
// profile's platform at render time.
const PlatformDefaultID = "platform-default"

// platformGradients maps the canonical platform enum to the gradient pair
// the platform-default theme renders. Keys are canonical only; "twitter"
// normalizes to "x" before lookup.
var platformGradients = map[profile.Platform][]string{
	profile.PlatformGitHub:    {"#1F2937", "#111827"},
	profile.PlatformReddit:    {"#9A3412", "#7F1D1D"},
	profile.PlatformInstagram: {"#9D174D", "#581C87"},
	profile.PlatformX:         {"#1E40AF", "#1E3A8A"},
	profile.PlatformLinkedIn:  {"#1D4ED8", "#1E40AF"},
}

// fallbackGradient is the generic dark pair used for any platform outside
// the known set. Lookups must never fail.
var fallbackGradient = []string{"#1F2937", "#111827"}

// Registry is the immutable theme catalog, built once at startup.
type Registry struct {
	order  []string
	themes map[string]Theme
}

type catalogFile struct {
	Themes []Theme `yaml:"themes"`
}

// Load parses and validates the embedded catalog.
func Load() (*Registry, error) {
	var file catalogFile
	if err := yaml.Unmarshal(catalogYAML, &file); err != nil {
		return nil, pixieerrors.NewValidationError("themes", "parsing catalog failed", err)
	}
	return NewRegistry(file.Themes)
}

// MustLoad is Load for process startup, where a broken embedded catalog is a
// build defect.
func MustLoad() *Registry {
	r, err := Load()
	if err != nil {
		panic(err)
	}
	return r
}

// NewRegistry validates the given themes and indexes them by id. Duplicate
// ids are a configuration error, not a last-write-wins.
func NewRegistry(themes []Theme) (*Registry, error) {
	r := &Registry{
		order:  make([]string, 0, len(themes)),
		themes: make(map[string]Theme, len(themes)),
	}

	for i, t := range themes {
		if err := validateTheme(t); err != nil {
			return nil, err
		}
		if _, exists := r.themes[t.ID]; exists {
			return nil, pixieerrors.NewValidationError(
				fmt.Sprintf("themes[%d].id", i), fmt.Sprintf("duplicate theme id %q", t.ID), nil)
		}
		r.themes[t.ID] = t
		r.order = append(r.order, t.ID)
	}

	return r, nil
}

// Resolve returns the theme registered under id.
func (r *Registry) Resolve(id string) (Theme, error) {
	t, ok := r.themes[id]
	if !ok {
		return Theme{}, fmt.Errorf("theme not found: %s", id)
	}
	return t, nil
}

// Themes returns every theme in catalog order.
func (r *Registry) Themes() []Theme {
	result := make([]Theme, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.themes[id])
	}
	return result
}

// Len reports the number of registered themes.
func (r *Registry) Len() int {
	return len(r.order)
}

// PlatformTheme derives the platform-default theme for a platform: base
// colors merged with overrides and the gradient looked up per platform,
// falling back to the generic dark pair for anything unrecognized.
func (r *Registry) PlatformTheme(platform profile.Platform, overrides Overrides) Theme {
	base, err := r.Resolve(PlatformDefaultID)
	if err != nil {
		// Catalog ships the platform-default entry; a missing one means the
		// registry was built from a custom slice. Synthesize the base.
		base = Theme{ID: PlatformDefaultID, Name: "Platform Default"}
	}

	gradient, ok := platformGradients[platform]
	if !ok {
		gradient = fallbackGradient
	}

	derived := base
	derived.Gradient = append([]string(nil), gradient...)
	derived.Colors = base.Colors.Merge(overrides)
	return derived
}
