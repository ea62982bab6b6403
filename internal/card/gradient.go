package card

import (
	"github.com/Sabique-Islam/pixiefie/internal/theme"
)

// gradientPair is the outer shell gradient's two endpoints.
type gradientPair struct {
	start, end string
}

// themeGradients maps theme ids to bespoke export gradient endpoints. These
// track each theme's CSS gradient art direction more closely than its raw
// primary/secondary pair. Themes absent here (including platform-default)
// fall back to primary/secondary.
var themeGradients = map[string]gradientPair{
	"cyberpunk":    {"#00FFFF", "#FF00FF"},
	"sunset":       {"#FACC15", "#EF4444"},
	"ocean-depths": {"#2563EB", "#14B8A6"},
	"cosmic":       {"#6B21A8", "#1E3A8A"},
	"retro-wave":   {"#EC4899", "#4F46E5"},
	"forest":       {"#166534", "#0F766E"},
	"midnight":     {"#0F172A", "#1E3A8A"},
	"obsidian":     {"#09090B", "#18181B"},
	"aurora":       {"#020617", "#4C1D95"},
	"neon-noir":    {"#000000", "#18181B"},
	"void":         {"#030010", "#3B0764"},
	"matrix":       {"#000500", "#14532D"},
	"carbon":       {"#0A0A0A", "#171717"},
	"ember":        {"#0C0602", "#451A03"},
	"frost":        {"#080F14", "#083344"},
	"rose-gold":    {"#0F080C", "#4C0519"},
}

// resolveGradient picks the outer gradient endpoints. Any explicit color
// override collapses the gradient to the effective primary/secondary pair;
// gradient art direction never trumps a caller's choice. Without overrides
// the bespoke table wins, then primary/secondary.
func resolveGradient(themeID string, colors theme.ThemeColors, overridden bool) gradientPair {
	if overridden {
		return gradientPair{colors.Primary, colors.Secondary}
	}
	if pair, ok := themeGradients[themeID]; ok {
		return pair
	}
	return gradientPair{colors.Primary, colors.Secondary}
}
