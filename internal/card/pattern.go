package card

import (
	"fmt"

	"github.com/Sabique-Islam/pixiefie/internal/theme"
)

// patternDef emits the defs entry for a theme's background pattern,
// parameterized by the pattern opacity and the effective primary color.
// Unrecognized pattern types emit nothing.
func patternDef(pattern theme.PatternType, opacity float64, color string) string {
	switch pattern {
	case theme.PatternDots:
		return fmt.Sprintf(
			`<pattern id="bgPattern" patternUnits="userSpaceOnUse" width="16" height="16"><circle cx="8" cy="8" r="1" fill="%s" opacity="%g"/></pattern>`,
			color, opacity)
	case theme.PatternGrid:
		return fmt.Sprintf(
			`<pattern id="bgPattern" patternUnits="userSpaceOnUse" width="24" height="24"><path d="M 24 0 L 0 0 0 24" fill="none" stroke="%s" stroke-width="0.5" opacity="%g"/></pattern>`,
			color, opacity)
	case theme.PatternCrossHatch:
		return fmt.Sprintf(
			`<pattern id="bgPattern" patternUnits="userSpaceOnUse" width="16" height="16"><path d="M 0 0 L 16 16 M 16 0 L 0 16" stroke="%s" stroke-width="0.5" opacity="%g"/></pattern>`,
			color, opacity)
	case theme.PatternDiagonalLines:
		return fmt.Sprintf(
			`<pattern id="bgPattern" patternUnits="userSpaceOnUse" width="10" height="10" patternTransform="rotate(45)"><line x1="0" y1="0" x2="0" y2="10" stroke="%s" stroke-width="0.5" opacity="%g"/></pattern>`,
			color, opacity)
	case theme.PatternCircuit:
		return fmt.Sprintf(
			`<pattern id="bgPattern" patternUnits="userSpaceOnUse" width="40" height="40"><path d="M 0 20 L 20 20 L 20 0 M 20 20 L 40 20 M 20 20 L 20 40" fill="none" stroke="%s" stroke-width="1" opacity="%g"/><circle cx="20" cy="20" r="3" fill="%s" opacity="%g"/></pattern>`,
			color, opacity, color, opacity)
	case theme.PatternHexagon:
		return fmt.Sprintf(
			`<pattern id="bgPattern" patternUnits="userSpaceOnUse" width="28" height="49"><path d="M14,0 L28,12.25 L28,36.75 L14,49 L0,36.75 L0,12.25 Z" fill="none" stroke="%s" stroke-width="0.5" opacity="%g" transform="translate(0, -12.25)"/></pattern>`,
			color, opacity)
	case theme.PatternMesh:
		return fmt.Sprintf(
			`<pattern id="bgPattern" patternUnits="userSpaceOnUse" width="32" height="32"><path d="M 32 0 L 0 0 0 32" fill="none" stroke="%s" stroke-width="0.5" opacity="%g"/><path d="M 0 0 L 32 32" fill="none" stroke="%s" stroke-width="0.3" opacity="%g"/></pattern>`,
			color, opacity, color, opacity*0.5)
	case theme.PatternRadialGradient:
		return fmt.Sprintf(
			`<radialGradient id="bgPattern" cx="50%%" cy="50%%" r="70%%"><stop offset="0%%" stop-color="%s" stop-opacity="%g"/><stop offset="100%%" stop-color="%s" stop-opacity="0"/></radialGradient>`,
			color, opacity*2, color)
	default:
		return ""
	}
}
