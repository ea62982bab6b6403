package card

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sabique-Islam/pixiefie/internal/logger"
	"github.com/Sabique-Islam/pixiefie/internal/profile"
	"github.com/Sabique-Islam/pixiefie/internal/theme"
)

// Input carries everything one export needs, captured fresh per action.
type Input struct {
	Profile   *profile.Profile
	Theme     theme.Theme
	Overrides theme.Overrides
	Surface   Surface
}

// Compositor synthesizes the card vector document.
type Compositor struct {
	log *logger.Logger
}

// NewCompositor constructs a Compositor.
func NewCompositor(log *logger.Logger) *Compositor {
	return &Compositor{log: log}
}

// Compose builds the self-contained 384x500 SVG document for the input.
// When no surface is mounted it returns an empty document and no error: the
// caller treats that as a no-op, not a failure. Every other missing input
// (avatar, QR, bio, name) has a visual fallback and never raises.
func (c *Compositor) Compose(ctx context.Context, in Input) (string, error) {
	if in.Surface == nil || in.Profile == nil {
		return "", nil
	}

	// Step 1: effective colors, override wins key-by-key.
	colors := in.Theme.EffectiveColors(in.Overrides)

	// Step 2: harvest the live QR vector.
	fragment := in.Surface.QRFragment()

	// Step 3: harvest the avatar. Fetch failure falls back to initials and
	// must never propagate as an export error.
	avatar, err := in.Surface.AvatarData(ctx)
	if err != nil {
		c.log.WithField("avatar", in.Profile.Avatar).Warn("avatar harvest failed, using placeholder")
		avatar = ""
	}

	// Step 4: outer gradient endpoints.
	gradient := resolveGradient(in.Theme.ID, colors, len(in.Overrides) > 0)

	// Step 5: background pattern definition.
	pattern := ""
	if in.Theme.HasPattern() {
		pattern = patternDef(in.Theme.Pattern, in.Theme.Opacity(), colors.Primary)
	}

	// Step 6: compose, back to front.
	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">`,
		CanvasWidth, CanvasHeight)

	writeDefs(&b, gradient, colors, pattern)

	// Outer gradient shell.
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="url(#themeGradient)" rx="%d"/>`,
		CanvasWidth, CanvasHeight, OuterRadius)

	// Pattern overlay.
	if pattern != "" {
		fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="url(#bgPattern)" rx="%d"/>`,
			CanvasWidth, CanvasHeight, OuterRadius)
	}

	// Inner glass layer.
	fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" opacity="%g" rx="%d"/>`,
		InnerInset, InnerInset, CanvasWidth-2*InnerInset, CanvasHeight-2*InnerInset,
		colors.Background, InnerOpacity, InnerRadius)

	// Content group.
	fmt.Fprintf(&b, `<g transform="translate(%d, %d)">`, ContentInset, ContentInset)
	writeAvatar(&b, in.Profile, colors, avatar)
	writeIdentity(&b, in.Profile, colors)
	hasBio := in.Profile.Bio != ""
	if hasBio {
		writeBio(&b, in.Profile.Bio, colors)
	}
	writeQR(&b, fragment, colors, hasBio)
	writeBadge(&b, in.Profile.Platform, colors)
	b.WriteString(`</g>`)

	b.WriteString(`</svg>`)
	return b.String(), nil
}

func writeDefs(b *strings.Builder, gradient gradientPair, colors theme.ThemeColors, pattern string) {
	b.WriteString(`<defs>`)
	fmt.Fprintf(b,
		`<linearGradient id="themeGradient" x1="0%%" y1="0%%" x2="100%%" y2="100%%"><stop offset="0%%" stop-color="%s"/><stop offset="100%%" stop-color="%s"/></linearGradient>`,
		gradient.start, gradient.end)
	fmt.Fprintf(b,
		`<linearGradient id="avatarGradient" x1="0%%" y1="0%%" x2="100%%" y2="100%%"><stop offset="0%%" stop-color="%s"/><stop offset="100%%" stop-color="%s"/></linearGradient>`,
		hexAlpha(colors.Primary, "66"), hexAlpha(colors.Secondary, "66"))
	b.WriteString(pattern)
	fmt.Fprintf(b, `<clipPath id="avatarClip"><circle cx="0" cy="0" r="%d"/></clipPath>`, AvatarRadius)
	b.WriteString(`</defs>`)
}

func writeAvatar(b *strings.Builder, p *profile.Profile, colors theme.ThemeColors, avatar string) {
	fmt.Fprintf(b, `<g transform="translate(%d, %d)">`, CenterX, AvatarCenterY)
	fmt.Fprintf(b, `<circle cx="0" cy="0" r="%d" fill="%s"/>`, AvatarRingRadius, hexAlpha(colors.Primary, "40"))
	if avatar != "" {
		fmt.Fprintf(b,
			`<image x="%d" y="%d" width="%d" height="%d" href="%s" clip-path="url(#avatarClip)"/>`,
			-AvatarRadius, -AvatarRadius, AvatarSize, AvatarSize, avatar)
	} else {
		fmt.Fprintf(b, `<circle cx="0" cy="0" r="%d" fill="url(#avatarGradient)"/>`, AvatarRadius)
		fmt.Fprintf(b,
			`<text x="0" y="8" text-anchor="middle" fill="%s" font-size="%d" font-weight="bold" font-family="%s">%s</text>`,
			colors.Text, InitialFontSize, FontFamily, escapeText(p.Initial()))
	}
	b.WriteString(`</g>`)
}

func writeIdentity(b *strings.Builder, p *profile.Profile, colors theme.ThemeColors) {
	fmt.Fprintf(b, `<g transform="translate(%d, %d)">`, CenterX, NameY)
	fmt.Fprintf(b,
		`<text x="0" y="0" text-anchor="middle" fill="%s" font-size="%d" font-weight="bold" font-family="%s">%s</text>`,
		colors.Text, NameFontSize, FontFamily, escapeText(p.DisplayName()))
	fmt.Fprintf(b,
		`<text x="0" y="%d" text-anchor="middle" fill="%s" font-size="%d" font-family="%s">@%s</text>`,
		UsernameDY, colors.TextSecondary, UsernameFontSize, FontFamily, escapeText(p.Username))
	b.WriteString(`</g>`)
}

func writeBio(b *strings.Builder, bio string, colors theme.ThemeColors) {
	fmt.Fprintf(b, `<g transform="translate(%d, %d)">`, CenterX, BioY)
	fmt.Fprintf(b,
		`<text x="0" y="0" text-anchor="middle" fill="%s" font-size="%d" font-family="%s">%s</text>`,
		colors.TextSecondary, BioFontSize, FontFamily, escapeText(TruncateBio(bio)))
	b.WriteString(`</g>`)
}

func writeQR(b *strings.Builder, fragment Fragment, colors theme.ThemeColors, hasBio bool) {
	fmt.Fprintf(b, `<g transform="translate(%d, %d)">`, CenterX, QROffsetY(hasBio))

	// White backing square behind the code.
	fmt.Fprintf(b, `<rect x="%d" y="%d" width="%d" height="%d" fill="white" rx="12"/>`,
		QRBackInset, QRBackInset, QRBackSize, QRBackSize)

	viewport := fragment.Viewport
	if fragment.Empty() {
		viewport = FallbackQRViewport
	}
	scale := float64(QRSlotSize) / viewport

	fmt.Fprintf(b, `<g transform="translate(%d, %d) scale(%g)">`, -QRSlotSize/2, -QRSlotSize/2, scale)
	if fragment.Empty() {
		// Profile had no link or the code never rendered: a labeled white
		// square stands in so the export still completes.
		fmt.Fprintf(b, `<rect width="%d" height="%d" fill="white"/>`, FallbackQRViewport, FallbackQRViewport)
		fmt.Fprintf(b,
			`<text x="%d" y="%d" text-anchor="middle" fill="black" font-size="20" font-family="%s">QR</text>`,
			FallbackQRViewport/2, FallbackQRViewport/2, FontFamily)
	} else {
		for _, prim := range fragment.Primitives {
			fill := prim.Fill
			if fill == "" {
				fill = "#000000"
			}
			if prim.Path != "" {
				fmt.Fprintf(b, `<path d="%s" fill="%s"/>`, prim.Path, fill)
			} else {
				fmt.Fprintf(b, `<rect x="%g" y="%g" width="%g" height="%g" fill="%s"/>`,
					prim.X, prim.Y, prim.Width, prim.Height, fill)
			}
		}
	}
	b.WriteString(`</g>`)

	fmt.Fprintf(b,
		`<text x="0" y="%d" text-anchor="middle" fill="%s" font-size="%d" font-family="%s">%s</text>`,
		QRCaptionDY, colors.TextSecondary, CaptionFontSize, FontFamily, QRCaption)
	b.WriteString(`</g>`)
}

func writeBadge(b *strings.Builder, platform profile.Platform, colors theme.ThemeColors) {
	fmt.Fprintf(b, `<g transform="translate(%d, %d)">`, CenterX, BadgeY)
	fmt.Fprintf(b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" opacity="0.2" rx="12"/>`,
		-BadgeWidth/2, -BadgeHeight/2, BadgeWidth, BadgeHeight, colors.Primary)
	fmt.Fprintf(b,
		`<text x="0" y="4" text-anchor="middle" fill="%s" font-size="%d" font-weight="600" font-family="%s">%s</text>`,
		colors.Text, BadgeFontSize, FontFamily, escapeText(platform.BadgeLabel()))
	b.WriteString(`</g>`)
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// hexAlpha appends an alpha suffix to a 6-digit hex color; non-hex palette
// values pass through untouched.
func hexAlpha(color, suffix string) string {
	if strings.HasPrefix(color, "#") && len(color) == 7 {
		return color + suffix
	}
	return color
}
