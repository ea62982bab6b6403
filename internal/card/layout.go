// Package card synthesizes the profile card as a self-contained SVG
// document and defines the layout contract shared with the live renderer.
package card

// The live terminal renderer and the export compositor are two encoders of
// one layout. Constants here are the single source of truth for both; a
// change on one side must go through this file so the other follows.
const (
	// Canvas dimensions in logical units.
	CanvasWidth  = 384
	CanvasHeight = 500

	// Outer gradient shell and inner glass layer.
	OuterRadius  = 16
	InnerInset   = 4
	InnerRadius  = 12
	InnerOpacity = 0.95

	// Content group inset from the canvas origin; CenterX is the horizontal
	// middle of the content group.
	ContentInset = 36
	CenterX      = 156

	// Avatar block.
	AvatarCenterY    = 58
	AvatarRadius     = 48
	AvatarRingRadius = 52
	AvatarSize       = 96

	// Name and username block.
	NameY      = 178
	UsernameDY = 20

	// Bio block. Bios longer than BioRuneLimit are cut and suffixed "...".
	BioY         = 225
	BioRuneLimit = 50

	// QR block. The vertical slot shifts depending on whether a bio consumed
	// layout space above it.
	QRWithBioY  = 275
	QRWithoutBioY = 255
	QRSlotSize  = 80
	QRBackSize  = 86
	QRBackInset = -43
	QRCaptionDY = 65

	// Fallback QR viewport: the white "QR" placeholder square is drawn in a
	// 276-unit viewport so it scales into the slot like a real code.
	FallbackQRViewport = 276

	// Platform badge pill.
	BadgeY      = 400
	BadgeWidth  = 160
	BadgeHeight = 24

	// Font sizes.
	InitialFontSize  = 32
	NameFontSize     = 20
	UsernameFontSize = 14
	BioFontSize      = 14
	CaptionFontSize  = 12
	BadgeFontSize    = 11
)

// FontFamily is the text stack used for every label in the document.
const FontFamily = "system-ui, -apple-system, sans-serif"

// QRCaption is rendered under the QR block.
const QRCaption = "Scan to view profile"

// TruncateBio applies the bio display rule: at most BioRuneLimit runes, with
// an ellipsis suffix when the source was longer.
func TruncateBio(bio string) string {
	runes := []rune(bio)
	if len(runes) <= BioRuneLimit {
		return bio
	}
	return string(runes[:BioRuneLimit]) + "..."
}

// QROffsetY returns the QR block's vertical offset for the given bio
// presence.
func QROffsetY(hasBio bool) int {
	if hasBio {
		return QRWithBioY
	}
	return QRWithoutBioY
}
