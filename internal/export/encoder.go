// Package export turns a composed card document into deliverable bytes:
// SVG passthrough, or PNG/JPEG rasterization, plus the save and clipboard
// side effects.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/Sabique-Islam/pixiefie/internal/card"
	"github.com/Sabique-Islam/pixiefie/internal/theme"
	pixieerrors "github.com/Sabique-Islam/pixiefie/pkg/errors"
)

// Format is a supported export encoding.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpg"
)

// Formats lists the supported encodings in display order.
func Formats() []Format {
	return []Format{FormatSVG, FormatPNG, FormatJPEG}
}

// ParseFormat normalizes a format name; "jpeg" is accepted for "jpg".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "svg":
		return FormatSVG, nil
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	}
	return "", fmt.Errorf("unsupported format %q, expected svg, png or jpg", s)
}

// Extension returns the file extension without a dot.
func (f Format) Extension() string {
	return string(f)
}

const (
	// Bitmap formats render at twice the logical canvas size.
	defaultScale = 2.0
	// JPEG is lossy; encode at a fixed high quality.
	jpegQuality = 95
	// neutralDark backs the bitmap when the theme background can't parse.
	neutralDark = "#111827"
)

// Encoder renders export bytes from a composed vector document.
type Encoder struct {
	scale float64
}

// NewEncoder constructs an Encoder with the default 2x bitmap scale.
func NewEncoder() *Encoder {
	return &Encoder{scale: defaultScale}
}

// Encode serializes the document in the requested format. background is the
// theme's resolved background color; bitmap formats are painted over it
// fully opaque because neither PNG nor JPEG carries the card's layered
// translucency.
func (e *Encoder) Encode(doc string, format Format, background string) ([]byte, error) {
	if doc == "" {
		return nil, pixieerrors.NewEncodeError(string(format), fmt.Errorf("empty document"))
	}

	switch format {
	case FormatSVG:
		return []byte(doc), nil
	case FormatPNG, FormatJPEG:
		img, err := e.rasterize(doc, background)
		if err != nil {
			return nil, pixieerrors.NewEncodeError(string(format), err)
		}

		var buf bytes.Buffer
		if format == FormatPNG {
			err = png.Encode(&buf, img)
		} else {
			err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality})
		}
		if err != nil {
			return nil, pixieerrors.NewEncodeError(string(format), err)
		}
		return buf.Bytes(), nil
	}
	return nil, pixieerrors.NewEncodeError(string(format), fmt.Errorf("unsupported format"))
}

// rasterize draws the document onto an opaque canvas at the encoder scale.
func (e *Encoder) rasterize(doc, background string) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(doc), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("decoding vector document: %w", err)
	}

	width := int(float64(card.CanvasWidth) * e.scale)
	height := int(float64(card.CanvasHeight) * e.scale)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor(background)), image.Point{}, draw.Src)

	icon.SetTarget(0, 0, float64(width), float64(height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// backgroundColor resolves the opaque paint behind the card. Skipping this
// fill leaves transparent holes that JPEG renders black.
func backgroundColor(background string) color.NRGBA {
	parsed, err := theme.ParseColor(background)
	if err != nil {
		parsed, _ = theme.ParseColor(neutralDark)
	}
	return theme.Opaque(parsed)
}
