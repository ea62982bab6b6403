package card

import (
	"context"
)

// Primitive is one vector element harvested from a rendered QR code. Only
// paths and rects survive harvesting; anything else the QR renderer emits is
// ignored. A missing fill means opaque black.
type Primitive struct {
	// Path holds path data; when empty the primitive is a rect.
	Path                string
	X, Y, Width, Height float64
	Fill                string
}

// Fragment is the QR vector content in its own square viewport. A zero
// Viewport marks the fragment as absent.
type Fragment struct {
	Viewport   float64
	Primitives []Primitive
}

// Empty reports whether there is no harvested QR content.
func (f Fragment) Empty() bool {
	return f.Viewport <= 0 || len(f.Primitives) == 0
}

// Surface is the capability a mounted live card exposes to the compositor:
// the two pieces of render state the compositor cannot independently
// recompute. A nil Surface means no card is mounted and export is a no-op.
type Surface interface {
	// QRFragment yields the currently rendered QR vector, or an empty
	// Fragment when the profile has no link.
	QRFragment() Fragment

	// AvatarData fetches the profile's avatar and returns it as a data URI.
	// An empty string or an error means the caller must fall back to the
	// initials placeholder; the error never aborts an export.
	AvatarData(ctx context.Context) (string, error)
}
