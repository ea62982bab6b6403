package card

import (
	"fmt"

	"github.com/yeqown/go-qrcode/v2"
)

// fragmentCollector implements qrcode.Writer, collecting the module matrix
// as unit rects instead of encoding an image. One rect per dark module, in
// a viewport of one unit per module.
type fragmentCollector struct {
	fragment Fragment
}

func (c *fragmentCollector) Write(mat qrcode.Matrix) error {
	c.fragment.Viewport = float64(mat.Width())
	mat.Iterate(qrcode.IterDirection_ROW, func(x int, y int, v qrcode.QRValue) {
		if !v.IsSet() {
			return
		}
		c.fragment.Primitives = append(c.fragment.Primitives, Primitive{
			X: float64(x), Y: float64(y), Width: 1, Height: 1,
			Fill: "#000000",
		})
	})
	return nil
}

func (c *fragmentCollector) Close() error {
	return nil
}

// EncodeQR renders link as a QR vector fragment. Quartile error correction
// keeps the code scannable at the card's 80x80 slot size.
func EncodeQR(link string) (Fragment, error) {
	if link == "" {
		return Fragment{}, nil
	}

	qrc, err := qrcode.NewWith(link, qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart))
	if err != nil {
		return Fragment{}, fmt.Errorf("encoding qr: %w", err)
	}

	collector := &fragmentCollector{}
	if err := qrc.Save(collector); err != nil {
		return Fragment{}, fmt.Errorf("collecting qr matrix: %w", err)
	}
	return collector.fragment, nil
}
