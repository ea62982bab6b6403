package export

import (
	"bytes"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pixieerrors "github.com/Sabique-Islam/pixiefie/pkg/errors"
)

const sampleDoc = `<svg xmlns="http://www.w3.org/2000/svg" width="384" height="500" viewBox="0 0 384 500">` +
	`<rect width="384" height="500" fill="#FF0000"/></svg>`

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "svg", want: FormatSVG},
		{input: "PNG", want: FormatPNG},
		{input: "jpg", want: FormatJPEG},
		{input: "jpeg", want: FormatJPEG},
		{input: " svg ", want: FormatSVG},
		{input: "gif", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeSVGPassthrough(t *testing.T) {
	t.Parallel()

	enc := NewEncoder()

	data, err := enc.Encode(sampleDoc, FormatSVG, "#0B1120")
	require.NoError(t, err)
	assert.Equal(t, sampleDoc, string(data))
}

func TestEncodeEmptyDocument(t *testing.T) {
	t.Parallel()

	enc := NewEncoder()

	_, err := enc.Encode("", FormatPNG, "#0B1120")
	require.Error(t, err)

	var encodeErr *pixieerrors.EncodeError
	require.ErrorAs(t, err, &encodeErr)
	assert.Equal(t, "png", encodeErr.Format)
}

func TestEncodePNGDoublesCanvas(t *testing.T) {
	t.Parallel()

	enc := NewEncoder()

	data, err := enc.Encode(sampleDoc, FormatPNG, "#0B1120")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 768, img.Bounds().Dx())
	assert.Equal(t, 1000, img.Bounds().Dy())
}

func TestEncodePNGOpaqueBackground(t *testing.T) {
	t.Parallel()

	enc := NewEncoder()

	// A document with no paint at all leaves only the background fill.
	doc := `<svg xmlns="http://www.w3.org/2000/svg" width="384" height="500" viewBox="0 0 384 500"></svg>`
	data, err := enc.Encode(doc, FormatPNG, "#112233")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	r, g, b, a := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0x11), r>>8)
	assert.Equal(t, uint32(0x22), g>>8)
	assert.Equal(t, uint32(0x33), b>>8)
	assert.Equal(t, uint32(0xFF), a>>8)
}

func TestEncodeInvalidBackgroundFallsBack(t *testing.T) {
	t.Parallel()

	enc := NewEncoder()

	doc := `<svg xmlns="http://www.w3.org/2000/svg" width="384" height="500" viewBox="0 0 384 500"></svg>`
	data, err := enc.Encode(doc, FormatPNG, "not-a-color")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	_, _, _, a := img.At(10, 10).RGBA()
	assert.Equal(t, uint32(0xFF), a>>8, "fallback background must stay opaque")
}

func TestEncodeJPEG(t *testing.T) {
	t.Parallel()

	enc := NewEncoder()

	data, err := enc.Encode(sampleDoc, FormatJPEG, "#0B1120")
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 768, img.Bounds().Dx())
	assert.Equal(t, 1000, img.Bounds().Dy())
}

func TestFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "octocat-profile-card.svg", Filename("octocat", FormatSVG))
	assert.Equal(t, "octocat-profile-card.png", Filename("octocat", FormatPNG))
	assert.Equal(t, "octocat-profile-card.jpg", Filename("octocat", FormatJPEG))
	assert.Equal(t, "profile-profile-card.svg", Filename("  ", FormatSVG))
}

func TestSaveFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	path, err := SaveFile(dir, "octocat", FormatSVG, []byte(sampleDoc))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "octocat-profile-card.svg"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleDoc, string(data))
}

func TestSaveFileCreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "out")

	path, err := SaveFile(dir, "octocat", FormatPNG, []byte{0x89})
	require.NoError(t, err)
	assert.FileExists(t, path)
}
