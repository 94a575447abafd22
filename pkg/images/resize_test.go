package images_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"go-hackmate-backend/pkg/images"

	"github.com/stretchr/testify/assert"
)

func pngFixture(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestThumbnail(t *testing.T) {
	t.Run("Downscales the longest side keeping aspect ratio", func(t *testing.T) {
		out, err := images.Thumbnail(pngFixture(t, 1024, 512), 256, 80)
		assert.NoError(t, err)

		decoded, _, err := image.Decode(bytes.NewReader(out))
		assert.NoError(t, err)
		assert.Equal(t, 256, decoded.Bounds().Dx())
		assert.Equal(t, 128, decoded.Bounds().Dy())
	})

	t.Run("Keeps dimensions of images already within bounds", func(t *testing.T) {
		out, err := images.Thumbnail(pngFixture(t, 100, 200), 256, 80)
		assert.NoError(t, err)

		decoded, _, err := image.Decode(bytes.NewReader(out))
		assert.NoError(t, err)
		assert.Equal(t, 100, decoded.Bounds().Dx())
		assert.Equal(t, 200, decoded.Bounds().Dy())
	})

	t.Run("Rejects non-image payloads", func(t *testing.T) {
		_, err := images.Thumbnail([]byte("not an image"), 256, 80)
		assert.Error(t, err)
	})
}
