package scholarpage

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcessHeadshotCropsAndScales(t *testing.T) {
	data, size, err := ProcessHeadshot(bytes.NewReader(encodePNG(t, 300, 200)), 100)
	require.NoError(t, err)
	assert.Equal(t, 100, size)

	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}

func TestProcessHeadshotNeverUpscales(t *testing.T) {
	data, size, err := ProcessHeadshot(bytes.NewReader(encodePNG(t, 50, 80)), 100)
	require.NoError(t, err)
	assert.Equal(t, 50, size)

	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 50, 50), img.Bounds())
}

func TestProcessHeadshotRejectsGarbage(t *testing.T) {
	_, _, err := ProcessHeadshot(strings.NewReader("not an image"), 100)
	assert.Error(t, err)
}

func TestCenterSquare(t *testing.T) {
	assert.Equal(t, image.Rect(50, 0, 250, 200), centerSquare(image.Rect(0, 0, 300, 200)))
	assert.Equal(t, image.Rect(0, 15, 50, 65), centerSquare(image.Rect(0, 0, 50, 80)))
}

func TestWriteHeadshot(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "me.png")
	require.NoError(t, os.WriteFile(src, encodePNG(t, 120, 160), 0o644))

	static := filepath.Join(dir, "public")
	dst, err := WriteHeadshot(src, static, 64)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(static, "headshot.jpg"), dst)

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := jpeg.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 64, cfg.Height)
	assert.Equal(t, "/public/headshot.jpg", HeadshotPath())
}
