package scholarpage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

const (
	// DefaultHeadshotSize is the edge length of the square headshot in pixels.
	DefaultHeadshotSize = 480
	headshotQuality     = 85
	headshotFilename    = "headshot.jpg"
)

// ProcessHeadshot decodes an image from src, crops it to a centered square,
// scales it down to size×size and encodes it as JPEG. Images smaller than
// size are cropped but never enlarged. It returns the encoded bytes and the
// final edge length.
func ProcessHeadshot(src io.Reader, size int) ([]byte, int, error) {
	if size <= 0 {
		size = DefaultHeadshotSize
	}
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, 0, fmt.Errorf("decode image: %w", err)
	}

	crop := centerSquare(img.Bounds())
	if side := crop.Dx(); side < size {
		size = side
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: headshotQuality}); err != nil {
		return nil, 0, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), size, nil
}

// centerSquare returns the largest square centered in r.
func centerSquare(r image.Rectangle) image.Rectangle {
	w, h := r.Dx(), r.Dy()
	side := min(w, h)
	x0 := r.Min.X + (w-side)/2
	y0 := r.Min.Y + (h-side)/2
	return image.Rect(x0, y0, x0+side, y0+side)
}

// WriteHeadshot processes the image at srcPath and stores it as headshot.jpg
// in staticDir. It returns the written path.
func WriteHeadshot(srcPath, staticDir string, size int) (string, error) {
	f, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	data, _, err := ProcessHeadshot(f, size)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(staticDir, 0o755); err != nil {
		return "", fmt.Errorf("create static dir: %w", err)
	}
	dst := filepath.Join(staticDir, headshotFilename)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("write headshot: %w", err)
	}
	return dst, nil
}

// HeadshotPath is the public URL of a headshot written by WriteHeadshot.
func HeadshotPath() string {
	return "/public/" + headshotFilename
}
