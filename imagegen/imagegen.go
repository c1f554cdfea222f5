// Package imagegen provides the placeholder raster generator backing the
// text-to-image endpoint when no image backend is configured. It returns
// a blank canvas-colored PNG so the frontend flow stays usable during
// development.
package imagegen

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/nfnt/resize"
)

const baseSize = 512

var placeholderGray = color.RGBA{R: 120, G: 120, B: 120, A: 255}

// Placeholder renders a blank white image of the requested size and
// returns it as a PNG data URL. Non-positive dimensions fall back to the
// default square.
func Placeholder(width, height int) (string, error) {
	if width <= 0 {
		width = baseSize
	}
	if height <= 0 {
		height = baseSize
	}

	img := image.NewRGBA(image.Rect(0, 0, baseSize, baseSize))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	drawBorder(img)

	var out image.Image = img
	if width != baseSize || height != baseSize {
		out = resize.Resize(uint(width), uint(height), img, resize.Bilinear)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return "", fmt.Errorf("imagegen: encode png: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// drawBorder marks the image as a placeholder with a thin gray frame.
func drawBorder(img *image.RGBA) {
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		img.Set(x, b.Min.Y, placeholderGray)
		img.Set(x, b.Max.Y-1, placeholderGray)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		img.Set(b.Min.X, y, placeholderGray)
		img.Set(b.Max.X-1, y, placeholderGray)
	}
}
