package raster

import (
	"fmt"
	"image"

	"github.com/MeKo-Tech/swatchgen/internal/colorspace"
)

// Buffer is a mutable pixel buffer, row-major with the origin at the top
// left. Its length is always W*H*BytesPerPixel. A fresh buffer starts white
// and fully opaque.
type Buffer struct {
	W, H   int
	Format Format
	Pix    []uint8
}

// New allocates a buffer of the given dimensions, filled white.
func New(w, h int, format Format) *Buffer {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("raster: invalid buffer size %dx%d", w, h))
	}
	pix := make([]uint8, w*h*format.BytesPerPixel())
	for i := range pix {
		pix[i] = 0xff
	}
	return &Buffer{W: w, H: h, Format: format, Pix: pix}
}

// pixOffset returns the index of the first byte of the pixel at (x, y).
// Coordinates outside the buffer are a contract violation: an unchecked
// write would wrap into a neighboring row and corrupt it silently.
func (b *Buffer) pixOffset(x, y int) int {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		panic(fmt.Sprintf("raster: pixel (%d,%d) outside %dx%d buffer", x, y, b.W, b.H))
	}
	return (y*b.W + x) * b.Format.BytesPerPixel()
}

// Set writes a color to the pixel at (x, y).
func (b *Buffer) Set(x, y int, c colorspace.RGB) {
	i := b.pixOffset(x, y)
	b.Pix[i] = c.R
	b.Pix[i+1] = c.G
	b.Pix[i+2] = c.B
	if b.Format == FormatRGBA8 {
		b.Pix[i+3] = 0xff
	}
}

// At returns the color of the pixel at (x, y).
func (b *Buffer) At(x, y int) colorspace.RGB {
	i := b.pixOffset(x, y)
	return colorspace.RGB{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2]}
}

// Rect fills the inclusive pixel region x..x+w, y..y+h with a color. The
// region is clamped against the buffer bounds, so fills may butt against
// the edges without overshooting them.
func (b *Buffer) Rect(x, y, w, h int, c colorspace.RGB) {
	minX, maxX := x, x+w
	minY, maxY := y, y+h
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= b.W {
		maxX = b.W - 1
	}
	if maxY >= b.H {
		maxY = b.H - 1
	}

	for yy := minY; yy <= maxY; yy++ {
		for xx := minX; xx <= maxX; xx++ {
			b.Set(xx, yy, c)
		}
	}
}

// NRGBA returns the buffer as an image.NRGBA for encoding or compositing.
// RGBA8 buffers share their backing pixels; RGB8 buffers expand into a
// fresh allocation with opaque alpha.
func (b *Buffer) NRGBA() *image.NRGBA {
	rect := image.Rect(0, 0, b.W, b.H)
	if b.Format == FormatRGBA8 {
		return &image.NRGBA{Pix: b.Pix, Stride: 4 * b.W, Rect: rect}
	}

	img := image.NewNRGBA(rect)
	for i, j := 0, 0; i < len(b.Pix); i, j = i+3, j+4 {
		img.Pix[j] = b.Pix[i]
		img.Pix[j+1] = b.Pix[i+1]
		img.Pix[j+2] = b.Pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}
