package edge

import "image"

// Gray is a single-channel 8-bit raster buffer with row-major storage.
//
// It backs the grayscale, gradient-magnitude, and edge stages. Unlike
// image.Gray it has no sub-image offset or stride padding, which keeps the
// per-pixel convolution and flood-fill indexing trivial.
type Gray struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewGray allocates a zero-filled buffer of the given dimensions.
func NewGray(width, height int) *Gray {
	return &Gray{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// At returns the value at (x, y). Coordinates must be in bounds.
func (g *Gray) At(x, y int) uint8 {
	return g.Pix[y*g.Width+x]
}

// Set stores v at (x, y). Coordinates must be in bounds.
func (g *Gray) Set(x, y int, v uint8) {
	g.Pix[y*g.Width+x] = v
}

// Clone returns an independent copy of the buffer.
func (g *Gray) Clone() *Gray {
	out := NewGray(g.Width, g.Height)
	copy(out.Pix, g.Pix)
	return out
}

// ToImage converts the buffer to a standard *image.Gray anchored at (0, 0),
// suitable for PNG encoding and for handing to the triangulation stage.
func (g *Gray) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+g.Width], g.Pix[y*g.Width:(y+1)*g.Width])
	}
	return img
}

// Float is a single-channel float64 raster buffer, row-major.
// It holds the continuous gradient direction field in degrees.
type Float struct {
	Width  int
	Height int
	Pix    []float64
}

// NewFloat allocates a zero-filled float buffer of the given dimensions.
func NewFloat(width, height int) *Float {
	return &Float{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height),
	}
}

// At returns the value at (x, y). Coordinates must be in bounds.
func (f *Float) At(x, y int) float64 {
	return f.Pix[y*f.Width+x]
}

// Set stores v at (x, y). Coordinates must be in bounds.
func (f *Float) Set(x, y int, v float64) {
	f.Pix[y*f.Width+x] = v
}

// trunc8 converts a non-negative real value to 8 bits by integer
// truncation. Values above 255 wrap modulo 256 instead of saturating,
// matching the unsigned-char stores of the original detector. Do not
// replace this with a clamp: the adaptive thresholds are computed from
// the wrapped values and clamping changes which pixels survive tracking.
func trunc8(v float64) uint8 {
	return uint8(int(v))
}
