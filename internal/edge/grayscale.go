package edge

import "image"

// Grayscale collapses an image to a single luminance channel using the
// ITU-R BT.601 weights (0.299*R + 0.587*G + 0.114*B), truncated to 8 bits.
//
// Every pixel is independent, so the reduction has no ordering dependency.
// The result is anchored at (0, 0) regardless of the source image's bounds.
func Grayscale(img image.Image) *Gray {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	out := NewGray(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns 16-bit components; shift down to 8-bit first.
			lum := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			out.Set(x, y, uint8(lum))
		}
	}
	return out
}
