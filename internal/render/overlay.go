// Package render produces diagnostic visualizations of the edge pipeline:
// a false-color view of the gradient orientation field and an overlay that
// paints detected edges over the source image. Neither output feeds the
// pipeline itself.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/meshpipe/edgemap/internal/edge"
)

// directionHue assigns each discretized orientation a quadrant of the
// color wheel.
var directionHue = map[edge.Direction]float64{
	edge.EastWest:           0,   // red
	edge.NortheastSouthwest: 90,  // green
	edge.NorthSouth:         180, // cyan
	edge.NorthwestSoutheast: 270, // violet
}

// DirectionMap renders the discretized gradient orientation of every
// interior pixel as hue, with the gradient magnitude as brightness.
// Pixels with zero magnitude, border pixels, and the odd unclassifiable
// angle stay black.
//
// This recomputes the gradient from the image; it is a diagnostic tool,
// not a tap into a previous extraction.
func DirectionMap(img image.Image) *image.NRGBA {
	gray := edge.Grayscale(img)
	mag, dir := edge.NewGradientEstimator().Gradient(gray)

	out := image.NewNRGBA(image.Rect(0, 0, gray.Width, gray.Height))
	for y := 1; y < gray.Height-1; y++ {
		for x := 1; x < gray.Width-1; x++ {
			m := mag.At(x, y)
			if m == 0 {
				continue
			}
			d, err := edge.Discretize(dir.At(x, y))
			if err != nil {
				continue
			}
			c := colorful.Hsv(directionHue[d], 1, float64(m)/255)
			r, g, b := c.RGB255()
			out.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return out
}

// Overlay paints the 255-valued pixels of a binary edge map over the
// source image in the given "#RRGGBB" highlight color. The edge map must
// match the source dimensions.
func Overlay(src image.Image, edges *image.Gray, hexColor string) (*image.NRGBA, error) {
	c, err := colorful.Hex(hexColor)
	if err != nil {
		return nil, fmt.Errorf("render: invalid highlight color %q: %w", hexColor, err)
	}

	bounds := src.Bounds()
	if bounds.Dx() != edges.Bounds().Dx() || bounds.Dy() != edges.Bounds().Dy() {
		return nil, fmt.Errorf("render: edge map %dx%d does not match source %dx%d",
			edges.Bounds().Dx(), edges.Bounds().Dy(), bounds.Dx(), bounds.Dy())
	}

	out := imaging.Clone(src)
	r, g, b := c.RGB255()
	highlight := color.NRGBA{R: r, G: g, B: b, A: 255}

	for y := 0; y < out.Bounds().Dy(); y++ {
		for x := 0; x < out.Bounds().Dx(); x++ {
			if edges.GrayAt(edges.Bounds().Min.X+x, edges.Bounds().Min.Y+y).Y == 255 {
				out.SetNRGBA(x, y, highlight)
			}
		}
	}
	return out, nil
}
