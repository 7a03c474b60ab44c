package edge

import "math"

// Kernel is a 3x3 convolution weight table.
type Kernel [3][3]int

// Sobel derivative kernel pair. The horizontal kernel responds to
// left-to-right intensity change, the vertical one to top-to-bottom.
var (
	sobelX = Kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = Kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// Scharr kernel pair, a rotationally more accurate alternative to Sobel.
// Kept for a future alternate detector; not used on the default path.
var (
	scharrX = Kernel{
		{3, 0, -3},
		{10, 0, -10},
		{3, 0, -3},
	}
	scharrY = Kernel{
		{3, 10, 3},
		{0, 0, 0},
		{-3, -10, -3},
	}
)

// GradientEstimator computes per-pixel gradient magnitude and direction
// from a grayscale buffer using a fixed derivative kernel pair.
//
// The kernels are configuration owned by the estimator rather than package
// state, so estimators with different kernels can coexist and be tested
// independently.
type GradientEstimator struct {
	kx Kernel
	ky Kernel
}

// NewGradientEstimator returns an estimator using the standard Sobel pair.
func NewGradientEstimator() *GradientEstimator {
	return &GradientEstimator{kx: sobelX, ky: sobelY}
}

// NewScharrEstimator returns an estimator using the Scharr pair.
// Present as a documented alternative; Extract does not use it.
func NewScharrEstimator() *GradientEstimator {
	return &GradientEstimator{kx: scharrX, ky: scharrY}
}

// Sample computes the gradient at a single interior pixel.
//
// The caller must guarantee 1 <= x <= Width-2 and 1 <= y <= Height-2; the
// 3x3 window is read unchecked. The magnitude sqrt(gx²+gy²) is truncated
// to 8 bits (wrapping above 255, see trunc8). The direction is the atan2
// angle in degrees, range (-180, 180], not normalized further.
func (e *GradientEstimator) Sample(g *Gray, x, y int) (uint8, float64) {
	var gx, gy int
	for ky := -1; ky <= 1; ky++ {
		for kx := -1; kx <= 1; kx++ {
			v := int(g.At(x+kx, y+ky))
			gx += e.kx[ky+1][kx+1] * v
			gy += e.ky[ky+1][kx+1] * v
		}
	}

	mag := math.Sqrt(float64(gx*gx + gy*gy))
	dir := math.Atan2(float64(gy), float64(gx)) * 180 / math.Pi
	return trunc8(mag), dir
}

// Gradient runs Sample over every interior pixel of g, returning the
// magnitude and direction fields. Border pixels are skipped and remain at
// zero in both outputs.
func (e *GradientEstimator) Gradient(g *Gray) (*Gray, *Float) {
	mag := NewGray(g.Width, g.Height)
	dir := NewFloat(g.Width, g.Height)

	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			m, d := e.Sample(g, x, y)
			mag.Set(x, y, m)
			dir.Set(x, y, d)
		}
	}
	return mag, dir
}
