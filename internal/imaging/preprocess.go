package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// Denoise applies the Gaussian pre-blur the edge core expects upstream.
// It stands in for the pipeline's noise-removal stage: the extractor is
// specified over a noise-reduced input, and skipping the blur yields a
// noisier edge map rather than an error.
//
// sigma controls the blur radius; sigma <= 0 returns the input unchanged.
func Denoise(img image.Image, sigma float64) image.Image {
	if sigma <= 0 {
		return img
	}
	return imaging.Blur(img, sigma)
}

// Fit downscales an image so its longer side is at most maxDim pixels,
// preserving aspect ratio (Lanczos resampling). maxDim <= 0 disables the
// cap. Upscaling never happens: an image already within the cap is
// returned unchanged.
//
// The cap exists because edge tracking walks connected components over
// the full W*H grid; triangulation front-ends conventionally bound the
// pixel count before edge detection for the same reason.
func Fit(img image.Image, maxDim int) image.Image {
	if maxDim <= 0 {
		return img
	}
	bounds := img.Bounds()
	if bounds.Dx() <= maxDim && bounds.Dy() <= maxDim {
		return img
	}
	return imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
}
