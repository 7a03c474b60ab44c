package edge

import (
	"errors"
	"fmt"
	"image"
)

// Mode selects the gradient strategy for Extract.
type Mode int

const (
	// ModeGrayscale reduces the image to luminance before estimating the
	// gradient. This is the implemented default path.
	ModeGrayscale Mode = iota

	// ModeColor would estimate per-channel gradients and fuse them.
	// Selecting it returns ErrColorGradientUnimplemented.
	ModeColor
)

// ErrColorGradientUnimplemented is returned when ModeColor is selected.
// The color-gradient fusion path is a declared strategy without an
// implementation; no partial result is produced for it.
var ErrColorGradientUnimplemented = errors.New("edge: color gradient path not implemented")

// Result describes one completed extraction.
type Result struct {
	// Width and Height of the edge image in pixels (same as input).
	Width  int `json:"width"`
	Height int `json:"height"`

	// LowThreshold and HighThreshold are the adaptive pair the tracker
	// used, mean+1σ and mean+2σ of the suppressed map.
	LowThreshold  uint8 `json:"low_threshold"`
	HighThreshold uint8 `json:"high_threshold"`

	// EdgePixels is the number of 255-valued pixels in Edges.
	EdgePixels int `json:"edge_pixels"`

	// DirectionFaults counts pixels whose gradient angle failed to
	// classify during suppression. Expected to be zero; a nonzero count
	// indicates those pixels were kept unsuppressed as a safe default.
	DirectionFaults int `json:"direction_faults"`

	// Edges is the binary edge image: 255 marks an edge pixel to be
	// sampled by the triangulation stage, every other pixel is 0.
	Edges *image.Gray `json:"-"`
}

// Extract produces a binary edge map from a noise-reduced image.
//
// The input is expected to have had noise removed upstream; running on an
// unblurred image works but yields a noisier map. The stages run in fixed
// order, each on a fresh buffer: grayscale reduction, Sobel gradient
// estimation over interior pixels, non-maximum suppression along the
// discretized gradient direction, adaptive double thresholds from the
// suppressed map's statistics, and hysteresis tracking. No state survives
// the call.
//
// ModeColor returns ErrColorGradientUnimplemented and a nil Result. An
// unknown mode is rejected the same way a caller-side bug should be, with
// a descriptive error.
func Extract(img image.Image, mode Mode) (*Result, error) {
	switch mode {
	case ModeGrayscale:
		// implemented below
	case ModeColor:
		return nil, ErrColorGradientUnimplemented
	default:
		return nil, fmt.Errorf("edge: unknown gradient mode %d", int(mode))
	}

	gray := Grayscale(img)
	mag, dir := NewGradientEstimator().Gradient(gray)
	thinned, faults := Suppress(mag, dir)
	thresholds := AdaptiveThresholds(thinned)
	edges := TrackEdges(thinned, thresholds)

	count := 0
	for _, v := range edges.Pix {
		if v == edgeValue {
			count++
		}
	}

	return &Result{
		Width:           edges.Width,
		Height:          edges.Height,
		LowThreshold:    thresholds.Low,
		HighThreshold:   thresholds.High,
		EdgePixels:      count,
		DirectionFaults: faults,
		Edges:           edges.ToImage(),
	}, nil
}
