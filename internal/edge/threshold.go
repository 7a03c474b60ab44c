package edge

import "math"

// Thresholds is the adaptive pair driving hysteresis tracking.
// Low <= High holds whenever the standard deviation is non-negative,
// before 8-bit truncation.
type Thresholds struct {
	Low  uint8 `json:"low"`
	High uint8 `json:"high"`
}

// AdaptiveThresholds derives the hysteresis threshold pair from the
// statistics of a thinned magnitude map:
//
//	low  = mean + 1*stddev
//	high = mean + 2*stddev
//
// The mean is the arithmetic mean over all Width*Height pixels, border
// zeros included. The deviation is the population standard deviation
// (divide by N, no Bessel correction). Both thresholds are stored with
// the same truncating 8-bit conversion the magnitudes use, so a pair
// above 255 wraps rather than saturating.
//
// A uniform map degenerates to stddev 0 and both thresholds collapse to
// the mean, which is a valid operating point, not an error.
func AdaptiveThresholds(edge *Gray) Thresholds {
	n := len(edge.Pix)
	if n == 0 {
		return Thresholds{}
	}

	var sum uint64
	for _, v := range edge.Pix {
		sum += uint64(v)
	}
	mean := float64(sum) / float64(n)

	var sumSq float64
	for _, v := range edge.Pix {
		d := float64(v) - mean
		sumSq += d * d
	}
	stdDev := math.Sqrt(sumSq / float64(n))

	return Thresholds{
		Low:  trunc8(mean + stdDev),
		High: trunc8(mean + 2*stdDev),
	}
}
