package edge

import "testing"

func TestAdaptiveThresholdsAllZero(t *testing.T) {
	got := AdaptiveThresholds(NewGray(8, 8))
	if got.Low != 0 || got.High != 0 {
		t.Errorf("all-zero map: got %+v, want {0 0}", got)
	}
}

func TestAdaptiveThresholdsUniform(t *testing.T) {
	// Zero deviation collapses both thresholds to the mean.
	g := NewGray(6, 6)
	for i := range g.Pix {
		g.Pix[i] = 100
	}

	got := AdaptiveThresholds(g)
	if got.Low != 100 || got.High != 100 {
		t.Errorf("uniform map: got %+v, want {100 100}", got)
	}
}

func TestAdaptiveThresholdsKnownValues(t *testing.T) {
	// 2x2 map [0 0 0 100]: mean 25, population variance
	// (3*625 + 5625)/4 = 1875, stddev ~43.301.
	g := NewGray(2, 2)
	g.Set(1, 1, 100)

	got := AdaptiveThresholds(g)
	if got.Low != 68 { // trunc(25 + 43.301)
		t.Errorf("Low: got %d, want 68", got.Low)
	}
	if got.High != 111 { // trunc(25 + 86.602)
		t.Errorf("High: got %d, want 111", got.High)
	}
}

func TestAdaptiveThresholdsWrap(t *testing.T) {
	// 1x2 map [0 255]: mean 127.5, stddev 127.5. The high threshold
	// 382.5 wraps to 126 under 8-bit truncation; this mirrors the
	// magnitude stores and is load-bearing for high-contrast images.
	g := NewGray(2, 1)
	g.Set(1, 0, 255)

	got := AdaptiveThresholds(g)
	if got.Low != 255 {
		t.Errorf("Low: got %d, want 255", got.Low)
	}
	if got.High != 126 {
		t.Errorf("High: got %d, want 126 (382 mod 256)", got.High)
	}
}

func TestAdaptiveThresholdsBorderZerosCount(t *testing.T) {
	// The statistic runs over the full pixel count, border zeros
	// included: a single bright pixel in a big map barely moves the mean.
	g := NewGray(10, 10)
	g.Set(5, 5, 200)

	got := AdaptiveThresholds(g)
	// mean 2, stddev sqrt((99*4 + 198²)/100) ~ 19.9
	if got.Low != 21 {
		t.Errorf("Low: got %d, want 21", got.Low)
	}
	if got.High != 41 {
		t.Errorf("High: got %d, want 41", got.High)
	}
}

func TestAdaptiveThresholdsEmpty(t *testing.T) {
	got := AdaptiveThresholds(NewGray(0, 0))
	if got.Low != 0 || got.High != 0 {
		t.Errorf("empty map: got %+v, want {0 0}", got)
	}
}
