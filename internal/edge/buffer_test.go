package edge

import "testing"

func TestGrayAtSet(t *testing.T) {
	g := NewGray(4, 3)

	if g.Width != 4 || g.Height != 3 {
		t.Fatalf("dimensions: got %dx%d, want 4x3", g.Width, g.Height)
	}
	if len(g.Pix) != 12 {
		t.Fatalf("Pix length: got %d, want 12", len(g.Pix))
	}

	g.Set(2, 1, 200)
	if got := g.At(2, 1); got != 200 {
		t.Errorf("At(2,1): got %d, want 200", got)
	}
	if got := g.At(1, 2); got != 0 {
		t.Errorf("At(1,2): got %d, want 0 (untouched)", got)
	}
}

func TestGrayClone(t *testing.T) {
	g := NewGray(3, 3)
	g.Set(1, 1, 42)

	c := g.Clone()
	c.Set(1, 1, 99)

	if got := g.At(1, 1); got != 42 {
		t.Errorf("original mutated through clone: got %d, want 42", got)
	}
	if got := c.At(1, 1); got != 99 {
		t.Errorf("clone At(1,1): got %d, want 99", got)
	}
}

func TestGrayToImage(t *testing.T) {
	g := NewGray(3, 2)
	g.Set(0, 0, 10)
	g.Set(2, 1, 250)

	img := g.ToImage()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds: got %v, want 3x2", img.Bounds())
	}
	if got := img.GrayAt(0, 0).Y; got != 10 {
		t.Errorf("GrayAt(0,0): got %d, want 10", got)
	}
	if got := img.GrayAt(2, 1).Y; got != 250 {
		t.Errorf("GrayAt(2,1): got %d, want 250", got)
	}
	if got := img.GrayAt(1, 0).Y; got != 0 {
		t.Errorf("GrayAt(1,0): got %d, want 0", got)
	}
}

func TestTrunc8(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{0.9, 0},
		{100.7, 100},
		{255, 255},
		{255.4, 255},
		{256, 0},     // wraps, no saturation
		{1020, 252},  // 4*255 Sobel response on a full-contrast step
		{275.69, 19}, // a threshold pair can wrap too
	}

	for _, tt := range tests {
		if got := trunc8(tt.in); got != tt.want {
			t.Errorf("trunc8(%v): got %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFloatAtSet(t *testing.T) {
	f := NewFloat(3, 3)
	f.Set(2, 2, -135.5)
	if got := f.At(2, 2); got != -135.5 {
		t.Errorf("At(2,2): got %v, want -135.5", got)
	}
	if got := f.At(0, 0); got != 0 {
		t.Errorf("At(0,0): got %v, want 0", got)
	}
}
