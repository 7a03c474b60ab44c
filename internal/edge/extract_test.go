package edge

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestExtractUniformImage(t *testing.T) {
	// No intensity variation, no gradient, no edges.
	img := uniformImage(5, 5, color.RGBA{100, 100, 100, 255})

	res, err := Extract(img, ModeGrayscale)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if res.Width != 5 || res.Height != 5 {
		t.Errorf("dimensions: got %dx%d, want 5x5", res.Width, res.Height)
	}
	if res.EdgePixels != 0 {
		t.Errorf("EdgePixels: got %d, want 0", res.EdgePixels)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if got := res.Edges.GrayAt(x, y).Y; got != 0 {
				t.Errorf("pixel (%d,%d): got %d, want 0", x, y, got)
			}
		}
	}
}

func TestExtractVerticalStepEdge(t *testing.T) {
	// Left columns black, columns 2..4 white. The thin tracked line lands
	// on the two interior columns straddling the step; everything else in
	// the interior rows is zero and borders stay zero.
	img := image.NewRGBA(image.Rect(0, 0, 5, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if x < 2 {
				img.Set(x, y, color.Black)
			} else {
				img.Set(x, y, color.White)
			}
		}
	}

	res, err := Extract(img, ModeGrayscale)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			got := res.Edges.GrayAt(x, y).Y
			wantEdge := (x == 1 || x == 2) && y >= 1 && y <= 3
			if wantEdge && got != 255 {
				t.Errorf("pixel (%d,%d): got %d, want 255 (step line)", x, y, got)
			}
			if !wantEdge && got != 0 {
				t.Errorf("pixel (%d,%d): got %d, want 0", x, y, got)
			}
		}
	}
	if res.EdgePixels != 6 {
		t.Errorf("EdgePixels: got %d, want 6", res.EdgePixels)
	}
	if res.DirectionFaults != 0 {
		t.Errorf("DirectionFaults: got %d, want 0", res.DirectionFaults)
	}
}

func TestExtractBinaryAndBorderInvariants(t *testing.T) {
	// A busy input: every output pixel is 0 or 255 and every border
	// pixel is 0.
	img := image.NewRGBA(image.Rect(0, 0, 20, 14))
	for y := 0; y < 14; y++ {
		for x := 0; x < 20; x++ {
			v := uint8((x*x + y*31) % 256)
			img.Set(x, y, color.RGBA{v, v / 2, 255 - v, 255})
		}
	}

	res, err := Extract(img, ModeGrayscale)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	count := 0
	for y := 0; y < 14; y++ {
		for x := 0; x < 20; x++ {
			got := res.Edges.GrayAt(x, y).Y
			if got != 0 && got != 255 {
				t.Fatalf("pixel (%d,%d): got %d, want 0 or 255", x, y, got)
			}
			if got == 255 {
				count++
			}
			onBorder := x == 0 || x == 19 || y == 0 || y == 13
			if onBorder && got != 0 {
				t.Errorf("border pixel (%d,%d): got %d, want 0", x, y, got)
			}
		}
	}
	if count != res.EdgePixels {
		t.Errorf("EdgePixels: got %d, counted %d", res.EdgePixels, count)
	}
}

func TestExtractColorModeUnimplemented(t *testing.T) {
	img := uniformImage(5, 5, color.RGBA{10, 20, 30, 255})

	res, err := Extract(img, ModeColor)
	if res != nil {
		t.Error("color mode must not fabricate a result")
	}
	if !errors.Is(err, ErrColorGradientUnimplemented) {
		t.Errorf("error: got %v, want ErrColorGradientUnimplemented", err)
	}
}

func TestExtractUnknownMode(t *testing.T) {
	img := uniformImage(5, 5, color.RGBA{10, 20, 30, 255})

	res, err := Extract(img, Mode(7))
	if res != nil || err == nil {
		t.Errorf("unknown mode: got (%v, %v), want (nil, error)", res, err)
	}
	if errors.Is(err, ErrColorGradientUnimplemented) {
		t.Error("unknown mode must not report the color path sentinel")
	}
}
