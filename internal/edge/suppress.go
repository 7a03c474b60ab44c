package edge

// Suppress thins a gradient magnitude field by non-maximum suppression.
//
// For each interior pixel the continuous direction is discretized and the
// pixel's magnitude is compared against its two neighbors along that
// orientation; the pixel survives only if it is >= both, otherwise it is
// zeroed. Reads come from grad and writes go to a fresh buffer, so the
// suppression decision at one pixel never observes another pixel's
// decision and the pass is ordering-independent. Border pixels are left
// at zero.
//
// A direction that fails to classify (defensive branch, unreachable for
// atan2 output) leaves the pixel unsuppressed and increments the returned
// fault count; the scan continues with the next pixel.
func Suppress(grad *Gray, dir *Float) (*Gray, int) {
	out := NewGray(grad.Width, grad.Height)
	faults := 0

	for y := 1; y < grad.Height-1; y++ {
		for x := 1; x < grad.Width-1; x++ {
			mag := grad.At(x, y)

			d, err := Discretize(dir.At(x, y))
			if err != nil {
				// Safe default: keep the pixel rather than invent a
				// suppression decision for an unclassifiable angle.
				out.Set(x, y, mag)
				faults++
				continue
			}

			var mag1, mag2 uint8
			switch d {
			case EastWest:
				mag1 = grad.At(x-1, y)
				mag2 = grad.At(x+1, y)
			case NortheastSouthwest:
				mag1 = grad.At(x-1, y-1)
				mag2 = grad.At(x+1, y+1)
			case NorthSouth:
				mag1 = grad.At(x, y-1)
				mag2 = grad.At(x, y+1)
			case NorthwestSoutheast:
				mag1 = grad.At(x+1, y-1)
				mag2 = grad.At(x-1, y+1)
			}

			if mag >= mag1 && mag >= mag2 {
				out.Set(x, y, mag)
			}
		}
	}
	return out, faults
}
