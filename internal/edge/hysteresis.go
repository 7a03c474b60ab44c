package edge

// edgeValue marks a pixel promoted to a confirmed edge during tracking.
const edgeValue = 255

// TrackEdges performs double-threshold hysteresis on a thinned magnitude
// map and returns a strictly binary {0, 255} edge buffer. The input is
// not modified.
//
// A single raster scan classifies each pixel: at or above t.High it seeds
// a connected-component mark, below t.Low it is cleared immediately, and
// in between it is left for a propagation wave to reach. After the scan a
// final pass clears everything that was never promoted, including
// weak pixels no strong seed connected to.
func TrackEdges(thinned *Gray, t Thresholds) *Gray {
	out := thinned.Clone()

	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			v := out.At(x, y)
			// A zero pixel never seeds, even when a blank map collapses
			// the high threshold to zero.
			if v != 0 && v >= t.High && v != edgeValue {
				mark(out, x, y, t.Low)
			} else if v < t.Low {
				out.Set(x, y, 0)
			}
		}
	}

	// Clear everything propagation never reached.
	for i, v := range out.Pix {
		if v != edgeValue {
			out.Pix[i] = 0
		}
	}
	return out
}

// mark promotes (x, y) to an edge and flood-fills the promotion through
// every 8-connected chain of pixels at or above the low threshold.
//
// The traversal uses an explicit stack instead of recursion so arbitrarily
// large connected regions cannot exhaust the call stack. A pixel already
// at edgeValue is skipped on pop, which terminates cycles: each pixel is
// promoted at most once, bounding the work at the component size.
func mark(edge *Gray, x, y int, low uint8) {
	stack := make([][2]int, 0, 64)
	stack = append(stack, [2]int{x, y})

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		px, py := p[0], p[1]
		if edge.At(px, py) == edgeValue {
			continue
		}
		edge.Set(px, py, edgeValue)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := px+dx, py+dy
				if nx < 0 || nx >= edge.Width || ny < 0 || ny >= edge.Height {
					continue
				}
				if v := edge.At(nx, ny); v != edgeValue && v >= low {
					stack = append(stack, [2]int{nx, ny})
				}
			}
		}
	}
}
