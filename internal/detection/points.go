// Package detection converts a binary edge map into the point set the
// downstream triangulation stage consumes. Every 255-valued pixel is a
// candidate triangulation vertex; sampling bounds how many survive.
package detection

import (
	"image"
	"math/rand"
)

// Point is a pixel coordinate selected as a triangulation input vertex.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// EdgePoints collects the coordinates of every edge pixel (value 255) in
// a binary edge map, subsampled uniformly at random down to maxPoints.
// maxPoints <= 0 disables the cap and returns every edge pixel in raster
// order.
//
// The seed makes a capped sample reproducible; runs that should differ
// can pass a clock-derived seed. The input map is not modified.
func EdgePoints(edges *image.Gray, maxPoints int, seed int64) []Point {
	bounds := edges.Bounds()

	var points []Point
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if edges.GrayAt(x, y).Y == 255 {
				points = append(points, Point{X: x - bounds.Min.X, Y: y - bounds.Min.Y})
			}
		}
	}

	if maxPoints <= 0 || len(points) <= maxPoints {
		return points
	}

	// Draw without replacement by swapping each pick out of the tail.
	rng := rand.New(rand.NewSource(seed))
	sampled := make([]Point, 0, maxPoints)
	n := len(points)
	for len(sampled) < maxPoints {
		j := rng.Intn(n)
		sampled = append(sampled, points[j])
		n--
		points[j] = points[n]
	}
	return sampled
}
