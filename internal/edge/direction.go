package edge

import "fmt"

// Direction is one of the four canonical edge orientations a continuous
// gradient angle discretizes to. The label names the axis the gradient
// points along, which is also the axis the suppressor compares across.
type Direction int

const (
	// EastWest covers angles within 22.5 degrees of the horizontal axis.
	EastWest Direction = iota
	// NortheastSouthwest covers angles within 22.5 degrees of +45.
	NortheastSouthwest
	// NorthSouth covers angles within 22.5 degrees of the vertical axis.
	NorthSouth
	// NorthwestSoutheast covers angles within 22.5 degrees of +135.
	NorthwestSoutheast
)

// String returns the orientation label for diagnostics.
func (d Direction) String() string {
	switch d {
	case EastWest:
		return "east-west"
	case NortheastSouthwest:
		return "northeast-southwest"
	case NorthSouth:
		return "north-south"
	case NorthwestSoutheast:
		return "northwest-southeast"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ClassificationError reports an angle that fell outside every orientation
// sector after folding. Unreachable for angles in (-180, 180]; it exists as
// a defensive check and is pixel-local, never aborting a scan.
type ClassificationError struct {
	Angle float64
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("edge: angle %.2f outside direction sectors", e.Angle)
}

// Discretize maps a continuous gradient angle in degrees to one of the
// four Direction labels.
//
// Negative angles are first folded into [0, 180) by adding 180, exploiting
// that an edge orientation is the same either way along the gradient. The
// folded half-circle is then partitioned into four 45-degree sectors
// centered on 0/180, 45, 90, and 135, half-open at the low boundary.
func Discretize(angle float64) (Direction, error) {
	if angle < 0 {
		angle += 180
	}

	switch {
	case (angle >= -22.5 && angle < 22.5) || angle >= 157.5 || angle < -157.5:
		return EastWest, nil
	case (angle >= 22.5 && angle < 67.5) || (angle >= -157.5 && angle < -112.5):
		return NortheastSouthwest, nil
	case (angle >= 67.5 && angle < 112.5) || (angle >= -112.5 && angle < -67.5):
		return NorthSouth, nil
	case (angle >= 112.5 && angle < 157.5) || (angle >= -67.5 && angle < -22.5):
		return NorthwestSoutheast, nil
	}
	return 0, &ClassificationError{Angle: angle}
}
