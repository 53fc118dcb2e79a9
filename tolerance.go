package circles

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Process-wide tolerances. All comparisons made with [DefaultTolerance] use
// these values verbatim. Points compare per axis with EpsilonPointXY and
// degree values with EpsilonDegrees; neither is adjustable.
const (
	EpsilonDistance = 0.01
	EpsilonRadians  = 0.0001
	EpsilonPointXY  = 0.01
	EpsilonDegrees  = 0.01
)

// Tolerance bundles the thresholds below which floating-point differences
// are treated as zero.
type Tolerance struct {
	// Distance applies to lengths, radii and on-circle tests.
	Distance float64
	// Radians applies to angles and to the near-zero coordinate deltas that
	// decide whether a line is axis-parallel.
	Radians float64
}

// DefaultTolerance holds EpsilonDistance and EpsilonRadians.
var DefaultTolerance = Tolerance{
	Distance: EpsilonDistance,
	Radians:  EpsilonRadians,
}

// within reports whether |a-b| < eps.
func within(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// withinOrEqual reports whether |a-b| <= eps.
func withinOrEqual(a, b, eps float64) bool {
	return scalar.EqualWithinAbs(a, b, eps)
}
