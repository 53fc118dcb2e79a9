package circles

import "fmt"

// CirclePair is a canonically ordered pair of circles.
//
// Zero is the circle with the larger radius and One the other. When both
// radii are equal, Zero is the second circle passed to [NewCirclePair].
type CirclePair struct {
	Zero     Circle
	One      Circle
	Distance float64
	// NumberOfTangents is the number of common tangent lines, 0 through 4.
	// Identical circles count as 1 but have no discrete touch point, so
	// [TangentLines] yields no line for them.
	NumberOfTangents int
}

// NewCirclePair orders a and b by radius and classifies their tangents
// using [DefaultTolerance].
func NewCirclePair(a, b Circle) CirclePair {
	return NewCirclePairTol(a, b, DefaultTolerance)
}

// NewCirclePairTol is like [NewCirclePair] with an explicit tolerance.
func NewCirclePairTol(a, b Circle, tol Tolerance) CirclePair {
	zero, one := b, a
	if a.Radius > b.Radius {
		zero, one = a, b
	}
	d := zero.Distance(one)
	return CirclePair{
		Zero:             zero,
		One:              one,
		Distance:         d,
		NumberOfTangents: numberOfTangents(d, zero.Radius, one.Radius, tol.Distance),
	}
}

// numberOfTangents classifies the centre distance d against the radius
// difference and sum. r0 must be >= r1.
func numberOfTangents(d, r0, r1, eps float64) int {
	diff := r0 - r1
	sum := r0 + r1
	switch {
	case within(d, diff, eps):
		// internally tangent
		return 1
	case d < diff:
		// one circle inside the other
		return 0
	case within(d, sum, eps):
		// externally tangent
		return 3
	case d < sum:
		// intersecting
		return 2
	default:
		return 4
	}
}

func (p CirclePair) String() string {
	return fmt.Sprintf("zero: %v; one: %v; tangents: %d", p.Zero, p.One, p.NumberOfTangents)
}
