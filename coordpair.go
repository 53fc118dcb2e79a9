package circles

import (
	"log/slog"
	"math"
)

// ResolveCoordinatePairs pairs the x candidates xs with the y candidates ys
// so that both resulting points lie on c, within EpsilonDistance.
//
// The pairing (xs[0], ys[0]), (xs[1], ys[1]) is tried first; if its first
// point is off the circle the cross pairing (xs[0], ys[1]), (xs[1], ys[0])
// is used instead. If the chosen pairing still has a point off the circle,
// a *[PairingError] is returned.
//
// An unknown circle or a NaN candidate yields two unknown points and no
// error.
func ResolveCoordinatePairs(c Circle, xs, ys [2]float64) (Maybe[Point], Maybe[Point], error) {
	return ResolveCoordinatePairsTol(c, xs, ys, EpsilonDistance)
}

// ResolveCoordinatePairsTol is like [ResolveCoordinatePairs] with an explicit
// on-circle tolerance.
func ResolveCoordinatePairsTol(c Circle, xs, ys [2]float64, eps float64) (Maybe[Point], Maybe[Point], error) {
	if c.IsNaN() || anyNaN(xs[0], xs[1], ys[0], ys[1]) {
		return None[Point](), None[Point](), nil
	}

	one := Pt(xs[0], ys[0])
	two := Pt(xs[1], ys[1])
	if !c.IsPointOnCircleTol(one, eps) {
		one = Pt(xs[0], ys[1])
		two = Pt(xs[1], ys[0])
	}
	for _, pt := range [2]Point{one, two} {
		if !c.IsPointOnCircleTol(pt, eps) {
			Logger().Warn("circles: unpaired tangent candidate",
				slog.Any("point", pt), slog.Any("center", c.Center), slog.Float64("radius", c.Radius))
			return None[Point](), None[Point](), &PairingError{Point: pt, Center: c.Center, Radius: c.Radius}
		}
	}
	return Some(one), Some(two), nil
}

func anyNaN(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// tangentCandidates returns the x and y coordinates of the two points on c
// whose tangents pass through the external point p. The k-th x belongs to
// the k-th y.
func tangentCandidates(c Circle, p Point) (xs, ys [2]float64) {
	a, b := c.Center.Splat()
	r := c.Radius
	dx := p.X - a
	dy := p.Y - b
	d2 := dx*dx + dy*dy
	sq := math.Sqrt(d2 - r*r)
	r2 := r * r

	xs[0] = (r2*dx+r*dy*sq)/d2 + a
	xs[1] = (r2*dx-r*dy*sq)/d2 + a
	ys[0] = (r2*dy-r*dx*sq)/d2 + b
	ys[1] = (r2*dy+r*dx*sq)/d2 + b
	return xs, ys
}
