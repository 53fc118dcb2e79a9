package circles

import (
	"log/slog"
	"math"
)

// Intersection describes where the boundaries of two circles meet.
type Intersection struct {
	// HasIntersectionPoints is set when the boundaries meet in one or two
	// points.
	HasIntersectionPoints bool
	// Same is set when both circles coincide; they then have no discrete
	// intersection points.
	Same bool
	// TouchAtSinglePoint is set when the circles are tangent; One and Two
	// are then the same point.
	TouchAtSinglePoint bool
	One                Maybe[Point]
	Two                Maybe[Point]
}

// CirclesIntersection intersects the circles of p using [DefaultTolerance].
func CirclesIntersection(p CirclePair) Intersection {
	return CirclesIntersectionTol(p, DefaultTolerance)
}

// CirclesIntersectionTol is like [CirclesIntersection] with an explicit
// tolerance.
//
// Circles whose centre distance lies outside [|r0-r1|, r0+r1] do not
// intersect. Inside that range the intersection is found by projecting
// along the centre line and offsetting perpendicular to it by h; when h
// does not exceed tol.Radians the circles are treated as touching.
func CirclesIntersectionTol(p CirclePair, tol Tolerance) Intersection {
	r0 := p.Zero.Radius
	r1 := p.One.Radius
	d := p.Distance

	if within(d, 0, tol.Distance) &&
		within(r0, r1, tol.Distance) &&
		p.Zero.Center.EqualTol(p.One.Center, tol.Distance) {
		Logger().Debug("circles: identical circles", slog.Any("pair", p))
		return Intersection{Same: true}
	}

	diff := math.Abs(r0 - r1)
	sum := r0 + r1
	inRange := (d >= diff || withinOrEqual(d, diff, tol.Distance)) &&
		(d <= sum || withinOrEqual(d, sum, tol.Distance))
	if !inRange || d == 0 {
		return Intersection{}
	}

	c0 := p.Zero.Center
	delta := p.One.Center.Sub(c0)
	a := (r0*r0 - r1*r1 + d*d) / (2 * d)
	var h float64
	if h2 := r0*r0 - a*a; h2 > 0 {
		h = math.Sqrt(h2)
	}

	if withinOrEqual(h, 0, tol.Radians) {
		pt := touchPoint(p, tol)
		Logger().Debug("circles: circles touch at a single point", slog.Any("pair", p), slog.Any("point", pt))
		return Intersection{
			HasIntersectionPoints: true,
			TouchAtSinglePoint:    true,
			One:                   Some(pt),
			Two:                   Some(pt),
		}
	}

	p2 := c0.Translate(delta.Mul(a / d))
	off := delta.Perp().Mul(h / d)
	return Intersection{
		HasIntersectionPoints: true,
		One:                   Some(p2.Translate(off.Mul(-1))),
		Two:                   Some(p2.Translate(off)),
	}
}

// touchPoint returns the single point where the circles of p meet. Circles
// a diameter of Zero apart on a line parallel to an axis are resolved along
// that axis; all others by travelling r0 from Zero's centre towards One's.
func touchPoint(p CirclePair, tol Tolerance) Point {
	c0 := p.Zero.Center
	r0 := p.Zero.Radius
	dx := p.One.Center.X - c0.X
	dy := p.One.Center.Y - c0.Y
	switch {
	case within(dy, 0, tol.Distance) && within(math.Abs(dx), 2*r0, tol.Distance):
		return Pt(c0.X+math.Copysign(r0, dx), c0.Y)
	case within(dx, 0, tol.Distance) && within(math.Abs(dy), 2*r0, tol.Distance):
		return Pt(c0.X, c0.Y+math.Copysign(r0, dy))
	default:
		return c0.Move(r0, angleToXAxis(c0, p.One.Center, tol.Radians))
	}
}
