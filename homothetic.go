package circles

import "math"

// UnknownPoint is the point returned where a centre of similitude does not
// exist.
var UnknownPoint = Pt(math.NaN(), math.NaN())

// OuterIntersectionPoint returns the external centre of similitude of the
// pair, the point where both outer tangent lines meet.
//
// For equal radii the outer tangents are parallel and the result has
// infinite (or NaN) coordinates; callers check [Point.IsInf] and
// [Point.IsNaN] rather than treating it as an error.
func OuterIntersectionPoint(p CirclePair) Point {
	a, b := p.Zero.Center.Splat()
	c, d := p.One.Center.Splat()
	r0 := p.Zero.Radius
	r1 := p.One.Radius
	return Pt(
		(c*r0-a*r1)/(r0-r1),
		(d*r0-b*r1)/(r0-r1),
	)
}

// InnerIntersectionPoint returns the internal centre of similitude of the
// pair, the point dividing the centre line in the ratio of the radii. Inner
// tangent lines, where they exist, pass through it.
func InnerIntersectionPoint(p CirclePair) Point {
	a, b := p.Zero.Center.Splat()
	c, d := p.One.Center.Splat()
	r0 := p.Zero.Radius
	r1 := p.One.Radius
	if r0+r1 == 0 {
		return UnknownPoint
	}
	return Pt(
		(c*r0+a*r1)/(r0+r1),
		(d*r0+b*r1)/(r0+r1),
	)
}
