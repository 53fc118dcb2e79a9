package circles

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate. A point with NaN coordinates is unknown; use
// [Maybe] to pass points that may be absent.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// RelativeTo returns pt expressed in a coordinate system whose origin is
// origin.
func (pt Point) RelativeTo(origin Point) Point {
	return Point(pt.Sub(origin))
}

// Move returns the point reached by travelling distance from pt in the
// direction of angle, measured counterclockwise from the positive x axis.
func (pt Point) Move(distance float64, angle Angle) Point {
	return pt.Translate(VecFromAngle(angle.Radians()).Mul(distance))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// Equal reports whether both coordinates differ by less than EpsilonPointXY.
func (pt Point) Equal(o Point) bool {
	return pt.EqualTol(o, EpsilonPointXY)
}

// EqualTol is like [Point.Equal] with an explicit per-axis tolerance.
func (pt Point) EqualTol(o Point, eps float64) bool {
	return within(pt.X, o.X, eps) && within(pt.Y, o.Y, eps)
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// AngleBetween returns the counterclockwise angle at centre from the ray
// towards a to the ray towards b.
func AngleBetween(a, centre, b Point) Angle {
	return FromRadians(b.Sub(centre).Angle() - a.Sub(centre).Angle())
}
