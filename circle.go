package circles

import (
	"fmt"
	"math"
)

type Circle struct {
	Center Point
	Radius float64
}

// Circ returns the circle with the given centre and radius.
func Circ(center Point, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

// IsNaN reports whether the circle is unknown.
func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) Diameter() float64 {
	return 2 * c.Radius
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) Circumference() float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

// Distance returns the distance between the centres of c and o.
func (c Circle) Distance(o Circle) float64 {
	return c.Center.Distance(o.Center)
}

// Contains reports whether pt lies strictly inside the circle.
func (c Circle) Contains(pt Point) bool {
	return c.Winding(pt) != 0
}

func (c Circle) Winding(pt Point) int {
	if pt.Sub(c.Center).Hypot2() < c.Radius*c.Radius {
		return 1
	} else {
		return 0
	}
}

// IsPointOnCircle reports whether pt lies on the circle's boundary, within
// EpsilonDistance.
func (c Circle) IsPointOnCircle(pt Point) bool {
	return c.IsPointOnCircleTol(pt, EpsilonDistance)
}

// IsPointOnCircleTol is like [Circle.IsPointOnCircle] with an explicit tolerance.
func (c Circle) IsPointOnCircleTol(pt Point, eps float64) bool {
	return within(c.Center.Distance(pt), c.Radius, eps)
}

// PointAt returns the point on the boundary at the given angle.
func (c Circle) PointAt(angle Angle) Point {
	return c.Center.Move(c.Radius, angle)
}

func (c Circle) String() string {
	return fmt.Sprintf("centre %v, radius %g", c.Center, c.Radius)
}
