package circles

import (
	"cmp"
	"fmt"
	"math"
)

// Direction records which way a line was traversed relative to how it was
// first constructed.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Line represents a line segment from P0 to P1.
//
// Lines are values; ID is an ordering key and carries no identity.
type Line struct {
	ID        int
	P0        Point
	P1        Point
	Direction Direction

	angle Angle
}

// NewLine returns the line from p0 to p1 and computes its angle to the x axis.
func NewLine(id int, p0, p1 Point) Line {
	return NewLineTol(id, p0, p1, EpsilonRadians)
}

// NewLineTol is like [NewLine] but treats coordinate deltas smaller than eps
// as zero when computing the angle.
func NewLineTol(id int, p0, p1 Point, eps float64) Line {
	return Line{
		ID:    id,
		P0:    p0,
		P1:    p1,
		angle: angleToXAxis(p0, p1, eps),
	}
}

// angleToXAxis returns the direction of p1 as seen from p0. Deltas smaller
// than eps are treated as zero so that axis-parallel lines get exactly 0°,
// 90°, 180° or 270°.
func angleToXAxis(p0, p1 Point, eps float64) Angle {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	flatX := math.Abs(dx) < eps
	flatY := math.Abs(dy) < eps
	switch {
	case flatX && flatY:
		return ForZeroDegrees
	case flatY && dx > 0:
		return ForZeroDegrees
	case flatY:
		return For180Degrees
	case flatX && dy > 0:
		return For90Degrees
	case flatX:
		return For270Degrees
	default:
		return FromRadiansTol(math.Atan2(dy, dx), eps)
	}
}

// AngleToXAxis returns the angle of the direction from P0 to P1, measured
// counterclockwise from the positive x axis.
func (l Line) AngleToXAxis() Angle { return l.angle }

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

// Eval returns the point at parameter t, with t=0 at P0 and t=1 at P1.
func (l Line) Eval(t float64) Point {
	return l.P0.Translate(l.P1.Sub(l.P0).Mul(t))
}

// Midpoint returns the point halfway along the line.
func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

// IsOnLine reports whether pt lies on the segment, within EpsilonDistance.
func (l Line) IsOnLine(pt Point) bool {
	return l.IsOnLineTol(pt, EpsilonDistance)
}

// IsOnLineTol is like [Line.IsOnLine] with an explicit tolerance.
func (l Line) IsOnLineTol(pt Point, eps float64) bool {
	return within(l.P0.Distance(pt)+pt.Distance(l.P1), l.Length(), eps)
}

// Reverse returns the line with swapped end points, the opposite direction
// and an angle rotated by 180°.
func (l Line) Reverse() Line {
	d := Backward
	if l.Direction == Backward {
		d = Forward
	}
	return Line{
		ID:        l.ID,
		P0:        l.P1,
		P1:        l.P0,
		Direction: d,
		angle:     l.angle.Add(For180Degrees),
	}
}

// Compare orders lines by ID.
func (l Line) Compare(o Line) int {
	return cmp.Compare(l.ID, o.ID)
}

// Equal reports whether both lines have equal end points and direction.
func (l Line) Equal(o Line) bool {
	return l.P0.Equal(o.P0) && l.P1.Equal(o.P1) && l.Direction == o.Direction
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// DistanceToPoint returns the distance from pt to the infinite line through
// P0 and P1.
func (l Line) DistanceToPoint(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	return math.Abs(d.Cross(pt.Sub(l.P0))) / d.Hypot()
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) String() string {
	return fmt.Sprintf("%d: %v -> %v (%v)", l.ID, l.P0, l.P1, l.Direction)
}
