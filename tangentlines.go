package circles

import "log/slog"

// Option configures [TangentLines].
type Option func(*options)

type options struct {
	tol           Tolerance
	outer         func(CirclePair, Tolerance) (TangentPoints, error)
	inner         func(CirclePair, Tolerance) (TangentPoints, error)
	intersections func(CirclePair, Tolerance) Intersection
}

func defaultOptions() options {
	return options{
		tol:           DefaultTolerance,
		outer:         OuterTangentsTol,
		inner:         InnerTangentsTol,
		intersections: CirclesIntersectionTol,
	}
}

// WithTolerance sets the tolerance passed to every calculator.
func WithTolerance(tol Tolerance) Option {
	return func(o *options) {
		o.tol = tol
	}
}

// WithOuterTangents replaces the outer tangent calculator.
//
// Example:
//
//	// Record which pairs ask for outer tangents.
//	set, err := circles.TangentLines(pair, circles.WithOuterTangents(
//	    func(p circles.CirclePair, tol circles.Tolerance) (circles.TangentPoints, error) {
//	        seen = append(seen, p)
//	        return circles.OuterTangentsTol(p, tol)
//	    }))
func WithOuterTangents(fn func(CirclePair, Tolerance) (TangentPoints, error)) Option {
	return func(o *options) {
		o.outer = fn
	}
}

// WithInnerTangents replaces the inner tangent calculator.
func WithInnerTangents(fn func(CirclePair, Tolerance) (TangentPoints, error)) Option {
	return func(o *options) {
		o.inner = fn
	}
}

// WithIntersections replaces the circle intersection calculator.
func WithIntersections(fn func(CirclePair, Tolerance) Intersection) Option {
	return func(o *options) {
		o.intersections = fn
	}
}

// TangentLineSet holds the common tangent line segments of a circle pair.
//
// Tangents is the concatenation in production order: for three tangents
// the touch line comes first, followed by the outer lines; for four, the
// outer lines come first. Line IDs follow that order starting at zero.
type TangentLineSet struct {
	Outer    []Line
	Inner    []Line
	Tangents []Line
}

// TangentLines assembles the tangent line segments of p according to its
// number of common tangents:
//
//   - 0: no lines
//   - 1: the line joining the two intersection points, in Inner
//   - 2: two outer lines
//   - 3: the touch line in Inner, plus two outer lines
//   - 4: two outer and two inner lines
//
// Each line runs from a point on p.Zero to a point on p.One. Identical
// circles have no intersection points and produce no lines.
func TangentLines(p CirclePair, opts ...Option) (TangentLineSet, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var set TangentLineSet
	switch p.NumberOfTangents {
	case 0:
	case 1:
		set.Inner = o.touchLine(p, 0)
		set.Tangents = set.Inner
	case 2:
		outer, err := o.outer(p, o.tol)
		if err != nil {
			return TangentLineSet{}, err
		}
		set.Outer = outer.LinesTol(0, o.tol)
		set.Tangents = set.Outer
	case 3:
		outer, err := o.outer(p, o.tol)
		if err != nil {
			return TangentLineSet{}, err
		}
		set.Inner = o.touchLine(p, 0)
		set.Outer = outer.LinesTol(len(set.Inner), o.tol)
		set.Tangents = concat(set.Inner, set.Outer)
	case 4:
		outer, err := o.outer(p, o.tol)
		if err != nil {
			return TangentLineSet{}, err
		}
		inner, err := o.inner(p, o.tol)
		if err != nil {
			return TangentLineSet{}, err
		}
		set.Outer = outer.LinesTol(0, o.tol)
		set.Inner = inner.LinesTol(len(set.Outer), o.tol)
		set.Tangents = concat(set.Outer, set.Inner)
	default:
		Logger().Warn("circles: unexpected number of tangents", slog.Int("tangents", p.NumberOfTangents))
	}
	return set, nil
}

// touchLine returns the line joining the intersection points of p, or
// nothing if the circles do not meet in discrete points.
func (o options) touchLine(p CirclePair, id int) []Line {
	is := o.intersections(p, o.tol)
	one, ok1 := is.One.Get()
	two, ok2 := is.Two.Get()
	if !is.HasIntersectionPoints || !ok1 || !ok2 {
		return nil
	}
	return []Line{NewLineTol(id, one, two, o.tol.Radians)}
}

func concat(a, b []Line) []Line {
	out := make([]Line, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
