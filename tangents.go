package circles

import "log/slog"

// TangentPoints holds the points where one family of common tangent lines
// (outer or inner) touches the two circles of a pair.
//
// Zero[i] and One[i] lie on the same tangent line. Entries are unknown when
// the family does not exist for the pair.
type TangentPoints struct {
	// IntersectionPoint is the centre of similitude the tangent lines
	// radiate from. For parallel outer tangents its coordinates are
	// infinite or NaN.
	IntersectionPoint Point
	HasTangentPoints  bool
	Zero              [2]Maybe[Point]
	One               [2]Maybe[Point]
}

// Lines returns the tangent line segments from Zero[i] to One[i], skipping
// unknown points. Lines are numbered from firstID.
func (tp TangentPoints) Lines(firstID int) []Line {
	return tp.LinesTol(firstID, DefaultTolerance)
}

// LinesTol is like [TangentPoints.Lines] but computes line angles with
// tol.Radians.
func (tp TangentPoints) LinesTol(firstID int, tol Tolerance) []Line {
	var out []Line
	for i := range tp.Zero {
		z, ok1 := tp.Zero[i].Get()
		o, ok2 := tp.One[i].Get()
		if !ok1 || !ok2 {
			continue
		}
		out = append(out, NewLineTol(firstID+len(out), z, o, tol.Radians))
	}
	return out
}

// OuterTangents computes the points where the outer tangents touch the
// circles of p, using [DefaultTolerance].
func OuterTangents(p CirclePair) (TangentPoints, error) {
	return OuterTangentsTol(p, DefaultTolerance)
}

// OuterTangentsTol is like [OuterTangents] with an explicit tolerance.
//
// Pairs with fewer than two common tangents have no outer tangents. For
// equal radii the tangents are parallel to the centre line and the points
// are found by offsetting each centre perpendicular to it.
func OuterTangentsTol(p CirclePair, tol Tolerance) (TangentPoints, error) {
	tp := TangentPoints{IntersectionPoint: OuterIntersectionPoint(p)}
	if p.NumberOfTangents < 2 {
		return tp, nil
	}

	if tp.IntersectionPoint.IsInf() || tp.IntersectionPoint.IsNaN() {
		Logger().Debug("circles: parallel outer tangents", slog.Any("pair", p))
		angle := angleToXAxis(p.Zero.Center, p.One.Center, tol.Radians)
		right := angle.Sub(For90Degrees)
		left := angle.Add(For90Degrees)
		tp.Zero = [2]Maybe[Point]{Some(p.Zero.PointAt(right)), Some(p.Zero.PointAt(left))}
		tp.One = [2]Maybe[Point]{Some(p.One.PointAt(right)), Some(p.One.PointAt(left))}
		tp.HasTangentPoints = true
		return tp, nil
	}

	if err := tp.resolve(p, tol); err != nil {
		return TangentPoints{IntersectionPoint: tp.IntersectionPoint}, err
	}
	tp.HasTangentPoints = true
	return tp, nil
}

// InnerTangents computes the points where the inner tangents touch the
// circles of p, using [DefaultTolerance].
func InnerTangents(p CirclePair) (TangentPoints, error) {
	return InnerTangentsTol(p, DefaultTolerance)
}

// InnerTangentsTol is like [InnerTangents] with an explicit tolerance.
//
// Inner tangents exist only for three or four common tangents. With three,
// the circles touch and all four points collapse onto the touch point.
func InnerTangentsTol(p CirclePair, tol Tolerance) (TangentPoints, error) {
	tp := TangentPoints{IntersectionPoint: InnerIntersectionPoint(p)}
	switch {
	case p.NumberOfTangents < 3:
		return tp, nil
	case p.NumberOfTangents == 3:
		pt := knownPoint(tp.IntersectionPoint)
		tp.Zero = [2]Maybe[Point]{pt, pt}
		tp.One = [2]Maybe[Point]{pt, pt}
		tp.HasTangentPoints = !pt.IsUnknown()
		return tp, nil
	}

	if err := tp.resolve(p, tol); err != nil {
		return TangentPoints{IntersectionPoint: tp.IntersectionPoint}, err
	}
	tp.HasTangentPoints = true
	return tp, nil
}

// resolve fills in the tangent points of both circles as seen from the
// intersection point.
func (tp *TangentPoints) resolve(p CirclePair, tol Tolerance) error {
	var err error
	xs, ys := tangentCandidates(p.Zero, tp.IntersectionPoint)
	tp.Zero[0], tp.Zero[1], err = ResolveCoordinatePairsTol(p.Zero, xs, ys, tol.Distance)
	if err != nil {
		return err
	}
	xs, ys = tangentCandidates(p.One, tp.IntersectionPoint)
	tp.One[0], tp.One[1], err = ResolveCoordinatePairsTol(p.One, xs, ys, tol.Distance)
	return err
}
