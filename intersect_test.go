package circles

import (
	"testing"
)

func TestCirclesIntersection(t *testing.T) {
	tests := []struct {
		name string
		a, b Circle
		want Intersection
	}{
		{
			name: "two points",
			a:    Circ(Pt(3, -2), 4),
			b:    Circ(Pt(1, -2), 3),
			want: Intersection{
				HasIntersectionPoints: true,
				One:                   Some(Pt(0.25, 0.9047)),
				Two:                   Some(Pt(0.25, -4.9047)),
			},
		},
		{
			name: "two points, vertical centre line",
			a:    Circ(Pt(0, 0), 5),
			b:    Circ(Pt(0, 6), 5),
			want: Intersection{
				HasIntersectionPoints: true,
				One:                   Some(Pt(-4, 3)),
				Two:                   Some(Pt(4, 3)),
			},
		},
		{
			name: "touching along x",
			a:    Circ(Pt(0, 0), 2),
			b:    Circ(Pt(4, 0), 2),
			want: Intersection{
				HasIntersectionPoints: true,
				TouchAtSinglePoint:    true,
				One:                   Some(Pt(2, 0)),
				Two:                   Some(Pt(2, 0)),
			},
		},
		{
			name: "touching along y",
			a:    Circ(Pt(0, 0), 1),
			b:    Circ(Pt(0, 2), 1),
			want: Intersection{
				HasIntersectionPoints: true,
				TouchAtSinglePoint:    true,
				One:                   Some(Pt(0, 1)),
				Two:                   Some(Pt(0, 1)),
			},
		},
		{
			// not axis-aligned: the touch point is found along the centre line
			name: "touching diagonally",
			a:    Circ(Pt(0, 0), 5),
			b:    Circ(Pt(6, 8), 5),
			want: Intersection{
				HasIntersectionPoints: true,
				TouchAtSinglePoint:    true,
				One:                   Some(Pt(3, 4)),
				Two:                   Some(Pt(3, 4)),
			},
		},
		{
			// x deltas are a diameter apart but y differs: the axis
			// shortcut would leave the point off circle one
			name: "touching nearly along x",
			a:    Circ(Pt(0, 0), 2),
			b:    Circ(Pt(4, 0.28), 2),
			want: Intersection{
				HasIntersectionPoints: true,
				TouchAtSinglePoint:    true,
				One:                   Some(Pt(2.005, 0.140)),
				Two:                   Some(Pt(2.005, 0.140)),
			},
		},
		{
			name: "touching inside",
			a:    Circ(Pt(0, 0), 3),
			b:    Circ(Pt(1, 0), 2),
			want: Intersection{
				HasIntersectionPoints: true,
				TouchAtSinglePoint:    true,
				One:                   Some(Pt(3, 0)),
				Two:                   Some(Pt(3, 0)),
			},
		},
		{
			name: "identical",
			a:    Circ(Pt(1, 2), 3),
			b:    Circ(Pt(1, 2), 3),
			want: Intersection{Same: true},
		},
		{
			name: "separate",
			a:    Circ(Pt(0, 0), 1),
			b:    Circ(Pt(10, 0), 2),
			want: Intersection{},
		},
		{
			name: "inside",
			a:    Circ(Pt(0, 0), 5),
			b:    Circ(Pt(1, 0), 1),
			want: Intersection{},
		},
		{
			name: "concentric",
			a:    Circ(Pt(0, 0), 5),
			b:    Circ(Pt(0, 0), 1),
			want: Intersection{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CirclesIntersection(NewCirclePair(tt.a, tt.b))
			diff(t, tt.want, got, cmpMaybePoint)
		})
	}
}

func TestCirclesIntersectionOnBothCircles(t *testing.T) {
	for _, tt := range testPairs {
		p := NewCirclePair(tt.a, tt.b)
		is := CirclesIntersection(p)
		if !is.HasIntersectionPoints {
			continue
		}
		for _, m := range []Maybe[Point]{is.One, is.Two} {
			pt, ok := m.Get()
			if !ok {
				t.Errorf("%v: unknown intersection point", p)
				continue
			}
			if !p.Zero.IsPointOnCircle(pt) || !p.One.IsPointOnCircle(pt) {
				t.Errorf("%v: %v is not on both circles", p, pt)
			}
		}
	}
}

func TestCirclesIntersectionTolerance(t *testing.T) {
	// 0.05 apart from touching: separate by default, touching when loose
	p := NewCirclePair(Circ(Pt(0, 0), 2), Circ(Pt(4.05, 0), 2))
	if is := CirclesIntersection(p); is.HasIntersectionPoints {
		t.Errorf("got %+v, want no intersection", is)
	}
	tol := Tolerance{Distance: 0.1, Radians: 0.5}
	is := CirclesIntersectionTol(p, tol)
	if !is.HasIntersectionPoints || !is.TouchAtSinglePoint {
		t.Fatalf("got %+v, want a single touch point", is)
	}
	diff(t, Some(Pt(2.05, 0)), is.One, cmpMaybePoint)
}
