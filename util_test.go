package circles

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, and the floats inside points, to two decimals.
var approx = cmpopts.EquateApprox(0, 0.01)

// cmpMaybePoint compares optional points with point tolerance.
var cmpMaybePoint = cmp.Comparer(func(a, b Maybe[Point]) bool {
	return a.Equal(b, Point.Equal)
})

var cmpLine = cmp.Comparer(func(a, b Line) bool {
	return a.ID == b.ID && a.Equal(b)
})

func degrees(as []Angle) []float64 {
	out := make([]float64, len(as))
	for i, a := range as {
		out[i] = a.Degrees()
	}
	return out
}

func must[T any](t *testing.T) func(T, error) T {
	return func(v T, err error) T {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return v
	}
}
