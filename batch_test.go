package circles

import (
	"errors"
	"testing"
)

func TestTangentLinesAll(t *testing.T) {
	var pairs []CirclePair
	for n := 0; n < 10; n++ {
		for _, tt := range testPairs {
			pairs = append(pairs, NewCirclePair(tt.a, tt.b))
		}
	}

	got, err := TangentLinesAll(pairs)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(pairs) {
		t.Fatalf("got %d results, want %d", len(got), len(pairs))
	}
	for i, p := range pairs {
		want := must[TangentLineSet](t)(TangentLines(p))
		diff(t, want, got[i], cmpLine)
	}

	if got, err := TangentLinesAll(nil); err != nil || len(got) != 0 {
		t.Errorf("got %v, %v for no pairs", got, err)
	}
}

func TestTangentLinesAllErrors(t *testing.T) {
	failing := func(p CirclePair, tol Tolerance) (TangentPoints, error) {
		if p.Zero.Radius == 7 {
			return TangentPoints{}, &PairingError{Center: p.Zero.Center, Radius: p.Zero.Radius}
		}
		return OuterTangentsTol(p, tol)
	}
	pairs := []CirclePair{
		NewCirclePair(Circ(Pt(0, 0), 1), Circ(Pt(10, 0), 2)),
		NewCirclePair(Circ(Pt(0, 0), 1), Circ(Pt(20, 0), 7)),
		NewCirclePair(Circ(Pt(3, -2), 4), Circ(Pt(1, -2), 3)),
	}
	got, err := TangentLinesAll(pairs, WithOuterTangents(failing))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("got error %v, want ErrInvalidArgument", err)
	}
	if len(got[0].Tangents) != 4 || len(got[1].Tangents) != 0 || len(got[2].Tangents) != 2 {
		t.Errorf("got %d, %d, %d lines, want 4, 0, 2",
			len(got[0].Tangents), len(got[1].Tangents), len(got[2].Tangents))
	}
}
