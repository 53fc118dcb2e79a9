package circles

import "fmt"

// Maybe holds a value that may be unknown. The zero value is unknown.
type Maybe[T any] struct {
	v  T
	ok bool
}

// Some returns a known value.
func Some[T any](v T) Maybe[T] { return Maybe[T]{v: v, ok: true} }

// None returns an unknown value.
func None[T any]() Maybe[T] { return Maybe[T]{} }

// Get returns the value and whether it is known.
func (m Maybe[T]) Get() (T, bool) { return m.v, m.ok }

// IsUnknown reports whether m holds no value.
func (m Maybe[T]) IsUnknown() bool { return !m.ok }

// Or returns the value if known and def otherwise.
func (m Maybe[T]) Or(def T) T {
	if m.ok {
		return m.v
	}
	return def
}

// Equal compares two optional values. Two unknowns are equal; a known and an
// unknown value never are.
func (m Maybe[T]) Equal(o Maybe[T], eq func(a, b T) bool) bool {
	if m.ok != o.ok {
		return false
	}
	return !m.ok || eq(m.v, o.v)
}

func (m Maybe[T]) String() string {
	if !m.ok {
		return "unknown"
	}
	return fmt.Sprint(m.v)
}

// knownPoint wraps pt, treating NaN and infinite coordinates as unknown.
func knownPoint(pt Point) Maybe[Point] {
	if pt.IsNaN() || pt.IsInf() {
		return None[Point]()
	}
	return Some(pt)
}
