package circles

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
)

const twoPi = 2 * math.Pi

// Angle is an angle normalized to [0, 2π). Values within EpsilonRadians of 0
// or 2π are snapped to 0.
//
// The zero value is an angle of zero degrees.
type Angle struct {
	rad s1.Angle
}

// Frequently used angles. For360Degrees normalizes to, and equals,
// ForZeroDegrees.
var (
	ForZeroDegrees = Angle{}
	For45Degrees   = FromDegrees(45)
	For90Degrees   = FromDegrees(90)
	For135Degrees  = FromDegrees(135)
	For180Degrees  = FromDegrees(180)
	For225Degrees  = FromDegrees(225)
	For270Degrees  = FromDegrees(270)
	For315Degrees  = FromDegrees(315)
	For360Degrees  = FromDegrees(360)
)

// FromRadians returns the normalized angle of r radians.
func FromRadians(r float64) Angle {
	return FromRadiansTol(r, EpsilonRadians)
}

// FromRadiansTol is like [FromRadians] but snaps to zero using eps.
func FromRadiansTol(r, eps float64) Angle {
	return Angle{rad: normalize(s1.Angle(r), eps)}
}

// FromDegrees returns the normalized angle of d degrees.
func FromDegrees(d float64) Angle {
	return Angle{rad: normalize(s1.Angle(d)*s1.Degree, EpsilonRadians)}
}

func normalize(a s1.Angle, eps float64) s1.Angle {
	r := math.Mod(a.Radians(), twoPi)
	if r < 0 {
		r += twoPi
	}
	if r < eps || twoPi-r < eps {
		return 0
	}
	return s1.Angle(r)
}

// Radians returns the angle in radians, in [0, 2π).
func (a Angle) Radians() float64 { return a.rad.Radians() }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 { return a.rad.Degrees() }

func (a Angle) Sin() float64 { return math.Sin(a.Radians()) }
func (a Angle) Cos() float64 { return math.Cos(a.Radians()) }

// Add returns a+o, normalized.
func (a Angle) Add(o Angle) Angle { return Angle{rad: normalize(a.rad+o.rad, EpsilonRadians)} }

// Sub returns a-o, normalized.
func (a Angle) Sub(o Angle) Angle { return Angle{rad: normalize(a.rad-o.rad, EpsilonRadians)} }

// Neg returns 2π-a, normalized.
func (a Angle) Neg() Angle { return Angle{rad: normalize(-a.rad, EpsilonRadians)} }

// IsNaN reports whether the angle was constructed from NaN.
func (a Angle) IsNaN() bool { return math.IsNaN(a.Radians()) }

// Equal reports whether a and o differ by less than EpsilonRadians, treating
// angles just above 0 and just below 2π as equal.
func (a Angle) Equal(o Angle) bool {
	return a.EqualTol(o, EpsilonRadians)
}

// EqualTol is like [Angle.Equal] with an explicit tolerance.
func (a Angle) EqualTol(o Angle, eps float64) bool {
	d := (a.rad - o.rad).Abs().Radians()
	return d < eps || twoPi-d < eps
}

// Less reports whether a is smaller than o and not equal to it.
func (a Angle) Less(o Angle) bool { return !a.Equal(o) && a.rad < o.rad }

// Greater reports whether a is larger than o and not equal to it.
func (a Angle) Greater(o Angle) bool { return !a.Equal(o) && a.rad > o.rad }

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to
// or greater than o.
func (a Angle) Compare(o Angle) int {
	switch {
	case a.Equal(o):
		return 0
	case a.rad < o.rad:
		return -1
	default:
		return 1
	}
}

func (a Angle) String() string {
	return fmt.Sprintf("%g°", a.Degrees())
}
