// Package circles provides 2D geometry primitives and the calculators that
// find the common tangent lines and the intersection points of two circles.
//
// # Primitives
//
// [Angle] is normalized to [0, 2π) and compares with a tolerance that treats
// angles just above 0 and just below 2π as equal. [Point], [Vec2], [Line] and
// [Circle] are small value types; [Line] caches its angle to the x axis and
// snaps nearly axis-parallel lines to exact multiples of 90°.
//
// # Circle pairs
//
// A [CirclePair] orders two circles by radius, so that Zero is the larger
// (or, for equal radii, the second argument) and One the smaller. Its
// NumberOfTangents classifies the pair:
//
//   - 0: one circle lies inside the other
//   - 1: the circles touch from inside
//   - 2: the circles intersect
//   - 3: the circles touch from outside
//   - 4: the circles are separate
//
// [OuterTangents], [InnerTangents] and [CirclesIntersection] compute the
// touching and crossing points for a pair; [TangentLines] assembles them into
// line segments. Results that do not exist for a configuration are reported
// as unknown [Maybe] values and boolean flags, never as errors. The only
// error the tangent calculators return is a *[PairingError], raised when a
// computed tangent point candidate cannot be placed on its circle.
//
// # Tolerances
//
// Comparisons use [DefaultTolerance], built from the Epsilon constants.
// Functions with a Tol suffix, and the [WithTolerance] option, accept an
// explicit [Tolerance] instead.
//
// # Logging
//
// The package is silent by default. [SetLogger] installs a [log/slog] logger
// that receives debug records for degenerate configurations.
package circles
