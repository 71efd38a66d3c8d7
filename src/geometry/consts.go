package geometry

import (
	"math"
)

const (
	Infinity = math.MaxFloat64

	// Epsilon is half the distance from 1.0 to the next float64.
	Epsilon = 1.1102230246251565e-16
)

// Error bounds for the floating point filters. A determinant whose magnitude
// exceeds bound*permanent has the correct sign; anything smaller is decided
// with exact arithmetic. The 3D bounds carry extra slack because the
// evaluation order differs from the one they were derived for.
const (
	orient2dErrBound = (3.0 + 16.0*Epsilon) * Epsilon
	incircleErrBound = (10.0 + 96.0*Epsilon) * Epsilon
	orient3dErrBound = 4 * (7.0 + 56.0*Epsilon) * Epsilon
	insphereErrBound = 8 * (16.0 + 224.0*Epsilon) * Epsilon
)
