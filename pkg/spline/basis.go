// Package spline evaluates uniform cubic B-spline curves in the XZ plane.
//
// Curves are evaluated on a single knot span whose basis functions sum to
// one. A closed loop is produced by repeating the first Degree control
// points at the tail, which makes that span cover one full lap.
package spline

import (
	gomath "math"

	"gonum.org/v1/gonum/floats"
)

// ZeroEpsilon is the smallest knot span treated as non-degenerate in Basis.
const ZeroEpsilon = 1e-5

// EquidistantKnots returns numControlPoints+degree+1 knots spread evenly
// over [0,1], knot[i] = i/(numControlPoints+degree).
func EquidistantKnots(numControlPoints, degree int) []float64 {
	return floats.Span(make([]float64, numControlPoints+degree+1), 0, 1)
}

// Basis returns the Cox-de-Boor basis function N(i, degree) at t.
// Terms whose knot span collapses below ZeroEpsilon are dropped.
func Basis(i, degree int, knots []float64, t float64) float64 {
	if degree == 0 {
		if knots[i] <= t && t < knots[i+1] {
			return 1
		}
		return 0
	}

	var left, right float64

	if den := knots[i+degree] - knots[i]; gomath.Abs(den) > ZeroEpsilon {
		left = (t - knots[i]) / den * Basis(i, degree-1, knots, t)
	}

	if den := knots[i+degree+1] - knots[i+1]; gomath.Abs(den) > ZeroEpsilon {
		right = (knots[i+degree+1] - t) / den * Basis(i+1, degree-1, knots, t)
	}

	return left + right
}
