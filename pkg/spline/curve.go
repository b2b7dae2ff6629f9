package spline

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/kaczka/pkg/math"
)

// Degree is the polynomial degree of every Curve.
const Degree = 3

// ErrTooFewControlPoints is returned when a curve cannot be built from the
// given points.
var ErrTooFewControlPoints = errors.New("too few control points")

// Curve is a cubic B-spline over equidistant knots.
type Curve struct {
	degree      int
	points      []math.Vec2
	derivPoints []math.Vec2
	knots       []float64
}

// NewCurve returns an empty cubic curve. Evaluate returns the zero vector
// until control points are set.
func NewCurve() *Curve {
	return &Curve{degree: Degree}
}

// Degree returns the curve degree.
func (c *Curve) Degree() int {
	return c.degree
}

// SetControlPoints replaces the control polygon. At least degree+1 points
// are required.
func (c *Curve) SetControlPoints(points []math.Vec2) error {
	if len(points) < c.degree+1 {
		return fmt.Errorf("%w: open curve needs %d, got %d", ErrTooFewControlPoints, c.degree+1, len(points))
	}

	c.points = append([]math.Vec2(nil), points...)
	c.knots = EquidistantKnots(len(c.points), c.degree)
	c.updateDerivativePoints()
	return nil
}

// SetLoopedControlPoints builds a closed curve through the polygon by
// repeating its first degree points at the end.
func (c *Curve) SetLoopedControlPoints(points []math.Vec2) error {
	if len(points) < c.degree {
		return fmt.Errorf("%w: closed curve needs %d, got %d", ErrTooFewControlPoints, c.degree, len(points))
	}

	looped := make([]math.Vec2, 0, len(points)+c.degree)
	looped = append(looped, points...)
	looped = append(looped, points[:c.degree]...)
	return c.SetControlPoints(looped)
}

// ControlPoints returns a copy of the stored (possibly looped) polygon.
func (c *Curve) ControlPoints() []math.Vec2 {
	return append([]math.Vec2(nil), c.points...)
}

// Knots returns a copy of the knot vector.
func (c *Curve) Knots() []float64 {
	return append([]float64(nil), c.knots...)
}

// Evaluate returns the curve point for t in [0,1).
func (c *Curve) Evaluate(t float64) math.Vec2 {
	t = c.nonVanishingIntervalCorrection(t)

	var x, y float64
	for i, p := range c.points {
		w := Basis(i, c.degree, c.knots, t)
		x += float64(p.X) * w
		y += float64(p.Y) * w
	}
	return math.Vec2{X: float32(x), Y: float32(y)}
}

// Derivative returns the first derivative with respect to the internal knot
// parameter at t in [0,1).
func (c *Curve) Derivative(t float64) math.Vec2 {
	t = c.nonVanishingIntervalCorrection(t)

	var x, y float64
	for i, d := range c.derivPoints {
		w := Basis(i+1, c.degree-1, c.knots, t)
		x += float64(d.X) * w
		y += float64(d.Y) * w
	}
	return math.Vec2{X: float32(x), Y: float32(y)}
}

// updateDerivativePoints computes the control points of the degree-1 curve
// that is the derivative of this one.
func (c *Curve) updateDerivativePoints() {
	c.derivPoints = c.derivPoints[:0]
	for i := 0; i < len(c.points)-1; i++ {
		factor := float32(float64(c.degree) / (c.knots[i+c.degree+1] - c.knots[i+1]))
		c.derivPoints = append(c.derivPoints, c.points[i+1].Sub(c.points[i]).Scale(factor))
	}
}

// nonVanishingIntervalCorrection maps t in [0,1] onto the knot span
// [knots[degree], knots[n]] where the basis functions form a partition of
// unity. n counts the stored points, wrap points included.
func (c *Curve) nonVanishingIntervalCorrection(t float64) float64 {
	n := len(c.points)
	if n == 0 {
		return t
	}
	span := c.knots[n] - c.knots[c.degree]
	return float64(c.degree)/float64(c.degree+n) + t*span
}

// Heading returns the yaw around +Y, in radians, that turns the duck model
// to follow the tangent d.
func Heading(d math.Vec2) float32 {
	return float32(gomath.Atan2(float64(-d.Y), float64(d.X)) + gomath.Pi)
}
