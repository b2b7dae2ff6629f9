package spline

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/kaczka/pkg/math"
)

func square() []math.Vec2 {
	return []math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

func TestSetControlPointsRequiresFour(t *testing.T) {
	c := NewCurve()

	err := c.SetControlPoints(square()[:3])
	require.ErrorIs(t, err, ErrTooFewControlPoints)
	assert.Empty(t, c.ControlPoints())

	require.NoError(t, c.SetControlPoints(square()))
	assert.Len(t, c.ControlPoints(), 4)
	assert.Len(t, c.Knots(), 8)
}

func TestSetLoopedControlPointsRequiresThree(t *testing.T) {
	c := NewCurve()

	require.ErrorIs(t, c.SetLoopedControlPoints(square()[:2]), ErrTooFewControlPoints)
	require.NoError(t, c.SetLoopedControlPoints(square()[:3]))
	assert.Len(t, c.ControlPoints(), 6)
}

func TestLoopedControlPointsWrap(t *testing.T) {
	c := NewCurve()
	require.NoError(t, c.SetLoopedControlPoints(square()))

	pts := c.ControlPoints()
	require.Len(t, pts, 7)
	assert.Equal(t, pts[:3], pts[4:])
	assert.Len(t, c.Knots(), 11)
}

func TestControlPointsAreCopied(t *testing.T) {
	pts := square()
	c := NewCurve()
	require.NoError(t, c.SetControlPoints(pts))

	pts[0] = math.Vec2{X: 100, Y: 100}
	assert.Equal(t, math.Vec2{}, c.ControlPoints()[0])
}

func TestEvaluateWithoutControlPoints(t *testing.T) {
	c := NewCurve()
	assert.Equal(t, math.Vec2{}, c.Evaluate(0.3))
	assert.Equal(t, math.Vec2{}, c.Derivative(0.3))
}

func TestNonVanishingIntervalCorrection(t *testing.T) {
	c := NewCurve()
	require.NoError(t, c.SetLoopedControlPoints(square()))

	// 7 stored points: span [3/10, 7/10]
	assert.InDelta(t, 0.3, c.nonVanishingIntervalCorrection(0), 1e-12)
	assert.InDelta(t, 0.5, c.nonVanishingIntervalCorrection(0.5), 1e-12)
	assert.InDelta(t, 0.7, c.nonVanishingIntervalCorrection(1), 1e-12)
}

func TestClosedCurveCloses(t *testing.T) {
	c := NewCurve()
	require.NoError(t, c.SetLoopedControlPoints(square()))

	start := c.Evaluate(0)
	end := c.Evaluate(1 - 1e-9)

	// Uniform cubic B-spline start point: (P0 + 4*P1 + P2) / 6
	assert.InDelta(t, 5.0/6, start.X, 1e-5)
	assert.InDelta(t, 1.0/6, start.Y, 1e-5)
	assert.InDelta(t, start.X, end.X, 1e-4)
	assert.InDelta(t, start.Y, end.Y, 1e-4)

	assert.InDelta(t, c.Derivative(0).X, c.Derivative(1-1e-9).X, 1e-3)
	assert.InDelta(t, c.Derivative(0).Y, c.Derivative(1-1e-9).Y, 1e-3)
}

func TestClosedCurveStaysInsideHull(t *testing.T) {
	c := NewCurve()
	require.NoError(t, c.SetLoopedControlPoints(square()))

	for step := 0; step < 200; step++ {
		p := c.Evaluate(float64(step) / 200)
		assert.True(t, p.X > -1e-6 && p.X < 1+1e-6 && p.Y > -1e-6 && p.Y < 1+1e-6, "point %v left the hull", p)
	}
}

func TestOpenCurveReproducesLine(t *testing.T) {
	c := NewCurve()
	require.NoError(t, c.SetControlPoints([]math.Vec2{{X: 0}, {X: 1}, {X: 2}, {X: 3}}))

	assert.InDelta(t, 1.0, c.Evaluate(0).X, 1e-5)
	assert.InDelta(t, 1.5, c.Evaluate(0.5).X, 1e-5)
	assert.InDelta(t, 2.0, c.Evaluate(1-1e-9).X, 1e-5)
	assert.InDelta(t, 0.0, c.Evaluate(0.5).Y, 1e-9)
}

func TestDerivativeMatchesFiniteDifference(t *testing.T) {
	c := NewCurve()
	require.NoError(t, c.SetLoopedControlPoints([]math.Vec2{
		{X: -3, Y: 1}, {X: 2, Y: 4}, {X: 4, Y: -2}, {X: 0, Y: -4}, {X: -4, Y: -1},
	}))

	knots := c.Knots()
	n := len(c.ControlPoints())
	span := knots[n] - knots[Degree]

	const h = 1e-4
	for _, tt := range []float64{0.05, 0.23, 0.41, 0.66, 0.87} {
		ahead, behind := c.Evaluate(tt+h), c.Evaluate(tt-h)
		fdX := float64(ahead.X-behind.X) / (2 * h)
		fdY := float64(ahead.Y-behind.Y) / (2 * h)

		d := c.Derivative(tt)
		assert.InDelta(t, fdX, float64(d.X)*span, 2e-2, "dx at t=%v", tt)
		assert.InDelta(t, fdY, float64(d.Y)*span, 2e-2, "dy at t=%v", tt)
	}
}

func TestHeading(t *testing.T) {
	cases := []struct {
		d    math.Vec2
		want float64
	}{
		{math.Vec2{X: 1, Y: 0}, gomath.Pi},
		{math.Vec2{X: 0, Y: 1}, gomath.Pi / 2},
		{math.Vec2{X: 0, Y: -1}, 3 * gomath.Pi / 2},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, float64(Heading(tc.d)), 1e-6, "d=%v", tc.d)
	}
}
