package sim

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/kaczka/internal/config"
	"github.com/Faultbox/kaczka/internal/logger"
	"github.com/Faultbox/kaczka/pkg/math"
	"github.com/Faultbox/kaczka/pkg/spline"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Water.SamplesWidth = 32
	cfg.Water.SamplesHeight = 32
	return cfg
}

func newSim(t *testing.T, cfg *config.Config, seed uint64) *Simulation {
	t.Helper()
	rng, _ := NewRNG(seed)
	s, err := New(cfg, rng)
	require.NoError(t, err)
	return s
}

func TestNewRNG(t *testing.T) {
	_, seed := NewRNG(0)
	assert.NotZero(t, seed)

	a, seedA := NewRNG(99)
	b, _ := NewRNG(99)
	assert.Equal(t, uint64(99), seedA)
	assert.Equal(t, a.Uint64(), b.Uint64())
}

func TestNewRejectsShortLoop(t *testing.T) {
	cfg := testConfig()
	cfg.Duck.ControlPoints = 2

	_, err := New(cfg, rand.New(rand.NewPCG(1, 2)))
	require.ErrorIs(t, err, spline.ErrTooFewControlPoints)
}

func TestNewRejectsBadGrid(t *testing.T) {
	cfg := testConfig()
	cfg.Water.SamplesWidth = 1

	_, err := New(cfg, rand.New(rand.NewPCG(1, 2)))
	require.Error(t, err)
}

func TestControlPointsWithinSpread(t *testing.T) {
	cfg := testConfig()
	cfg.Duck.Spread = 2
	s := newSim(t, cfg, 5)

	points := s.Curve().ControlPoints()
	require.Len(t, points, cfg.Duck.ControlPoints+3)
	for _, p := range points {
		assert.LessOrEqual(t, abs(p.X), float32(2))
		assert.LessOrEqual(t, abs(p.Y), float32(2))
	}
	assert.Equal(t, points[:3], points[len(points)-3:])
}

func TestSameSeedSameFrames(t *testing.T) {
	a := newSim(t, testConfig(), 42)
	b := newSim(t, testConfig(), 42)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Tick(0.016), b.Tick(0.016))
	}
	assert.Equal(t, a.Surface().Field.Current(), b.Surface().Field.Current())
}

func TestParameterWraps(t *testing.T) {
	cfg := testConfig()
	cfg.Duck.LapTime = time.Second
	s := newSim(t, cfg, 1)

	f := s.Tick(0.75)
	assert.InDelta(t, 0.75, f.Parameter, 1e-12)

	f = s.Tick(0.75)
	assert.InDelta(t, 0.5, f.Parameter, 1e-12)
	assert.Equal(t, uint64(1), f.Tick)
}

func TestNegativeStepIsIgnored(t *testing.T) {
	s := newSim(t, testConfig(), 1)

	f := s.Tick(-1)

	assert.Zero(t, f.Parameter)
	assert.Zero(t, f.Drops)
}

func TestDropCadence(t *testing.T) {
	s := newSim(t, testConfig(), 3)

	assert.Equal(t, 2, s.Tick(0.125).Drops)
	assert.Equal(t, 1, s.Tick(0.03).Drops)
	assert.Equal(t, 0, s.Tick(0.01).Drops)
	assert.Equal(t, uint64(3), s.TotalDrops())
}

func TestDropsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Drops.Enabled = false
	s := newSim(t, cfg, 3)

	assert.Zero(t, s.Tick(1).Drops)
	assert.Zero(t, s.TotalDrops())
}

func TestTickFollowsCurve(t *testing.T) {
	cfg := testConfig()
	cfg.Drops.Enabled = false
	s := newSim(t, cfg, 8)

	f := s.Tick(3)

	pos := s.Curve().Evaluate(f.Parameter)
	assert.Equal(t, math.Vec3{X: pos.X, Z: pos.Y}, f.Duck)
	assert.Equal(t, spline.Heading(s.Curve().Derivative(f.Parameter)), f.Heading)
}

func TestWakeDisturbsWater(t *testing.T) {
	cfg := testConfig()
	cfg.Drops.Enabled = false
	cfg.Duck.Spread = 3
	s := newSim(t, cfg, 8)

	s.Tick(0.016)

	assert.Greater(t, s.Surface().Field.Energy(), float32(0))
}

func TestResetDuck(t *testing.T) {
	s := newSim(t, testConfig(), 4)
	s.Tick(2)
	require.NotZero(t, s.Parameter())

	s.ResetDuck()
	f := s.Tick(0)

	assert.Zero(t, f.Parameter)
	start := s.Curve().Evaluate(0)
	assert.Equal(t, start.OnPlane(0), f.Duck)
}

func TestDuckModel(t *testing.T) {
	f := Frame{Duck: math.Vec3{X: 1, Z: -2}, Heading: 0}

	m := f.DuckModel(0.5)

	assert.Equal(t, math.Vec3{X: 1, Z: -2}, m.TransformVec3(math.Vec3{}))
	assert.Equal(t, math.Vec3{X: 1.5, Z: -2}, m.TransformVec3(math.Vec3{X: 1}))
}

func TestTickLogsAtDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger.SetLogger(zap.New(core))
	defer logger.SetLogger(zap.NewNop())

	s := newSim(t, testConfig(), 6)
	s.Tick(0.1)

	ticks := logs.FilterMessage("tick").All()
	require.Len(t, ticks, 1)
	assert.Equal(t, "sim", ticks[0].LoggerName)
	assert.Contains(t, ticks[0].ContextMap(), "energy")
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
