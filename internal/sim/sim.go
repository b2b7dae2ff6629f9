// Package sim drives one pond: random rain drops, the duck swimming along a
// closed spline and the wake it leaves behind.
package sim

import (
	gomath "math"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/Faultbox/kaczka/internal/config"
	"github.com/Faultbox/kaczka/internal/engine/water"
	"github.com/Faultbox/kaczka/internal/logger"
	"github.com/Faultbox/kaczka/pkg/math"
	"github.com/Faultbox/kaczka/pkg/spline"
)

// Frame is the state produced by one Tick.
type Frame struct {
	Tick      uint64
	Parameter float64   // duck position along the loop, [0,1)
	Duck      math.Vec3 // on the water plane, y=0
	Heading   float32   // yaw around +Y, radians
	Drops     int       // drops injected during this tick
}

// DuckModel returns the duck model matrix T * S * Ry(heading).
func (f Frame) DuckModel(scale float32) math.Mat4 {
	return math.TranslateVec(f.Duck).
		Mul(math.Scale(scale, scale, scale)).
		Mul(math.RotateY(f.Heading))
}

// Simulation owns the water surface and the duck path. It is not safe for
// concurrent use.
type Simulation struct {
	duck  config.DuckConfig
	drops config.DropsConfig

	surface *water.Surface
	curve   *spline.Curve
	rng     *rand.Rand
	log     *zap.Logger

	lapSeconds  float64
	dropSeconds float64

	parameter float64
	dropTime  float64
	tick      uint64
	total     uint64
}

// NewRNG returns a PCG source for seed. A zero seed is replaced with a
// random one; the seed in use is returned.
func NewRNG(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = rand.Uint64() | 1
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}

// New builds the surface and a random closed duck path from cfg.
func New(cfg *config.Config, rng *rand.Rand) (*Simulation, error) {
	surface, err := water.NewSurface(water.FieldConfig{
		PlaneWidth:    cfg.Water.PlaneWidth,
		PlaneHeight:   cfg.Water.PlaneHeight,
		SamplesWidth:  cfg.Water.SamplesWidth,
		SamplesHeight: cfg.Water.SamplesHeight,
		Resolution:    cfg.Water.Resolution,
	})
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		duck:        cfg.Duck,
		drops:       cfg.Drops,
		surface:     surface,
		curve:       spline.NewCurve(),
		rng:         rng,
		log:         logger.Named("sim"),
		lapSeconds:  cfg.Duck.LapTime.Seconds(),
		dropSeconds: cfg.Drops.Interval.Seconds(),
	}

	points := make([]math.Vec2, cfg.Duck.ControlPoints)
	for i := range points {
		points[i] = math.Vec2{X: s.symmetric(cfg.Duck.Spread), Y: s.symmetric(cfg.Duck.Spread)}
	}
	if err := s.curve.SetLoopedControlPoints(points); err != nil {
		return nil, err
	}

	s.log.Debug("simulation ready",
		zap.Int("samples_width", cfg.Water.SamplesWidth),
		zap.Int("samples_height", cfg.Water.SamplesHeight),
		zap.Int("control_points", len(points)),
		zap.Duration("lap", cfg.Duck.LapTime),
	)
	return s, nil
}

// symmetric returns a uniform value in [-spread, spread).
func (s *Simulation) symmetric(spread float32) float32 {
	return spread * (2*s.rng.Float32() - 1)
}

// Surface returns the simulated water.
func (s *Simulation) Surface() *water.Surface { return s.surface }

// Curve returns the duck path.
func (s *Simulation) Curve() *spline.Curve { return s.curve }

// Parameter returns the duck position along the loop.
func (s *Simulation) Parameter() float64 { return s.parameter }

// TotalDrops returns how many drops have fallen so far.
func (s *Simulation) TotalDrops() uint64 { return s.total }

// ResetDuck puts the duck back at the start of its loop.
func (s *Simulation) ResetDuck() {
	s.parameter = 0
}

// Tick advances the simulation by dt seconds of wall time.
func (s *Simulation) Tick(dt float64) Frame {
	if dt < 0 || gomath.IsNaN(dt) {
		dt = 0
	}

	s.parameter += dt / s.lapSeconds
	s.parameter -= gomath.Floor(s.parameter)

	drops := 0
	if s.drops.Enabled {
		s.dropTime += dt
		for s.dropTime > s.dropSeconds {
			s.drop()
			s.dropTime -= s.dropSeconds
			drops++
		}
	}

	pos := s.curve.Evaluate(s.parameter)
	frame := Frame{
		Tick:      s.tick,
		Parameter: s.parameter,
		Duck:      pos.OnPlane(0),
		Heading:   spline.Heading(s.curve.Derivative(s.parameter)),
		Drops:     drops,
	}

	s.surface.Disturb(frame.Duck, s.duck.WakeStrength)
	s.surface.Step(float32(dt))

	s.tick++
	s.total += uint64(drops)

	if ce := s.log.Check(zap.DebugLevel, "tick"); ce != nil {
		ce.Write(
			zap.Uint64("tick", frame.Tick),
			zap.Float64("parameter", frame.Parameter),
			zap.Int("drops", drops),
			zap.Float32("energy", s.surface.Field.Energy()),
		)
	}
	return frame
}

// drop injects one rain drop at a random point.
func (s *Simulation) drop() {
	pos := math.Vec3{X: s.symmetric(s.drops.Spread), Z: s.symmetric(s.drops.Spread)}
	strength := s.drops.MinStrength + (s.drops.MaxStrength-s.drops.MinStrength)*s.rng.Float32()
	s.surface.Disturb(pos, strength)
}
