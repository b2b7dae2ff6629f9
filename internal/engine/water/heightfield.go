package water

import (
	"errors"
	"fmt"

	"github.com/tphakala/simd/f32"

	"github.com/Faultbox/kaczka/pkg/math"
)

// Water surface errors.
var (
	ErrInvalidGrid       = errors.New("invalid sample grid")
	ErrInvalidPlane      = errors.New("invalid plane size")
	ErrSingularTransform = errors.New("model matrix is not invertible")
)

// FieldConfig describes the plane and the sample grid behind it.
type FieldConfig struct {
	PlaneWidth    float32
	PlaneHeight   float32
	SamplesWidth  int
	SamplesHeight int
	// Resolution is the N used for the fixed spatial and temporal step.
	// Zero selects DefaultResolution.
	Resolution int
}

// DefaultFieldConfig returns the 10x10 plane sampled on a 256x256 grid.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		PlaneWidth:    DefaultPlaneSize,
		PlaneHeight:   DefaultPlaneSize,
		SamplesWidth:  DefaultSamples,
		SamplesHeight: DefaultSamples,
		Resolution:    DefaultResolution,
	}
}

// Coefficients are the constants of the explicit wave update
// next = A*neighbours + B*current - previous.
type Coefficients struct {
	H  float32 // spatial step 2/(N-1)
	Dt float32 // temporal step 1/N
	A  float32 // c²dt²/h²
	B  float32 // 2 - 4A
}

// NewCoefficients derives the update constants for resolution n with wave
// speed 1.
func NewCoefficients(n int) Coefficients {
	const c = 1
	h := 2 / float32(n-1)
	dt := 1 / float32(n)
	a := c * c * dt * dt / (h * h)
	return Coefficients{H: h, Dt: dt, A: a, B: 2 - 4*a}
}

// HeightField is a double-buffered grid of wave amplitudes.
type HeightField struct {
	width, height int
	samples       [2][]float32
	current       int
	damping       []float32
	coeff         Coefficients

	model          math.Mat4
	invModel       math.Mat4
	texture        math.Mat4
	worldToTexture math.Mat4
}

// NewHeightField allocates a zeroed field for cfg.
func NewHeightField(cfg FieldConfig) (*HeightField, error) {
	if cfg.SamplesWidth < 2 || cfg.SamplesHeight < 2 {
		return nil, fmt.Errorf("%w: %dx%d, need at least 2x2", ErrInvalidGrid, cfg.SamplesWidth, cfg.SamplesHeight)
	}
	if !(cfg.PlaneWidth > 0 && cfg.PlaneHeight > 0) {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidPlane, cfg.PlaneWidth, cfg.PlaneHeight)
	}
	n := cfg.Resolution
	if n == 0 {
		n = DefaultResolution
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: resolution %d", ErrInvalidGrid, n)
	}

	size := cfg.SamplesWidth * cfg.SamplesHeight
	f := &HeightField{
		width:   cfg.SamplesWidth,
		height:  cfg.SamplesHeight,
		samples: [2][]float32{make([]float32, size), make([]float32, size)},
		damping: make([]float32, size),
		coeff:   NewCoefficients(n),
		model:   math.Identity(),
	}
	f.invModel = math.Identity()

	// Plane [-w/2, w/2] x [-h/2, h/2] in XZ onto [0,1] x [0,1].
	f.texture = math.Scale(1/cfg.PlaneWidth, 0, 1/cfg.PlaneHeight).
		Mul(math.Translate(0.5*cfg.PlaneWidth, 0, 0.5*cfg.PlaneHeight))
	f.worldToTexture = f.texture.Mul(f.invModel)

	f.buildDamping()
	return f, nil
}

// buildDamping precomputes the per-cell factor that absorbs waves near the
// border: 0 on the edge, MaxDamping from EdgeBand inwards.
func (f *HeightField) buildDamping() {
	for y := 0; y < f.height; y++ {
		py := float32(y) / float32(f.height-1)
		for x := 0; x < f.width; x++ {
			px := float32(x) / float32(f.width-1)
			l := min(px, 1-px, py, 1-py)
			f.damping[y*f.width+x] = MaxDamping * min(1, l/EdgeBand)
		}
	}
}

// Width returns the number of sample columns.
func (f *HeightField) Width() int { return f.width }

// Height returns the number of sample rows.
func (f *HeightField) Height() int { return f.height }

// Coefficients returns the update constants in use.
func (f *HeightField) Coefficients() Coefficients { return f.coeff }

// Current returns the most recent state. Callers must not modify it.
func (f *HeightField) Current() []float32 { return f.samples[f.current] }

// Previous returns the state one step behind Current.
func (f *HeightField) Previous() []float32 { return f.samples[1-f.current] }

// At returns the current amplitude at (x, y).
func (f *HeightField) At(x, y int) float32 {
	return f.samples[f.current][y*f.width+x]
}

// Clear zeroes both buffers.
func (f *HeightField) Clear() {
	clear(f.samples[0])
	clear(f.samples[1])
}

// ModelMatrix returns the surface placement in world space.
func (f *HeightField) ModelMatrix() math.Mat4 { return f.model }

// TextureMatrix returns the local-to-texture mapping.
func (f *HeightField) TextureMatrix() math.Mat4 { return f.texture }

// SetModelMatrix places the surface in the world. The inverse is cached for
// disturbance mapping; a singular m leaves the field unchanged.
func (f *HeightField) SetModelMatrix(m math.Mat4) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSingularTransform, err)
	}
	f.model = m
	f.invModel = inv
	f.worldToTexture = f.texture.Mul(inv)
	return nil
}

// TextureCoords maps a world position into [0,1]² texture space.
// ok is false when the point falls outside the surface.
func (f *HeightField) TextureCoords(world math.Vec3) (u, v float32, ok bool) {
	p := f.worldToTexture.TransformVec3(world)
	if !(p.X >= 0 && p.X <= 1 && p.Z >= 0 && p.Z <= 1) {
		return 0, 0, false
	}
	return p.X, p.Z, true
}

// ApplyDisturbance adds strength to the sample under world. Positions
// outside the surface are ignored and reported with false.
func (f *HeightField) ApplyDisturbance(world math.Vec3, strength float32) bool {
	u, v, ok := f.TextureCoords(world)
	if !ok {
		return false
	}
	x := min(int(u*float32(f.width)), f.width-1)
	y := min(int(v*float32(f.height)), f.height-1)
	f.samples[f.current][y*f.width+x] += strength
	return true
}

// Update advances the wave equation one fixed step. Missing neighbours at
// the border contribute nothing. The new state is written over the previous
// buffer, which then becomes current.
func (f *HeightField) Update(_ float32) {
	cur := f.samples[f.current]
	prev := f.samples[1-f.current]
	w, h := f.width, f.height
	a, b := f.coeff.A, f.coeff.B

	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			i := row + x

			var sum float32
			if x > 0 {
				sum += cur[i-1]
			}
			if x < w-1 {
				sum += cur[i+1]
			}
			if y > 0 {
				sum += cur[i-w]
			}
			if y < h-1 {
				sum += cur[i+w]
			}

			prev[i] = f.damping[i] * (a*sum + b*cur[i] - prev[i])
		}
	}

	f.current = 1 - f.current
}

// Energy returns the sum of squared current amplitudes.
func (f *HeightField) Energy() float32 {
	cur := f.samples[f.current]
	return f32.DotProductUnsafe(cur, cur)
}
