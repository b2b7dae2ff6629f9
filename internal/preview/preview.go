// Package preview shows the pond from above in an ebiten window: the
// encoded normal map with a marker on the duck.
package preview

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/Faultbox/kaczka/internal/logger"
	"github.com/Faultbox/kaczka/internal/sim"
)

// ErrQuit is returned from Update when the viewer is closed with escape.
var ErrQuit = errors.New("preview: quit")

const markerRadius = 2

var markerColor = color.RGBA{255, 200, 0, 255}

// Viewer is an ebiten.Game driving a simulation at a fixed step per tick.
type Viewer struct {
	sim  *sim.Simulation
	step float64
	log  *zap.Logger

	pixels []byte
	frame  sim.Frame
	debug  bool
}

// New creates a viewer that advances s by step seconds each tick.
func New(s *sim.Simulation, step float64, debug bool) *Viewer {
	return &Viewer{
		sim:   s,
		step:  step,
		log:   logger.Named("preview"),
		debug: debug,
	}
}

// Update advances the simulation once.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.sim.ResetDuck()
		v.log.Debug("duck reset")
	}
	v.frame = v.sim.Tick(v.step)
	return nil
}

// Draw writes the normal map to screen and marks the duck.
func (v *Viewer) Draw(screen *ebiten.Image) {
	surface := v.sim.Surface()
	v.pixels = surface.Normals.RGBA(v.pixels)
	w, h := surface.Field.Width(), surface.Field.Height()
	if x, y, ok := duckPixel(surface.Field, v.frame.Duck); ok {
		drawMarker(v.pixels, w, h, x, y, markerRadius, markerColor)
	}
	screen.WritePixels(v.pixels)

	if v.debug {
		ebitenutil.DebugPrint(screen, debugText(v.frame, v.sim.TotalDrops(), ebiten.ActualTPS()))
	}
}

// Layout keeps one screen pixel per height sample.
func (v *Viewer) Layout(_, _ int) (int, int) {
	f := v.sim.Surface().Field
	return f.Width(), f.Height()
}

// Run opens the window and blocks until it is closed.
func Run(v *Viewer, title string, scale int, tps int) error {
	f := v.sim.Surface().Field
	ebiten.SetWindowSize(f.Width()*scale, f.Height()*scale)
	ebiten.SetWindowTitle(title)
	if tps > 0 {
		ebiten.SetTPS(tps)
	}
	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ErrQuit) {
		return err
	}
	return nil
}
