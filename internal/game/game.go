// Package game implements the 3D client loop: input, simulation, camera and
// scene rendering.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/kaczka/internal/config"
	"github.com/Faultbox/kaczka/internal/engine/camera"
	"github.com/Faultbox/kaczka/internal/engine/debug"
	"github.com/Faultbox/kaczka/internal/engine/input"
	"github.com/Faultbox/kaczka/internal/engine/picking"
	"github.com/Faultbox/kaczka/internal/engine/renderer"
	"github.com/Faultbox/kaczka/internal/engine/scene"
	"github.com/Faultbox/kaczka/internal/engine/window"
	"github.com/Faultbox/kaczka/internal/logger"
	"github.com/Faultbox/kaczka/internal/sim"
)

// Title is the window title.
const Title = "Kaczka"

const screenshotDir = "screenshots"

// Game is the main client instance.
type Game struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	scene    *scene.Scene
	sim      *sim.Simulation
	shots    *debug.Screenshots

	frame          sim.Frame
	wantScreenshot bool
}

// New creates the window, GL state, simulation and scene.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		cfg: cfg,
		log: logger.Named("game"),
	}

	g.log.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	rng, seed := sim.NewRNG(cfg.Simulation.Seed)
	g.log.Info("simulation seed", zap.Uint64("seed", seed))

	var err error
	g.sim, err = sim.New(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	// Window first, the renderer needs its GL context
	g.window, err = window.New(Title, cfg.Graphics)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := g.window.GetSize()
	g.renderer, err = renderer.New(width, height)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.scene, err = scene.New(cfg, g.sim.Surface())
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}
	g.scene.Resize(int32(width), int32(height))

	g.input = input.New()
	g.camera = camera.NewOrbitCamera(cfg.Camera)
	g.shots = debug.NewScreenshots(screenshotDir, "kaczka")

	g.log.Info("game initialized successfully")
	return g, nil
}

// Run starts the main loop and returns when the window is closed or
// escape is pressed.
func (g *Game) Run() error {
	g.running = true

	var minFrame time.Duration
	if g.cfg.Graphics.FPSLimit > 0 {
		minFrame = time.Second / time.Duration(g.cfg.Graphics.FPSLimit)
	}

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	g.log.Info("starting game loop")

	for g.running {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		if g.input.Update() {
			break
		}
		g.handleInput()

		g.frame = g.sim.Tick(dt)
		g.render()
		if g.wantScreenshot {
			g.wantScreenshot = false
			g.screenshot()
		}
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float64("parameter", g.frame.Parameter),
				zap.Uint64("drops", g.sim.TotalDrops()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}

		if minFrame > 0 {
			if rest := minFrame - time.Since(frameStart); rest > 0 {
				time.Sleep(rest)
			}
		}
	}

	return nil
}

func (g *Game) handleInput() {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			g.renderer.Resize(event.Width, event.Height)
			g.scene.Resize(int32(event.Width), int32(event.Height))
		case input.EventMouseDown:
			if event.Button == sdl.BUTTON_RIGHT {
				g.poke(float32(event.MouseX), float32(event.MouseY))
			}
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				g.running = false
			case sdl.SCANCODE_R:
				g.sim.ResetDuck()
				g.log.Debug("duck reset")
			case sdl.SCANCODE_F12:
				g.wantScreenshot = true
			}
		}
	}

	if dx, dy := g.input.Drag(); dx != 0 || dy != 0 {
		g.camera.HandleDrag(dx, dy)
	}
	if notches := g.input.Wheel(); notches != 0 {
		g.camera.HandleZoom(notches)
	}
}

// poke drops a disturbance where the cursor ray meets the water.
func (g *Game) poke(x, y float32) {
	inv, err := g.scene.Projection().Mul(g.camera.ViewMatrix()).Inverse()
	if err != nil {
		return
	}
	width, height := g.renderer.Size()
	ray := picking.ScreenToRay(x, y, float32(width), float32(height), inv)
	hit, ok := ray.IntersectPlaneY(0)
	if !ok {
		return
	}
	if g.sim.Surface().Disturb(hit, g.cfg.Drops.MaxStrength) {
		g.log.Debug("poke", zap.Float32("x", hit.X), zap.Float32("z", hit.Z))
	}
}

func (g *Game) render() {
	g.renderer.Begin()
	g.scene.Render(
		g.camera.ViewMatrix(),
		g.camera.Position(),
		g.frame.DuckModel(g.cfg.Duck.Scale),
		g.sim.Surface(),
	)
	g.renderer.End()
}

func (g *Game) screenshot() {
	width, height := g.renderer.Size()
	img, err := debug.FromGL(g.renderer.ReadPixels(), width, height)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	path, err := g.shots.Save(img)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases resources in reverse creation order.
func (g *Game) Close() {
	g.log.Info("closing game")

	if g.scene != nil {
		g.scene.Destroy()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
