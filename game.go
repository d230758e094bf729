// Package pixelsnap renders a fixed low-resolution scene into an
// offscreen canvas and presents that canvas in the window at a whole
// pixel multiple, letterboxed and centered, so the pixel grid stays
// crisp at every window size.
package pixelsnap

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"pixelsnap/config"
	"pixelsnap/events"
	"pixelsnap/factory"
	"pixelsnap/fonts"
	"pixelsnap/layers"
	"pixelsnap/systems"
)

// Game owns the world and drives it through the engine loop.
//
// Keys: Escape quits, F toggles fullscreen, D toggles the HUD.
type Game struct {
	cfg   config.Config
	world donburi.World
	ecs   *ecs.ECS
	debug *systems.Debug

	winW int
	winH int
}

var _ ebiten.Game = (*Game)(nil)

// NewGame builds the scene described by cfg: the canvas, both cameras,
// the digit grid, the bar chart and the spinning markers.
func NewGame(cfg config.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	faces, err := fonts.NewSet(factory.NumberFontSize, factory.BinLabelFontSize, factory.PercentFontSize)
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	world := donburi.NewWorld()
	e := ecs.NewECS(world)
	canvas := ebiten.NewImage(cfg.CanvasWidth, cfg.CanvasHeight)

	factory.SpawnNumbers(e, cfg)
	factory.SpawnCameras(e, cfg, canvas)
	factory.SpawnBins(e, cfg)
	factory.SpawnRotators(e, factory.RotatorImage())

	fit := systems.NewFitCanvas(world, cfg.CanvasWidth, cfg.CanvasHeight)
	debug := systems.NewDebug(cfg.Debug)
	e.AddSystem(fit.Update)
	e.AddSystem(systems.Rotate)
	e.AddRenderer(layers.Scene, systems.NewRenderer(faces).Draw)
	e.AddRenderer(layers.Overlay, debug.Draw)

	Logger().Debug("scene ready",
		"canvas", fmt.Sprintf("%dx%d", cfg.CanvasWidth, cfg.CanvasHeight),
		"entities", world.Len())

	return &Game{cfg: cfg, world: world, ecs: e, debug: debug}, nil
}

// Update handles input and advances the systems one fixed tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.debug.Enabled = !g.debug.Enabled
	}
	g.ecs.Update()
	return nil
}

// Draw composites the frame: the camera passes first, then the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.ecs.DrawLayer(layers.Scene, screen)
	g.ecs.DrawLayer(layers.Overlay, screen)
}

// Layout keeps the window pass at the native window resolution and
// reports size changes to the fit system. The next Update drains the
// queued sizes in order. The engine insists on positive dimensions, so
// a collapsed window reports as 1x1.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	if outsideWidth != g.winW || outsideHeight != g.winH {
		g.winW, g.winH = outsideWidth, outsideHeight
		events.WindowResized.Publish(g.world, events.WindowResizedData{
			Width:  float64(outsideWidth),
			Height: float64(outsideHeight),
		})
		Logger().Debug("window resized",
			"size", fmt.Sprintf("%dx%d", outsideWidth, outsideHeight),
			"scale", systems.IntegerScale(float64(outsideWidth), float64(outsideHeight),
				float64(g.cfg.CanvasWidth), float64(g.cfg.CanvasHeight)))
	}
	return outsideWidth, outsideHeight
}
