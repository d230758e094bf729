package pixelsnap

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"pixelsnap/components"
	"pixelsnap/config"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(config.Default())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestNewGameRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.CanvasWidth = 0
	if _, err := NewGame(cfg); err == nil {
		t.Fatal("NewGame accepted a zero width canvas")
	}
}

func TestNewGameSceneCensus(t *testing.T) {
	g := newTestGame(t)

	// 2500 digits, 25 bin parts, 2 cameras, the canvas sprite, 2 rotators.
	// Counted through the layer component: world.Len() also includes the
	// entity donburi stores the resize event bus in.
	sceneQuery := donburi.NewQuery(filter.Contains(components.RenderLayers))
	if got := sceneQuery.Count(g.world); got != 2530 {
		t.Errorf("scene holds %d entities, want 2530", got)
	}

	counts := map[components.RenderLayersData]int{}
	sceneQuery.Each(g.world, func(e *donburi.Entry) {
		counts[*components.RenderLayers.Get(e)]++
	})
	for mask, n := range counts {
		if mask != components.LayerPixelPerfect && mask != components.LayerHighRes {
			t.Errorf("%d entities on unexpected layer set %b", n, mask)
		}
	}
	if got := counts[components.LayerHighRes]; got != 3 {
		t.Errorf("%d entities on the high-res layer, want 3: the canvas sprite, a rotator and the outer camera", got)
	}
	if got := counts[components.LayerPixelPerfect]; got != 2527 {
		t.Errorf("%d entities on the pixel layer, want 2527", got)
	}
}

func TestLayoutKeepsWindowResolution(t *testing.T) {
	g := newTestGame(t)

	if w, h := g.Layout(1920, 1080); w != 1920 || h != 1080 {
		t.Errorf("Layout(1920, 1080) = (%d, %d), want the window size back", w, h)
	}
	if w, h := g.Layout(0, -5); w != 1 || h != 1 {
		t.Errorf("Layout(0, -5) = (%d, %d), want (1, 1)", w, h)
	}
}

func TestResizeReachesOuterCamera(t *testing.T) {
	g := newTestGame(t)
	outer, ok := donburi.NewQuery(filter.Contains(components.OuterCamera, components.Camera)).First(g.world)
	if !ok {
		t.Fatal("no outer camera")
	}

	g.Layout(1024, 512)
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := components.Camera.Get(outer).Scale; got != 0.5 {
		t.Errorf("after a 1024x512 resize outer scale = %v, want 0.5", got)
	}

	g.Layout(600, 300)
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := components.Camera.Get(outer).Scale; got != 1 {
		t.Errorf("after a 600x300 resize outer scale = %v, want 1", got)
	}
}
