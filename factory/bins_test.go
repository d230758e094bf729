package factory

import (
	"sort"
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"

	"pixelsnap/components"
	"pixelsnap/config"
)

var binQuery = donburi.NewQuery(filter.Contains(components.Bin, components.Transform, components.RenderLayers))

func spawnDefaultBins(t *testing.T) donburi.World {
	t.Helper()
	w := donburi.NewWorld()
	SpawnBins(ecs.NewECS(w), config.Default())
	return w
}

func TestSpawnBinsCount(t *testing.T) {
	w := spawnDefaultBins(t)

	if got := binQuery.Count(w); got != 25 {
		t.Fatalf("spawned %d bin entities, want 25 for five bins", got)
	}

	sprites, labels := 0, 0
	binQuery.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Sprite) {
			sprites++
		}
		if e.HasComponent(components.Label) {
			labels++
		}
	})
	if sprites != 15 {
		t.Errorf("spawned %d bin sprites, want 15", sprites)
	}
	if labels != 10 {
		t.Errorf("spawned %d bin labels, want 10", labels)
	}
}

// The third bin fills 0.90, so its bar is 72 wide and sits left aligned
// inside the 80 wide background.
func TestSpawnBinsThirdBinGeometry(t *testing.T) {
	w := spawnDefaultBins(t)

	found := map[string]int{}
	binQuery.Each(w, func(e *donburi.Entry) {
		if components.Bin.Get(e).Index != 2 {
			return
		}
		tr := components.Transform.Get(e)
		pos := tr.Translation

		switch {
		case e.HasComponent(components.Sprite):
			s := components.Sprite.Get(e)
			switch {
			case tr.Depth == 1.0 && s.Size.Y == BinHeight:
				found["rect"]++
				if pos.X != -16 || pos.Y != -68 {
					t.Errorf("bin rect at (%v, %v), want (-16, -68)", pos.X, pos.Y)
				}
				if s.Size.X != BinWidth || s.Color != binColor {
					t.Errorf("bin rect size %v color %v", s.Size, s.Color)
				}
			case tr.Depth == 1.0 && s.Size.Y == BarHeight:
				found["back"]++
				if pos.X != -16 || pos.Y != -103 {
					t.Errorf("bar background at (%v, %v), want (-16, -103)", pos.X, pos.Y)
				}
				if s.Size.X != BinWidth || s.Color != barBackColor {
					t.Errorf("bar background size %v color %v", s.Size, s.Color)
				}
			case tr.Depth == 1.1:
				found["fill"]++
				if s.Size.X != 72 || s.Size.Y != BarHeight {
					t.Errorf("fill bar size (%v, %v), want (72, 20)", s.Size.X, s.Size.Y)
				}
				if pos.X != -20 || pos.Y != -103 {
					t.Errorf("fill bar at (%v, %v), want (-20, -103)", pos.X, pos.Y)
				}
				if s.Color != barFillColor {
					t.Errorf("fill bar color %v", s.Color)
				}
			default:
				t.Errorf("unexpected bin sprite at depth %v", tr.Depth)
			}
		case e.HasComponent(components.Label):
			l := components.Label.Get(e)
			switch tr.Depth {
			case 1.3:
				found["number"]++
				if l.Text != "03" || l.Size != BinLabelFontSize {
					t.Errorf("bin number label %q size %v, want %q size %v", l.Text, l.Size, "03", BinLabelFontSize)
				}
				if pos.X != -16 || pos.Y != -68 {
					t.Errorf("bin number label at (%v, %v), want (-16, -68)", pos.X, pos.Y)
				}
			case 1.2:
				found["percent"]++
				if l.Text != "90%" || l.Size != PercentFontSize {
					t.Errorf("percent label %q size %v, want %q size %v", l.Text, l.Size, "90%", PercentFontSize)
				}
				if pos.X != -16 || pos.Y != -103 {
					t.Errorf("percent label at (%v, %v), want (-16, -103)", pos.X, pos.Y)
				}
			default:
				t.Errorf("unexpected bin label at depth %v", tr.Depth)
			}
		}
	})

	for _, part := range []string{"rect", "back", "fill", "number", "percent"} {
		if found[part] != 1 {
			t.Errorf("found %d %s parts for bin 2, want 1", found[part], part)
		}
	}
}

func TestSpawnBinsLabelTexts(t *testing.T) {
	w := spawnDefaultBins(t)

	type label struct {
		index int
		text  string
	}
	collect := func(depth float64) []label {
		var out []label
		binQuery.Each(w, func(e *donburi.Entry) {
			if !e.HasComponent(components.Label) || components.Transform.Get(e).Depth != depth {
				return
			}
			out = append(out, label{components.Bin.Get(e).Index, components.Label.Get(e).Text})
		})
		sort.Slice(out, func(i, j int) bool { return out[i].index < out[j].index })
		return out
	}

	check := func(name string, got []label, want []string) {
		if len(got) != len(want) {
			t.Fatalf("found %d %s labels, want %d", len(got), name, len(want))
		}
		for i, l := range got {
			if l.text != want[i] {
				t.Errorf("bin %d %s label = %q, want %q", i, name, l.text, want[i])
			}
		}
	}

	check("number", collect(1.3), []string{"01", "02", "03", "04", "05"})
	check("percent", collect(1.2), []string{"75%", "45%", "90%", "30%", "60%"})
}
