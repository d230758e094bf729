package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"pixelsnap/components"
)

var debugOutline = color.NRGBA{0xff, 0x00, 0x66, 0xff}

// Debug draws the development HUD over the composed frame: tick and
// frame rates, window size, the applied canvas scale and the outline of
// the scaled canvas.
type Debug struct {
	Enabled bool
}

func NewDebug(enabled bool) *Debug {
	return &Debug{Enabled: enabled}
}

// Draw renders the HUD when enabled.
func (d *Debug) Draw(ecs *ecs.ECS, screen *ebiten.Image) {
	if !d.Enabled {
		return
	}
	w := ecs.World

	scale := 1.0
	if entry, ok := outerCameraQuery.First(w); ok {
		if s := components.Camera.Get(entry).Scale; s > 0 {
			scale = 1 / s
		}
	}

	bounds := screen.Bounds()
	sw, sh := float64(bounds.Dx()), float64(bounds.Dy())
	if entry, ok := canvasQuery.First(w); ok {
		if img := components.Canvas.Get(entry).Image; img != nil {
			cw := float64(img.Bounds().Dx()) * scale
			ch := float64(img.Bounds().Dy()) * scale
			vector.StrokeRect(screen, float32((sw-cw)/2), float32((sh-ch)/2), float32(cw), float32(ch), 1, debugOutline, false)
		}
	}

	msg := fmt.Sprintf("tps %.0f fps %.0f\nwindow %.0fx%.0f scale x%.0f\nentities %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(), sw, sh, scale, w.Len())
	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}
