package systems

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"

	"pixelsnap/components"
	"pixelsnap/fonts"
)

var (
	cameraQuery = donburi.NewQuery(filter.Contains(components.Camera, components.RenderLayers))
	canvasQuery = donburi.NewQuery(filter.Contains(components.Canvas))

	renderableQuery = donburi.NewQuery(filter.And(
		filter.Contains(components.Transform, components.RenderLayers),
		filter.Or(
			filter.Contains(components.Sprite),
			filter.Contains(components.Label),
		),
	))
)

// Renderer composites the frame camera by camera: passes run in
// ascending camera order, each clearing its target and painting the
// renderables whose layers intersect the camera's.
type Renderer struct {
	faces *fonts.Set

	cams    []*donburi.Entry
	visible []*donburi.Entry
}

// NewRenderer builds a compositor drawing text with faces.
func NewRenderer(faces *fonts.Set) *Renderer {
	return &Renderer{faces: faces}
}

// Draw runs every camera pass, with screen as the window target.
func (r *Renderer) Draw(ecs *ecs.ECS, screen *ebiten.Image) {
	w := ecs.World

	for _, entry := range r.sortedCameras(w) {
		cam := components.Camera.Get(entry)
		target := screen
		if cam.Target == components.TargetCanvas {
			target = canvasImage(w)
		}
		if target == nil || cam.Scale <= 0 {
			continue
		}
		r.drawPass(w, cam, *components.RenderLayers.Get(entry), target)
	}
}

// sortedCameras returns the camera entities in pass order. The sort is
// stable, so equal orders keep spawn order.
func (r *Renderer) sortedCameras(w donburi.World) []*donburi.Entry {
	r.cams = r.cams[:0]
	cameraQuery.Each(w, func(e *donburi.Entry) {
		r.cams = append(r.cams, e)
	})
	sort.SliceStable(r.cams, func(i, j int) bool {
		return components.Camera.Get(r.cams[i]).Order < components.Camera.Get(r.cams[j]).Order
	})
	return r.cams
}

// visibleEntries returns the renderables whose layers intersect seen,
// depth sorted bottom to top.
func (r *Renderer) visibleEntries(w donburi.World, seen components.RenderLayersData) []*donburi.Entry {
	r.visible = r.visible[:0]
	renderableQuery.Each(w, func(e *donburi.Entry) {
		if components.RenderLayers.Get(e).Intersects(seen) {
			r.visible = append(r.visible, e)
		}
	})
	sort.SliceStable(r.visible, func(i, j int) bool {
		return components.Transform.Get(r.visible[i]).Depth < components.Transform.Get(r.visible[j]).Depth
	})
	return r.visible
}

func canvasImage(w donburi.World) *ebiten.Image {
	entry, ok := canvasQuery.First(w)
	if !ok {
		return nil
	}
	return components.Canvas.Get(entry).Image
}

func (r *Renderer) drawPass(w donburi.World, cam *components.CameraData, seen components.RenderLayersData, target *ebiten.Image) {
	target.Fill(cam.ClearColor)

	bounds := target.Bounds()
	tw, th := float64(bounds.Dx()), float64(bounds.Dy())
	for _, e := range r.visibleEntries(w, seen) {
		t := components.Transform.Get(e)
		px, py := project(t.Translation.X, t.Translation.Y, cam.Scale, tw, th)
		switch {
		case e.HasComponent(components.Sprite):
			r.drawSprite(target, e, t, cam.Scale, px, py)
		case e.HasComponent(components.Label):
			r.drawLabel(target, e, cam.Scale, px, py)
		}
	}
}

// project maps a world position onto target pixels: the origin lands at
// the target center, +Y up flips to +Y down, and one world unit covers
// 1/scale pixels.
func project(wx, wy, scale, targetW, targetH float64) (float64, float64) {
	return targetW/2 + wx/scale, targetH/2 - wy/scale
}

func (r *Renderer) drawSprite(target *ebiten.Image, e *donburi.Entry, t *components.TransformData, scale, px, py float64) {
	s := components.Sprite.Get(e)
	w := s.Size.X / scale
	h := s.Size.Y / scale
	if s.Image == nil {
		vector.DrawFilledRect(target, float32(px-w/2), float32(py-h/2), float32(w), float32(h), s.Color, false)
		return
	}
	ib := s.Image.Bounds()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Translate(-float64(ib.Dx())/2, -float64(ib.Dy())/2)
	op.GeoM.Scale(w/float64(ib.Dx()), h/float64(ib.Dy()))
	op.GeoM.Rotate(-t.Rotation)
	op.GeoM.Translate(px, py)
	target.DrawImage(s.Image, op)
}

func (r *Renderer) drawLabel(target *ebiten.Image, e *donburi.Entry, scale, px, py float64) {
	l := components.Label.Get(e)
	face := r.faces.Face(l.Size)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	if scale != 1 {
		op.GeoM.Scale(1/scale, 1/scale)
	}
	op.GeoM.Translate(px, py)
	op.ColorScale.ScaleWithColor(l.Color)
	text.Draw(target, l.Text, face, op)
}
