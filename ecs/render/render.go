package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/walker/ecs"
	"github.com/milk9111/walker/ecs/component"
	"golang.org/x/image/colornames"
)

// Palette colors the backdrop and the ground strip.
type Palette struct {
	Background color.Color
	Ground     color.Color
	GroundAlt  color.Color
}

var DefaultPalette = Palette{
	Background: colornames.Skyblue,
	Ground:     colornames.Olivedrab,
	GroundAlt:  colornames.Darkolivegreen,
}

// Renderer draws the level and every sprite as seen from the camera.
// World space has its origin at the centre of the window and +Y up.
type Renderer struct {
	images  *Images
	palette Palette
}

func NewRenderer(images *Images, palette Palette) *Renderer {
	return &Renderer{images: images, palette: palette}
}

func (r *Renderer) Draw(screen *ebiten.Image, w *ecs.World) {
	screen.Fill(r.palette.Background)

	levelEntity, ok := w.First(component.LevelComponent.Kind())
	if !ok {
		return
	}
	level := *ecs.MustGet(w, levelEntity, component.LevelComponent.Kind())

	var cam component.Transform
	if e, ok := w.First(component.CameraTagComponent.Kind()); ok {
		cam = *ecs.MustGet(w, e, component.TransformComponent.Kind())
	}

	r.drawGround(screen, level, cam)
	r.drawSprites(screen, w, level, cam)
}

// drawGround fills the bottom tile row across the whole level, alternating
// colors per tile so scrolling is visible.
func (r *Renderer) drawGround(screen *ebiten.Image, level component.Level, cam component.Transform) {
	tile := level.TileSize
	if tile <= 0 {
		return
	}
	top := float32(level.ViewHeight - tile)
	left := -level.ViewWidth / 2
	for i := 0; float64(i)*tile < level.Length; i++ {
		wx := left + float64(i)*tile
		sx, _ := toScreen(wx, 0, cam, level)
		if sx+tile < 0 || sx > level.ViewWidth {
			continue
		}
		clr := r.palette.Ground
		if i%2 == 1 {
			clr = r.palette.GroundAlt
		}
		vector.DrawFilledRect(screen, float32(sx), top, float32(tile), float32(tile), clr, false)
	}
}

func (r *Renderer) drawSprites(screen *ebiten.Image, w *ecs.World, level component.Level, cam component.Transform) {
	entities := w.Query(component.SpriteComponent.Kind(), component.TransformComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		ti := ecs.MustGet(w, entities[i], component.TransformComponent.Kind())
		tj := ecs.MustGet(w, entities[j], component.TransformComponent.Kind())
		return ti.Z < tj.Z
	})

	for _, e := range entities {
		sprite := ecs.MustGet(w, e, component.SpriteComponent.Kind())
		transform := ecs.MustGet(w, e, component.TransformComponent.Kind())
		sheet := r.images.Get(sprite.Sheet.Key)
		if sheet == nil || !sprite.Sheet.Valid() {
			continue
		}

		frame := 0
		if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
			frame = anim.Frame
		}
		src := sheet.SubImage(sprite.Sheet.Frame(frame)).(*ebiten.Image)

		sx, sy := toScreen(transform.X, transform.Y, cam, level)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(
			math.Round(sx-float64(sprite.Sheet.FrameW)/2),
			math.Round(sy-float64(sprite.Sheet.FrameH)/2),
		)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(src, op)
	}
}

func toScreen(x, y float64, cam component.Transform, level component.Level) (float64, float64) {
	return x - cam.X + level.ViewWidth/2, level.ViewHeight/2 - (y - cam.Y)
}
