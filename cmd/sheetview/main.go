package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/walker/assets"
	"github.com/milk9111/walker/common"
	"github.com/milk9111/walker/ecs/component"
	"github.com/milk9111/walker/ecs/entity"
	"github.com/milk9111/walker/ecs/system"
	"github.com/milk9111/walker/prefabs"
)

const viewSize = 512

// previewGame cycles the player's walking sheet with the same timer the game uses.
type previewGame struct {
	sheet   *ebiten.Image
	frames  assets.Sheet
	anim    component.Animation
	moving  bool
	scale   float64
	last    time.Time
	elapsed time.Duration
}

func (g *previewGame) Update() error {
	now := time.Now()
	var dt time.Duration
	if !g.last.IsZero() {
		dt = common.ClampDelta(now.Sub(g.last))
	}
	g.last = now

	if ebiten.IsKeyPressed(ebiten.KeySpace) != g.moving {
		g.moving = !g.moving
	}

	vel := component.Velocity{}
	if g.moving {
		vel.Vector = cp.Vector{X: 1}
		g.elapsed += dt
	}
	system.Animate(&g.anim, vel, g.frames.Frames, dt)
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})

	src := g.sheet.SubImage(g.frames.Frame(g.anim.Frame)).(*ebiten.Image)
	fw := float64(g.frames.FrameW) * g.scale
	fh := float64(g.frames.FrameH) * g.scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	op.GeoM.Translate((viewSize-fw)/2, (viewSize-fh)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(src, op)

	status := "hold space to walk"
	if g.moving {
		status = fmt.Sprintf("walking %.1fs", g.elapsed.Seconds())
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  frame %d/%d  period %v\n%s",
		g.frames.Key, g.anim.Frame+1, g.frames.Frames, g.anim.Timer.Period, status))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	scale := flag.Float64("scale", 3, "draw scale")
	flag.Parse()

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatalf("sheetview: %v", err)
	}
	loader := assets.NewLoader(entity.SheetDeclaration(spec))
	if err := loader.LoadAll(); err != nil {
		log.Fatalf("sheetview: %v", err)
	}
	frames, _ := loader.Sheet(spec.Animation.Sheet)
	img, _ := loader.Image(spec.Animation.Sheet)

	g := &previewGame{
		sheet:  ebiten.NewImageFromImage(img),
		frames: frames,
		anim:   component.Animation{Timer: component.NewTimer(spec.Animation.Period())},
		scale:  *scale,
	}
	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("sheetview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
