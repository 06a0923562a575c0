package main

import (
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/walker/ecs"
	"github.com/milk9111/walker/ecs/component"
	"github.com/milk9111/walker/ecs/render"
	"github.com/milk9111/walker/prefabs"
	"golang.org/x/image/font"
)

// NewMenuUI builds the main menu from the world's menu entities: a title and a
// start button that calls onStart.
func NewMenuUI(w *ecs.World, spec *prefabs.MenuSpec, images *render.Images, fontFace font.Face, onStart func()) *ebitenui.UI {
	var face ebtext.Face = ebtext.NewGoXFace(fontFace)
	textColor := spec.Button.TextColor.Or(color.White)

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})
	for _, e := range w.Query(component.MenuItemComponent.Kind()) {
		item := ecs.MustGet(w, e, component.MenuItemComponent.Kind())
		switch item.Kind {
		case component.MenuTitle:
			panel.AddChild(widget.NewText(
				widget.TextOpts.Text(item.Label, &face, textColor),
				widget.TextOpts.WidgetOpts(centered),
			))
		case component.MenuStartButton:
			panel.AddChild(widget.NewButton(
				widget.ButtonOpts.Image(buttonImage(spec.Button, images)),
				widget.ButtonOpts.Text(item.Label, &face, &widget.ButtonTextColor{Idle: textColor}),
				widget.ButtonOpts.WidgetOpts(centered, widget.WidgetOpts.MinSize(spec.Button.Width, spec.Button.Height)),
				widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
					log.Printf("start menu")
					onStart()
				}),
			))
		}
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

// buttonImage slices the idle and pressed images, falling back to flat colors
// when an image is missing.
func buttonImage(spec prefabs.ButtonSpec, images *render.Images) *widget.ButtonImage {
	idle := nineSlice(images.Get(spec.Image), color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	pressed := nineSlice(images.Get(spec.PressedImage), color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff})
	return &widget.ButtonImage{Idle: idle, Pressed: pressed}
}

func nineSlice(img *ebiten.Image, fallback color.Color) *imageui.NineSlice {
	if img == nil {
		return imageui.NewNineSliceColor(fallback)
	}
	b := img.Bounds()
	border := min(b.Dx(), b.Dy()) / 4
	return imageui.NewNineSlice(img,
		[3]int{border, b.Dx() - 2*border, border},
		[3]int{border, b.Dy() - 2*border, border},
	)
}
