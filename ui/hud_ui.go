package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// HUDUI holds the on-screen quack button for touch and mouse players.
type HUDUI struct {
	UI *ebitenui.UI

	buttonFace text.Face
}

func NewHUDUI(onQuack func()) *HUDUI {
	ui := &HUDUI{}

	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Fatalf("failed to load HUD font: %v", err)
	}
	ui.buttonFace = &text.GoTextFace{Source: fontSource, Size: 14}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(12)),
		)),
	)

	quack := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(72, 36),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{230, 180, 40, 220}),
			Hover:   image.NewNineSliceColor(color.RGBA{250, 200, 60, 240}),
			Pressed: image.NewNineSliceColor(color.RGBA{200, 150, 30, 255}),
		}),
		widget.ButtonOpts.Text("Quack!", &ui.buttonFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{40, 30, 10, 255},
			Hover:   color.RGBA{20, 15, 5, 255},
			Pressed: color.RGBA{255, 255, 255, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onQuack != nil {
				onQuack()
			}
		}),
	)
	root.AddChild(quack)

	ui.UI = &ebitenui.UI{Container: root}
	return ui
}

func (ui *HUDUI) Update() {
	ui.UI.Update()
}
