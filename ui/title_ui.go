package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TitleUI is the start screen: game name, controls and a Play button.
type TitleUI struct {
	UI *ebitenui.UI

	OnPlay func()

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewTitleUI(title string, onPlay func()) *TitleUI {
	ui := &TitleUI{
		OnPlay: onPlay,
	}
	ui.loadFonts()
	ui.buildUI(title)
	return ui
}

func (ui *TitleUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 40}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (ui *TitleUI) buildUI(title string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{24, 28, 40, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(14),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 215, 0, 255},
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Collect the coins before the field fills up.", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Move: W A S D or arrow keys    Bounds: F3", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 200, 255},
		}),
	))

	contentContainer.AddChild(ui.buildPlayButton())

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("or press Enter", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{140, 140, 160, 255},
		}),
	))

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *TitleUI) buildPlayButton() *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 36)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 90, 60, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 130, 80, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 70, 40, 255}),
		}),
		widget.ButtonOpts.Text("Play", &ui.normalFace, &widget.ButtonTextColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnPlay != nil {
				ui.OnPlay()
			}
		}),
	)
}

func (ui *TitleUI) Update() {
	ui.UI.Update()
}

func (ui *TitleUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
