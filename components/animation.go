package components

import (
	"fmt"
	"image"
	"image/color"

	"github.com/automoto/coinchase/assets/animations"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// AnimatedData draws an entity from a grid sprite sheet, one cell per frame.
// Sheet may be nil, in which case the entity is drawn as a Fallback rectangle.
type AnimatedData struct {
	Animation   *animations.Animation
	Sheet       *ebiten.Image
	FrameRect   image.Rectangle // size of one cell
	SheetCols   int
	SheetFrames int
	Fallback    color.RGBA
	frames      map[int]*ebiten.Image // sub-images keyed by sheet index
}

// SetAnimation replaces the running animation and restarts it from first,
// even when the parameters are unchanged.
func (a *AnimatedData) SetAnimation(first, last int, repeat bool, durationMs float64) {
	if a.SheetFrames > 0 && last >= a.SheetFrames {
		panic(fmt.Sprintf("animation frame %d is outside the %d-frame sheet", last, a.SheetFrames))
	}
	a.Animation = animations.NewAnimation(first, last, repeat, durationMs)
}

func (a *AnimatedData) UpdateFrame(dt float64) {
	if a.Animation == nil {
		return
	}
	a.Animation.Update(dt)
}

func (a *AnimatedData) Frame() int {
	if a.Animation == nil {
		return 0
	}
	return a.Animation.Frame()
}

// SourceRect returns the sheet region of cell i, counted left to right,
// top to bottom.
func (a *AnimatedData) SourceRect(i int) image.Rectangle {
	if i < 0 || (a.SheetFrames > 0 && i >= a.SheetFrames) {
		panic(fmt.Sprintf("frame index %d is outside the %d-frame sheet", i, a.SheetFrames))
	}
	cols := max(a.SheetCols, 1)
	w, h := a.FrameRect.Dx(), a.FrameRect.Dy()
	x := a.FrameRect.Min.X + (i%cols)*w
	y := a.FrameRect.Min.Y + (i/cols)*h
	return image.Rect(x, y, x+w, y+h)
}

// FrameImage returns the current frame's sub-image, or nil without a sheet.
func (a *AnimatedData) FrameImage() *ebiten.Image {
	if a.Sheet == nil {
		return nil
	}
	i := a.Frame()
	if img, ok := a.frames[i]; ok {
		return img
	}
	if a.frames == nil {
		a.frames = make(map[int]*ebiten.Image)
	}
	img := a.Sheet.SubImage(a.SourceRect(i)).(*ebiten.Image)
	a.frames[i] = img
	return img
}

var Animated = donburi.NewComponentType[AnimatedData]()
