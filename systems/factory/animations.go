package factory

import (
	"image"
	"image/color"

	"github.com/automoto/coinchase/components"
	cfg "github.com/automoto/coinchase/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewAnimated builds an AnimatedData for a grid sheet and starts def on it.
// sheet may be nil; the entity then renders as a fallback-colored box.
func NewAnimated(sheet *ebiten.Image, sc cfg.SheetConfig, fallback color.RGBA, def cfg.AnimationDef) *components.AnimatedData {
	animData := &components.AnimatedData{
		Sheet:       sheet,
		FrameRect:   image.Rect(0, 0, sc.FrameWidth, sc.FrameHeight),
		SheetCols:   sc.Columns,
		SheetFrames: sc.Frames(),
		Fallback:    fallback,
	}
	animData.SetAnimation(def.First, def.Last, def.Repeat, def.DurationMs)
	return animData
}
