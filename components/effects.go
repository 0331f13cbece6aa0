package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PopupData is floating pickup text that rises and fades out.
type PopupData struct {
	Text   string
	X, Y   float64      // start position (text baseline origin)
	Rise   *gween.Tween // vertical offset in pixels, tweened over milliseconds
	Fade   *gween.Tween // alpha from 1 to 0
	Offset float64
	Alpha  float64
	Done   bool
}

var Popup = donburi.NewComponentType[PopupData]()
