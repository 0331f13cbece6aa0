package factory

import (
	"github.com/automoto/coinchase/archetypes"
	"github.com/automoto/coinchase/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePopup spawns floating pickup text at x, y.
func CreatePopup(ecs *ecs.ECS, session *components.SessionData, x, y float64) *donburi.Entry {
	fx := session.Config.Effects
	popup := archetypes.Popup.Spawn(ecs)

	d := float32(fx.PopupDurationMs)
	components.Popup.SetValue(popup, components.PopupData{
		Text:  fx.PopupText,
		X:     x,
		Y:     y,
		Rise:  gween.New(0, float32(fx.PopupRise), d, ease.OutCubic),
		Fade:  gween.New(1, 0, d, ease.InQuad),
		Alpha: 1,
	})

	return popup
}
