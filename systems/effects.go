package systems

import (
	"github.com/automoto/coinchase/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances pickup popups and removes the finished ones.
func UpdateEffects(ecs *ecs.ECS) {
	s := GetSession(ecs)
	dt := float32(s.DeltaMs)

	var toRemove []*donburi.Entry
	components.Popup.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Popup.Get(e)
		offset, riseDone := p.Rise.Update(dt)
		alpha, fadeDone := p.Fade.Update(dt)
		p.Offset = float64(offset)
		p.Alpha = float64(alpha)
		p.Done = riseDone && fadeDone
		if p.Done {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		ecs.World.Remove(e.Entity())
	}
}
