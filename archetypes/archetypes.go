package archetypes

import (
	"github.com/automoto/coinchase/components"
	"github.com/automoto/coinchase/config"
	"github.com/automoto/coinchase/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Session = newArchetype(
		tags.Session,
		components.Session,
	)
	Space = newArchetype(
		components.Space,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animated,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Coin,
		components.Object,
		components.Animated,
	)
	Popup = newArchetype(
		tags.Popup,
		components.Popup,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(config.LayerWorld, all...))
}
