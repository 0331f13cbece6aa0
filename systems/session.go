package systems

import (
	"github.com/automoto/coinchase/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// GetSession returns the run's session singleton.
func GetSession(ecs *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		panic("session entity missing from world")
	}
	return components.Session.Get(entry)
}

func GetSpace(ecs *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		panic("space entity missing from world")
	}
	return components.Space.Get(entry)
}

// UpdateClock accumulates the tick length into the total running time.
func UpdateClock(ecs *ecs.ECS) {
	s := GetSession(ecs)
	s.TotalElapsedMs += s.DeltaMs
}
