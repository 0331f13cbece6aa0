package factory

import (
	"github.com/automoto/coinchase/archetypes"
	"github.com/automoto/coinchase/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the broadphase grid covering a width x height area.
// The grid is rounded up so partial cells at the edges are still tracked.
func CreateSpace(ecs *ecs.ECS, width, height, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	w := (width + cellSize - 1) / cellSize * cellSize
	h := (height + cellSize - 1) / cellSize * cellSize
	spaceData := resolv.NewSpace(w, h, cellSize, cellSize)
	components.Space.Set(space, spaceData)
	return space
}
