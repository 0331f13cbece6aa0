package systems

import (
	"github.com/automoto/coinchase/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCoins drops coins collected on an earlier tick and animates the rest.
// The walk runs from the back so removal keeps earlier indexes valid.
func UpdateCoins(ecs *ecs.ECS) {
	s := GetSession(ecs)
	space := GetSpace(ecs)

	for i := len(s.Coins) - 1; i >= 0; i-- {
		e := s.Coins[i]
		if components.Coin.Get(e).Collected {
			space.Remove(components.Object.Get(e).Object)
			ecs.World.Remove(e.Entity())
			s.Coins = append(s.Coins[:i], s.Coins[i+1:]...)
			continue
		}
		components.Animated.Get(e).UpdateFrame(s.DeltaMs)
	}
}
