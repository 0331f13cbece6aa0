package systems

import (
	"log"

	"github.com/automoto/coinchase/components"
	"github.com/automoto/coinchase/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCollisions(ecs *ecs.ECS) {
	CheckCollisions(ecs)
}

// CheckCollisions marks every uncollected coin overlapping the player as
// collected and returns how many were picked up. Coins are tested in spawn
// order against the exact boxes; the resolv grid rounds boxes to whole
// pixels and can miss sub-pixel overlaps across a cell boundary.
func CheckCollisions(ecs *ecs.ECS) int {
	s := GetSession(ecs)
	if s.Player == nil || !s.Player.Valid() {
		return 0
	}
	playerObj := components.Object.Get(s.Player)

	picked := 0
	for _, e := range s.Coins {
		if !e.Valid() {
			continue
		}
		coin := components.Coin.Get(e)
		coinObj := components.Object.Get(e)
		if coin.Collected || !playerObj.Overlaps(coinObj) {
			continue
		}

		coin.Collected = true
		s.Collected++
		picked++

		cx, _ := coinObj.Center()
		factory.CreatePopup(ecs, s, cx, coinObj.Y)

		if s.Config.Debug.LogEvents {
			log.Printf("[pickup] coin at (%.0f, %.0f), total %d", coinObj.X, coinObj.Y, s.Collected)
		}
	}
	return picked
}
