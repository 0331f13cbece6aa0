package systems

import (
	"log"

	"github.com/automoto/coinchase/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner spawns a coin once the spawn time has passed, unless the
// field is already full.
func UpdateSpawner(ecs *ecs.ECS) {
	s := GetSession(ecs)
	if s.TotalElapsedMs >= s.NextSpawnAtMs && len(s.Coins) < s.Config.Spawn.MaxCoins {
		SpawnCoin(ecs)
	}
}

// SpawnCoin places a coin at a random spot fully inside the canvas and
// schedules the next spawn. Random values are drawn for x, y, then the
// interval.
func SpawnCoin(ecs *ecs.ECS) *donburi.Entry {
	s := GetSession(ecs)
	c := s.Config

	x := s.Rand.Float64() * (float64(c.Canvas.Width) - c.Coin.Width)
	y := s.Rand.Float64() * (float64(c.Canvas.Height) - c.Coin.Height)
	coin := factory.CreateCoin(ecs, s, GetSpace(ecs), x, y)

	interval := c.Spawn.MinIntervalMs + s.Rand.Float64()*(c.Spawn.MaxIntervalMs-c.Spawn.MinIntervalMs)
	s.NextSpawnAtMs = s.TotalElapsedMs + interval

	if c.Debug.LogEvents {
		log.Printf("[spawn] coin #%d at (%.0f, %.0f), next in %.0fms", s.Spawned, x, y, interval)
	}
	return coin
}
