package factory

import (
	"github.com/automoto/coinchase/archetypes"
	"github.com/automoto/coinchase/components"
	cfg "github.com/automoto/coinchase/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession creates the singleton that holds configuration, the random
// source and the clock for one run.
func CreateSession(ecs *ecs.ECS, c *cfg.Config, rng components.RandomSource) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		Config: c,
		Rand:   rng,
	})
	return session
}
