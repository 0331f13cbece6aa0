package factory

import (
	"github.com/automoto/coinchase/archetypes"
	"github.com/automoto/coinchase/components"
	cfg "github.com/automoto/coinchase/config"
	"github.com/automoto/coinchase/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at the canvas center, standing still and
// facing down.
func CreatePlayer(ecs *ecs.ECS, session *components.SessionData, space *resolv.Space) *donburi.Entry {
	c := session.Config
	player := archetypes.Player.Spawn(ecs)

	x := float64(c.Canvas.Width) / 2
	y := float64(c.Canvas.Height) / 2
	obj := resolv.NewObject(x, y, c.Player.Width, c.Player.Height)
	obj.SetShape(resolv.NewRectangle(0, 0, c.Player.Width, c.Player.Height))
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	space.Add(obj)

	components.Player.SetValue(player, components.PlayerData{
		PreviousFacing: cfg.DirectionDown,
		CurrentFacing:  cfg.DirectionDown,
	})
	components.Animated.Set(player, NewAnimated(
		session.PlayerSheet, c.Player.Sheet, cfg.RGBA(c.Player.Color), c.Player.InitialAnimation,
	))

	session.Player = player
	return player
}
