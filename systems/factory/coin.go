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

// CreateCoin spawns an uncollected coin at x, y and appends it to the
// session's live coins.
func CreateCoin(ecs *ecs.ECS, session *components.SessionData, space *resolv.Space, x, y float64) *donburi.Entry {
	c := session.Config
	coin := archetypes.Coin.Spawn(ecs)

	obj := resolv.NewObject(x, y, c.Coin.Width, c.Coin.Height)
	obj.SetShape(resolv.NewRectangle(0, 0, c.Coin.Width, c.Coin.Height))
	obj.AddTags(tags.ResolvCoin)
	obj.Data = coin
	components.Object.SetValue(coin, components.ObjectData{Object: obj})
	space.Add(obj)

	components.Coin.SetValue(coin, components.CoinData{})
	components.Animated.Set(coin, NewAnimated(
		session.CoinSheet, c.Coin.Sheet, cfg.RGBA(c.Coin.Color), c.Coin.Animation,
	))

	session.Coins = append(session.Coins, coin)
	session.Spawned++
	return coin
}
