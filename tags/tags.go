package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Coin    = donburi.NewTag().SetName("Coin")
	Popup   = donburi.NewTag().SetName("Popup")
	Session = donburi.NewTag().SetName("Session")
)

// Resolv tags for broadphase queries
const (
	ResolvPlayer = "player"
	ResolvCoin   = "coin"
)
