package components

import "github.com/yohamta/donburi"

type CoinData struct {
	Collected bool // set once on pickup, never cleared
}

var Coin = donburi.NewComponentType[CoinData]()
