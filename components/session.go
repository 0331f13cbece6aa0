package components

import (
	"github.com/automoto/coinchase/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// RandomSource yields values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// SessionData is the singleton holding per-run game state.
type SessionData struct {
	Config *config.Config
	Rand   RandomSource

	PlayerSheet *ebiten.Image // nil draws the player as a colored box
	CoinSheet   *ebiten.Image // shared by every coin

	DeltaMs        float64 // length of the tick being processed
	TotalElapsedMs float64
	NextSpawnAtMs  float64

	Player    *donburi.Entry
	Coins     []*donburi.Entry // live coins in spawn order
	Spawned   int
	Collected int
}

var Session = donburi.NewComponentType[SessionData]()
