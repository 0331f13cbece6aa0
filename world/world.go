// Package world runs one coin chase session: the player, the live coins,
// the spawn timer and pickups, advanced by explicit millisecond ticks.
package world

import (
	"fmt"
	stdmath "math"

	"github.com/automoto/coinchase/components"
	cfg "github.com/automoto/coinchase/config"
	"github.com/automoto/coinchase/systems"
	"github.com/automoto/coinchase/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceCellSize is the resolv grid cell edge in pixels.
const spaceCellSize = 32

type renderer struct {
	name  string
	layer ecs.LayerID
	draw  func(*ecs.ECS, *ebiten.Image)
}

// renderers run in order within each layer: coins go under pickup popups,
// and the player is drawn last so it stays on top.
var renderers = []renderer{
	{"background", cfg.LayerWorld, systems.DrawBackground},
	{"coins", cfg.LayerWorld, systems.DrawCoins},
	{"popups", cfg.LayerWorld, systems.DrawPopups},
	{"player", cfg.LayerWorld, systems.DrawPlayer},
	{"hud", cfg.LayerHUD, systems.DrawHUD},
	{"debug", cfg.LayerHUD, systems.DrawDebug},
	{"pause", cfg.LayerHUD, systems.DrawPause},
}

type options struct {
	playerSheet *ebiten.Image
	coinSheet   *ebiten.Image
}

type Option func(*options)

// WithSheets sets the sprite sheets. Without them entities are drawn as
// boxes in their configured colors.
func WithSheets(player, coin *ebiten.Image) Option {
	return func(o *options) {
		o.playerSheet = player
		o.coinSheet = coin
	}
}

// World owns the ECS for one session.
type World struct {
	ecs *ecs.ECS
}

// New creates a world with the player at the canvas center and no coins.
// The first coin spawns on the first update.
func New(c *cfg.Config, rng components.RandomSource, opts ...Option) *World {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	e := ecs.NewECS(donburi.NewWorld())

	sessionEntry := factory.CreateSession(e, c, rng)
	session := components.Session.Get(sessionEntry)
	session.PlayerSheet = o.playerSheet
	session.CoinSheet = o.coinSheet

	spaceEntry := factory.CreateSpace(e, c.Canvas.Width, c.Canvas.Height, spaceCellSize)
	factory.CreatePlayer(e, session, components.Space.Get(spaceEntry))

	e.AddSystem(systems.WithPauseCheck(systems.UpdateClock))
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCoins))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateSpawner))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCollisions))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))

	for _, r := range renderers {
		e.AddRenderer(r.layer, r.draw)
	}

	return &World{ecs: e}
}

func (w *World) session() *components.SessionData {
	return systems.GetSession(w.ecs)
}

// Update advances the session by dt milliseconds.
func (w *World) Update(dt float64) {
	if dt < 0 || stdmath.IsNaN(dt) {
		panic(fmt.Sprintf("world update with invalid dt %v", dt))
	}
	w.session().DeltaMs = dt
	w.ecs.Update()
}

func (w *World) Draw(screen *ebiten.Image) {
	w.ecs.Draw(screen)
}

// TogglePause stops or resumes the session and returns the new state.
// While paused, Update leaves the world untouched.
func (w *World) TogglePause() bool {
	return systems.TogglePause(w.ecs)
}

func (w *World) Paused() bool {
	return systems.IsPaused(w.ecs)
}

// AddKey marks d as held. Repeats and non-movement directions are ignored.
func (w *World) AddKey(d cfg.Direction) {
	components.Player.Get(w.session().Player).Keys.Add(d)
}

// DelKey releases d. Releasing a direction that is not held is a no-op.
func (w *World) DelKey(d cfg.Direction) {
	components.Player.Get(w.session().Player).Keys.Remove(d)
}

// SpawnCoin adds a coin at a random position and reschedules the next spawn.
func (w *World) SpawnCoin() *donburi.Entry {
	return systems.SpawnCoin(w.ecs)
}

// CheckCollisions collects every coin overlapping the player and returns
// the number picked up.
func (w *World) CheckCollisions() int {
	return systems.CheckCollisions(w.ecs)
}

func (w *World) Player() *donburi.Entry {
	return w.session().Player
}

// Coins returns the live coins in spawn order. The slice is a copy.
func (w *World) Coins() []*donburi.Entry {
	return append([]*donburi.Entry(nil), w.session().Coins...)
}

func (w *World) TotalElapsed() float64 {
	return w.session().TotalElapsedMs
}

func (w *World) NextSpawnAt() float64 {
	return w.session().NextSpawnAtMs
}

// Collected is the number of coins picked up so far.
func (w *World) Collected() int {
	return w.session().Collected
}

func (w *World) Config() *cfg.Config {
	return w.session().Config
}

// ECS exposes the underlying entity system.
func (w *World) ECS() *ecs.ECS {
	return w.ecs
}
