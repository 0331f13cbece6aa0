package scenes

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/coinchase/assets"
	"github.com/automoto/coinchase/components"
	cfg "github.com/automoto/coinchase/config"
	"github.com/automoto/coinchase/systems"
	"github.com/automoto/coinchase/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PlayScene runs a coin chase session. It turns wall-clock time into tick
// lengths and keyboard edges into held directions.
type PlayScene struct {
	config *cfg.Config
	rng    components.RandomSource
	world  *world.World
	clock  world.FrameClock
	start  time.Time
	once   sync.Once
}

func NewPlayScene(c *cfg.Config, rng components.RandomSource) *PlayScene {
	return &PlayScene{config: c, rng: rng}
}

func (ps *PlayScene) Update() {
	ps.once.Do(ps.configure)

	if inpututil.IsKeyJustPressed(cfg.Input.Debug) {
		ps.config.Debug.ShowBounds = !ps.config.Debug.ShowBounds
	}
	if systems.AnyJustPressed(systems.Keyboard, cfg.Input.Pause) {
		ps.world.TogglePause()
	}
	systems.PollDirections(systems.Keyboard, cfg.Input.Bindings, ps.world)

	now := float64(time.Since(ps.start).Microseconds()) / 1000
	ps.world.Update(ps.clock.Tick(now))
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	if ps.world == nil {
		return
	}
	ps.world.Draw(screen)
}

func (ps *PlayScene) configure() {
	playerSheet := loadSheet(ps.config.Player.Sheet.Name)
	coinSheet := loadSheet(ps.config.Coin.Sheet.Name)

	ps.world = world.New(ps.config, ps.rng, world.WithSheets(playerSheet, coinSheet))
	ps.start = time.Now()
}

// loadSheet returns nil when the sheet is not embedded, which switches the
// entity to colored box rendering.
func loadSheet(name string) *ebiten.Image {
	if name == "" {
		return nil
	}
	if !assets.Has(name) {
		log.Printf("Warning: sprite sheet %s not found, drawing boxes", name)
		return nil
	}
	return assets.Sheet(name)
}
