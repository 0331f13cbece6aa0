package main

import (
	"flag"
	"image"
	"log"
	"math/rand"
	"time"

	"github.com/automoto/coinchase/config"
	"github.com/automoto/coinchase/fonts"
	"github.com/automoto/coinchase/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	config *config.Config
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

func NewGame(c *config.Config, seed int64) *Game {
	fonts.LoadDefaults(c.HUD.FontSize)

	g := &Game{
		bounds: image.Rectangle{},
		config: c,
	}

	newPlay := func() scenes.Scene {
		return scenes.NewPlayScene(c, rand.New(rand.NewSource(seed)))
	}

	if c.Debug.SkipTitle {
		g.scene = newPlay()
	} else {
		g.scene = scenes.NewTitleScene(g, c.Window.Title, newPlay)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, g.config.Canvas.Width, g.config.Canvas.Height)
	return g.config.Canvas.Width, g.config.Canvas.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default configuration")
	seed := flag.Int64("seed", 0, "random seed for coin placement (0 uses the clock)")
	debug := flag.Bool("debug", false, "outline collision boxes and log spawns and pickups")
	skipTitle := flag.Bool("skip-title", false, "start playing immediately")
	flag.Parse()

	c := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		c = loaded
	}
	if *debug {
		c.Debug.ShowBounds = true
		c.Debug.LogEvents = true
	}
	if *skipTitle {
		c.Debug.SkipTitle = true
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if c.Debug.LogEvents {
		log.Printf("[coinchase] seed %d", *seed)
	}

	ebiten.SetWindowTitle(c.Window.Title)
	ebiten.SetWindowSize(int(float64(c.Canvas.Width)*c.Window.Scale), int(float64(c.Canvas.Height)*c.Window.Scale))

	if err := ebiten.RunGame(NewGame(c, *seed)); err != nil {
		log.Fatal(err)
	}
}
