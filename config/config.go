package config

import "image/color"

// WindowConfig contains desktop window settings
type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"` // Window size multiplier over the canvas size
}

// CanvasConfig contains the logical drawing surface dimensions
type CanvasConfig struct {
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	Background [4]uint8 `yaml:"background"` // RGBA clear color
}

// SheetConfig describes a sprite sheet laid out as a grid of equal-size cells
type SheetConfig struct {
	Name        string `yaml:"name"`    // Embedded sheet file, e.g. "player.png"
	Columns     int    `yaml:"columns"` // Cells per row
	Rows        int    `yaml:"rows"`
	FrameWidth  int    `yaml:"frameWidth"`
	FrameHeight int    `yaml:"frameHeight"`
}

// Frames returns the total number of cells in the sheet.
func (s SheetConfig) Frames() int {
	return s.Columns * s.Rows
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Movement
	Speed float64 `yaml:"speed"` // pixels per millisecond

	// Visual
	Color            [4]uint8                `yaml:"color"` // Drawn when the sheet is missing
	Sheet            SheetConfig             `yaml:"sheet"`
	InitialAnimation AnimationDef            `yaml:"initialAnimation"`
	Movement         map[string]AnimationDef `yaml:"movement"` // Keyed by Direction.String()
}

// CoinConfig contains collectible coin configuration
type CoinConfig struct {
	Width     float64      `yaml:"width"`
	Height    float64      `yaml:"height"`
	Color     [4]uint8     `yaml:"color"`
	Sheet     SheetConfig  `yaml:"sheet"`
	Animation AnimationDef `yaml:"animation"`
}

// SpawnConfig contains coin spawn timing
type SpawnConfig struct {
	MaxCoins      int     `yaml:"maxCoins"`      // Live coins allowed at once
	MinIntervalMs float64 `yaml:"minIntervalMs"` // Minimum time between spawns
	MaxIntervalMs float64 `yaml:"maxIntervalMs"` // Maximum time between spawns
}

// EffectsConfig contains pickup popup configuration
type EffectsConfig struct {
	PopupText       string   `yaml:"popupText"`
	PopupDurationMs float64  `yaml:"popupDurationMs"`
	PopupRise       float64  `yaml:"popupRise"` // pixels travelled upward
	PopupColor      [4]uint8 `yaml:"popupColor"`
}

// HUDConfig contains on-screen counters configuration
type HUDConfig struct {
	Visible    bool     `yaml:"visible"`
	Margin     float64  `yaml:"margin"`
	FontSize   float64  `yaml:"fontSize"`
	TextColor  [4]uint8 `yaml:"textColor"`
	PanelColor [4]uint8 `yaml:"panelColor"`
}

// DebugConfig contains debug/testing options, usually set from command-line flags
type DebugConfig struct {
	ShowBounds bool `yaml:"showBounds"` // Outline every collision box
	LogEvents  bool `yaml:"logEvents"`  // Log spawns and pickups
	SkipTitle  bool `yaml:"skipTitle"`  // Go directly to the game
}

// Config holds the complete game configuration. It is built once at startup
// and treated as read-only afterwards.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Canvas  CanvasConfig  `yaml:"canvas"`
	Player  PlayerConfig  `yaml:"player"`
	Coin    CoinConfig    `yaml:"coin"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Effects EffectsConfig `yaml:"effects"`
	HUD     HUDConfig     `yaml:"hud"`
	Debug   DebugConfig   `yaml:"debug"`
}

// MovementFor returns the animation played while the player faces d.
func (p *PlayerConfig) MovementFor(d Direction) AnimationDef {
	return p.Movement[d.String()]
}

// RGBA converts a [4]uint8 config color to color.RGBA.
func RGBA(c [4]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// Debug overlay colors
var (
	Green = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan  = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Blue  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

// frameDelay is the shared per-frame duration of every default animation.
const frameDelay = 200.0

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title: "Coin Chase",
			Scale: 1,
		},
		Canvas: CanvasConfig{
			Width:      800,
			Height:     600,
			Background: [4]uint8{24, 28, 40, 255},
		},
		Player: PlayerConfig{
			Width:  32,
			Height: 32,
			Speed:  0.5,
			Color:  [4]uint8{255, 0, 0, 255},
			Sheet: SheetConfig{
				Name:        "player.png",
				Columns:     10,
				Rows:        8,
				FrameWidth:  32,
				FrameHeight: 32,
			},
			// Standing still, single frame, until the first update picks a facing
			InitialAnimation: AnimationDef{First: 7, Last: 7, Repeat: false, DurationMs: frameDelay},
			Movement: map[string]AnimationDef{
				DirectionUp.String():    {First: 60, Last: 69, Repeat: true, DurationMs: frameDelay},
				DirectionDown.String():  {First: 40, Last: 49, Repeat: true, DurationMs: frameDelay},
				DirectionLeft.String():  {First: 50, Last: 59, Repeat: true, DurationMs: frameDelay},
				DirectionRight.String(): {First: 70, Last: 79, Repeat: true, DurationMs: frameDelay},
				DirectionIdle.String():  {First: 0, Last: 2, Repeat: true, DurationMs: frameDelay},
			},
		},
		Coin: CoinConfig{
			Width:  32,
			Height: 32,
			Color:  [4]uint8{255, 215, 0, 255},
			Sheet: SheetConfig{
				Name:        "coin_gold.png",
				Columns:     8,
				Rows:        1,
				FrameWidth:  32,
				FrameHeight: 32,
			},
			Animation: AnimationDef{First: 0, Last: 7, Repeat: true, DurationMs: frameDelay},
		},
		Spawn: SpawnConfig{
			MaxCoins:      5,
			MinIntervalMs: 1000,
			MaxIntervalMs: 3000,
		},
		Effects: EffectsConfig{
			PopupText:       "+1",
			PopupDurationMs: 600,
			PopupRise:       24,
			PopupColor:      [4]uint8{255, 230, 90, 255},
		},
		HUD: HUDConfig{
			Visible:    true,
			Margin:     10,
			FontSize:   14,
			TextColor:  [4]uint8{255, 255, 255, 255},
			PanelColor: [4]uint8{0, 0, 0, 160},
		},
	}
}
