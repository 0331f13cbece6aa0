package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load parses YAML overrides on top of Default() and validates the result.
// Fields missing from data keep their default values.
func Load(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFile reads and parses a YAML config file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Load(data)
}

// Validate reports every inconsistency in the configuration at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window scale must be positive, got %v", c.Window.Scale))
	}

	// Player
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Player.Width > float64(c.Canvas.Width) || c.Player.Height > float64(c.Canvas.Height) {
		errs = append(errs, errors.New("player does not fit on the canvas"))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player speed must not be negative, got %v", c.Player.Speed))
	}
	errs = append(errs, c.Player.Sheet.validate("player")...)
	errs = append(errs, c.Player.InitialAnimation.validate("player initial", c.Player.Sheet)...)
	for d := DirectionIdle; d < DirectionCount; d++ {
		def, ok := c.Player.Movement[d.String()]
		if !ok {
			errs = append(errs, fmt.Errorf("player movement animation %q is missing", d))
			continue
		}
		errs = append(errs, def.validate("player "+d.String(), c.Player.Sheet)...)
	}

	// Coin
	if c.Coin.Width <= 0 || c.Coin.Height <= 0 {
		errs = append(errs, fmt.Errorf("coin size must be positive, got %vx%v", c.Coin.Width, c.Coin.Height))
	}
	if c.Coin.Width > float64(c.Canvas.Width) || c.Coin.Height > float64(c.Canvas.Height) {
		errs = append(errs, errors.New("coin does not fit on the canvas"))
	}
	errs = append(errs, c.Coin.Sheet.validate("coin")...)
	errs = append(errs, c.Coin.Animation.validate("coin", c.Coin.Sheet)...)

	// Spawn
	if c.Spawn.MaxCoins < 0 {
		errs = append(errs, fmt.Errorf("maxCoins must not be negative, got %d", c.Spawn.MaxCoins))
	}
	if c.Spawn.MinIntervalMs < 0 || c.Spawn.MaxIntervalMs < c.Spawn.MinIntervalMs {
		errs = append(errs, fmt.Errorf("spawn interval must satisfy 0 <= min <= max, got [%v, %v]",
			c.Spawn.MinIntervalMs, c.Spawn.MaxIntervalMs))
	}

	if c.Effects.PopupDurationMs <= 0 {
		errs = append(errs, fmt.Errorf("popup duration must be positive, got %v", c.Effects.PopupDurationMs))
	}

	return errors.Join(errs...)
}

func (s SheetConfig) validate(owner string) []error {
	var errs []error
	if s.Columns <= 0 || s.Rows <= 0 {
		errs = append(errs, fmt.Errorf("%s sheet grid must be positive, got %dx%d", owner, s.Columns, s.Rows))
	}
	if s.FrameWidth <= 0 || s.FrameHeight <= 0 {
		errs = append(errs, fmt.Errorf("%s sheet frame size must be positive, got %dx%d", owner, s.FrameWidth, s.FrameHeight))
	}
	return errs
}

func (a AnimationDef) validate(owner string, sheet SheetConfig) []error {
	var errs []error
	if a.First < 0 || a.Last < a.First {
		errs = append(errs, fmt.Errorf("%s animation frames must satisfy 0 <= first <= last, got [%d, %d]", owner, a.First, a.Last))
	}
	if a.Last >= sheet.Frames() {
		errs = append(errs, fmt.Errorf("%s animation frame %d is outside the %d-frame sheet", owner, a.Last, sheet.Frames()))
	}
	if a.DurationMs <= 0 {
		errs = append(errs, fmt.Errorf("%s animation frame duration must be positive, got %v", owner, a.DurationMs))
	}
	return errs
}
