package config

// AnimationDef is a contiguous run of sheet frames played at a fixed rate.
type AnimationDef struct {
	First      int     `yaml:"first"`
	Last       int     `yaml:"last"`
	Repeat     bool    `yaml:"repeat"`
	DurationMs float64 `yaml:"durationMs"` // time each frame stays on screen
}
