package config

import "github.com/hajimehoshi/ebiten/v2"

// InputConfig maps physical keys to direction tokens
type InputConfig struct {
	Bindings map[Direction][]ebiten.Key
	Start    []ebiten.Key // Leaves the title screen
	Pause    []ebiten.Key
	Debug    ebiten.Key // Toggles the bounding box overlay
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[Direction][]ebiten.Key{
			DirectionUp:    {ebiten.KeyW, ebiten.KeyUp},
			DirectionDown:  {ebiten.KeyS, ebiten.KeyDown},
			DirectionLeft:  {ebiten.KeyA, ebiten.KeyLeft},
			DirectionRight: {ebiten.KeyD, ebiten.KeyRight},
		},
		Start: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
		Pause: []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape},
		Debug: ebiten.KeyF3,
	}
}
