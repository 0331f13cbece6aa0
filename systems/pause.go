package systems

import (
	"image/color"

	"github.com/automoto/coinchase/components"
	"github.com/automoto/coinchase/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	pauseOverlayColor = color.RGBA{0, 0, 0, 150}
	pauseTextColor    = color.RGBA{255, 255, 255, 255}
)

// TogglePause flips the pause state and returns the new value.
func TogglePause(ecs *ecs.ECS) bool {
	pause := GetOrCreatePause(ecs)
	pause.IsPaused = !pause.IsPaused
	return pause.IsPaused
}

func IsPaused(ecs *ecs.ECS) bool {
	return GetOrCreatePause(ecs).IsPaused
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !IsPaused(ecs) || !fonts.Loaded(fonts.Title) {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), pauseOverlayColor, false)

	title := "PAUSED"
	titleFace := fonts.Title.Get()
	bounds := text.BoundString(titleFace, title) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, title, titleFace, int(width)/2-bounds.Dx()/2, int(height)/2, pauseTextColor)

	hint := "P / Esc: Resume"
	hintFace := fonts.Small.Get()
	hintBounds := text.BoundString(hintFace, hint) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, hint, hintFace, int(width)/2-hintBounds.Dx()/2, int(height)/2+40, pauseTextColor)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{IsPaused: false})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
