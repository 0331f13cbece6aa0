package systems

import (
	"fmt"

	cfg "github.com/automoto/coinchase/config"
	"github.com/automoto/coinchase/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudPanelWidth = 150
	hudLinePad    = 4
)

// DrawHUD renders the pickup counter, live coin count and run time in the
// top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	s := GetSession(ecs)
	hud := s.Config.HUD
	if !hud.Visible || !fonts.Loaded(fonts.Regular) {
		return
	}
	face := fonts.Regular.Get()

	lines := hudLines(s.Collected, len(s.Coins), s.Config.Spawn.MaxCoins, s.TotalElapsedMs)
	lineHeight := face.Metrics().Height.Ceil() + hudLinePad

	vector.FillRect(screen,
		float32(hud.Margin), float32(hud.Margin),
		hudPanelWidth, float32(lineHeight*len(lines)+hudLinePad),
		cfg.RGBA(hud.PanelColor), false)

	x := int(hud.Margin) + hudLinePad*2
	y := int(hud.Margin)
	for _, line := range lines {
		y += lineHeight
		text.Draw(screen, line, face, x, y, cfg.RGBA(hud.TextColor))
	}
}

func hudLines(collected, live, maxCoins int, elapsedMs float64) []string {
	return []string{
		fmt.Sprintf("Coins: %d", collected),
		fmt.Sprintf("On field: %d/%d", live, maxCoins),
		fmt.Sprintf("Time: %.1fs", elapsedMs/1000),
	}
}
