package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/coinchase/components"
	cfg "github.com/automoto/coinchase/config"
	"github.com/automoto/coinchase/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every box registered with the broadphase space.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	s := GetSession(ecs)
	if !s.Config.Debug.ShowBounds {
		return
	}

	space := GetSpace(ecs)
	for _, obj := range space.Objects() {
		c := cfg.Cyan
		if obj.HasTags(tags.ResolvPlayer) {
			c = cfg.Blue
		} else if obj.HasTags(tags.ResolvCoin) {
			c = cfg.Green
		}
		drawOutline(screen, obj.X, obj.Y, obj.W, obj.H, c)
	}

	msg := fmt.Sprintf("TPS: %0.1f\nt=%.0fms next=%.0fms\nspawned=%d",
		ebiten.ActualTPS(), s.TotalElapsedMs, s.NextSpawnAtMs, s.Spawned)
	if s.Player != nil && s.Player.Valid() {
		p := components.Player.Get(s.Player)
		msg += fmt.Sprintf("\nfacing=%s frame=%d", p.CurrentFacing, components.Animated.Get(s.Player).Frame())
	}
	ebitenutil.DebugPrintAt(screen, msg, screen.Bounds().Dx()-180, 4)
}

func drawOutline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
