package systems

import (
	"image/color"

	"github.com/automoto/coinchase/components"
	cfg "github.com/automoto/coinchase/config"
	"github.com/automoto/coinchase/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.RGBA(GetSession(ecs).Config.Canvas.Background))
}

func DrawCoins(ecs *ecs.ECS, screen *ebiten.Image) {
	for _, e := range visibleCoins(GetSession(ecs)) {
		drawAnimated(screen, e)
	}
}

// visibleCoins returns the live coins in spawn order. Collected coins waiting
// to be pruned are left out.
func visibleCoins(s *components.SessionData) []*donburi.Entry {
	coins := make([]*donburi.Entry, 0, len(s.Coins))
	for _, e := range s.Coins {
		if !e.Valid() || components.Coin.Get(e).Collected {
			continue
		}
		coins = append(coins, e)
	}
	return coins
}

func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	s := GetSession(ecs)
	if s.Player == nil || !s.Player.Valid() {
		return
	}
	drawAnimated(screen, s.Player)
}

func DrawPopups(ecs *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.Bold) {
		return
	}
	face := fonts.Bold.Get()
	base := cfg.RGBA(GetSession(ecs).Config.Effects.PopupColor)

	components.Popup.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Popup.Get(e)
		if p.Done {
			return
		}
		bounds := text.BoundString(face, p.Text) //nolint:staticcheck // TODO: migrate to text/v2
		x := int(p.X) - bounds.Dx()/2
		y := int(p.Y - p.Offset)
		text.Draw(screen, p.Text, face, x, y, fade(base, p.Alpha))
	})
}

// drawAnimated draws the entity's current frame scaled to its box, or a
// filled box in the fallback color when it has no sheet.
func drawAnimated(screen *ebiten.Image, e *donburi.Entry) {
	o := components.Object.Get(e)
	animData := components.Animated.Get(e)

	img := animData.FrameImage()
	if img == nil {
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), animData.Fallback, false)
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	fw, fh := animData.FrameRect.Dx(), animData.FrameRect.Dy()
	drawOp.GeoM.Scale(o.W/float64(fw), o.H/float64(fh))
	drawOp.GeoM.Translate(o.X, o.Y)
	screen.DrawImage(img, drawOp)
}

// fade scales a straight-alpha color by a into premultiplied form.
func fade(c color.RGBA, a float64) color.RGBA {
	a = min(max(a, 0), 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
