package systems

import (
	stdmath "math"

	"github.com/automoto/coinchase/components"
	cfg "github.com/automoto/coinchase/config"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func UpdatePlayer(ecs *ecs.ECS) {
	s := GetSession(ecs)
	if s.Player == nil || !s.Player.Valid() {
		return
	}

	player := components.Player.Get(s.Player)
	animData := components.Animated.Get(s.Player)
	obj := components.Object.Get(s.Player)

	setVelocity(player, s.Config.Player.Speed)
	setMovementAnimation(player, animData, &s.Config.Player)

	obj.X += player.Velocity.X * s.DeltaMs
	obj.Y += player.Velocity.Y * s.DeltaMs
	constrainToCanvas(obj, float64(s.Config.Canvas.Width), float64(s.Config.Canvas.Height))
	obj.Update()

	animData.UpdateFrame(s.DeltaMs)
}

// setVelocity sums the held directions into a vector of length speed.
// Opposite keys cancel out.
func setVelocity(player *components.PlayerData, speed float64) {
	var v math.Vec2
	player.Keys.Each(func(d cfg.Direction) {
		dx, dy := d.Axis()
		v = v.Add(math.Vec2{X: dx, Y: dy})
	})
	player.Velocity = v.Normalized().MulScalar(speed)
}

// facingFor picks the dominant axis of v. Ties go to the horizontal axis.
func facingFor(v math.Vec2) cfg.Direction {
	if stdmath.Abs(v.Y) > stdmath.Abs(v.X) {
		switch {
		case v.Y > 0:
			return cfg.DirectionDown
		case v.Y < 0:
			return cfg.DirectionUp
		}
		return cfg.DirectionIdle
	}
	switch {
	case v.X > 0:
		return cfg.DirectionRight
	case v.X < 0:
		return cfg.DirectionLeft
	}
	return cfg.DirectionIdle
}

// setMovementAnimation restarts the walk cycle only when the facing changes,
// so holding a key keeps the cycle running.
func setMovementAnimation(player *components.PlayerData, animData *components.AnimatedData, pc *cfg.PlayerConfig) {
	player.CurrentFacing = facingFor(player.Velocity)
	if player.CurrentFacing != player.PreviousFacing {
		def := pc.MovementFor(player.CurrentFacing)
		animData.SetAnimation(def.First, def.Last, def.Repeat, def.DurationMs)
	}
	player.PreviousFacing = player.CurrentFacing
}

// constrainToCanvas pulls the box back inside the canvas. At most one edge
// is corrected per call, checked top, bottom, left, right.
func constrainToCanvas(obj *components.ObjectData, width, height float64) {
	if obj.Y < 0 {
		obj.Y = 0
	} else if obj.Y+obj.H > height {
		obj.Y = height - obj.H
	} else if obj.X < 0 {
		obj.X = 0
	} else if obj.X+obj.W > width {
		obj.X = width - obj.W
	}
}
