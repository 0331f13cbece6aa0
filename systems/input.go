package systems

import (
	cfg "github.com/automoto/coinchase/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DirectionReceiver accepts held-direction changes.
type DirectionReceiver interface {
	AddKey(d cfg.Direction)
	DelKey(d cfg.Direction)
}

// KeyState answers keyboard queries for one frame.
type KeyState interface {
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
	Pressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }
func (ebitenKeys) Pressed(k ebiten.Key) bool      { return ebiten.IsKeyPressed(k) }

// Keyboard reads live Ebitengine key state.
var Keyboard KeyState = ebitenKeys{}

// PollDirections forwards this frame's key edges to r. A direction is
// released only once none of its bound keys is still held.
func PollDirections(keys KeyState, bindings map[cfg.Direction][]ebiten.Key, r DirectionReceiver) {
	for d := cfg.Direction(0); d < cfg.DirectionCount; d++ {
		bound := bindings[d]
		if len(bound) == 0 {
			continue
		}

		pressed, released, held := false, false, false
		for _, k := range bound {
			pressed = pressed || keys.JustPressed(k)
			released = released || keys.JustReleased(k)
			held = held || keys.Pressed(k)
		}

		if pressed {
			r.AddKey(d)
		} else if released && !held {
			r.DelKey(d)
		}
	}
}

// AnyJustPressed reports whether any of keys went down this frame.
func AnyJustPressed(keys KeyState, bound []ebiten.Key) bool {
	for _, k := range bound {
		if keys.JustPressed(k) {
			return true
		}
	}
	return false
}
