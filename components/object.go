package components

import (
	"github.com/automoto/coinchase/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData places an entity in the world. The embedded resolv object is
// also registered with the session's space for broadphase queries.
type ObjectData struct {
	*resolv.Object
}

// Overlaps reports whether the two boxes strictly intersect.
func (o *ObjectData) Overlaps(other *ObjectData) bool {
	return gamemath.BoxOverlap(o.X, o.Y, o.W, o.H, other.X, other.Y, other.W, other.H)
}

func (o *ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()
