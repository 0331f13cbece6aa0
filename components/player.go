package components

import (
	"github.com/automoto/coinchase/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// DirectionSet holds the movement directions currently held down.
type DirectionSet struct {
	held [config.DirectionCount]bool
}

// Add marks d as held. Adding twice or adding a non-movement direction
// has no effect.
func (s *DirectionSet) Add(d config.Direction) {
	if d.IsMovement() {
		s.held[d] = true
	}
}

func (s *DirectionSet) Remove(d config.Direction) {
	if d.IsMovement() {
		s.held[d] = false
	}
}

func (s *DirectionSet) Has(d config.Direction) bool {
	return d.IsMovement() && s.held[d]
}

func (s *DirectionSet) Len() int {
	n := 0
	for _, h := range s.held {
		if h {
			n++
		}
	}
	return n
}

// Each calls fn for every held direction in Direction order.
func (s *DirectionSet) Each(fn func(config.Direction)) {
	for d := config.Direction(0); d < config.DirectionCount; d++ {
		if s.held[d] {
			fn(d)
		}
	}
}

type PlayerData struct {
	Velocity       math.Vec2 // pixels per millisecond
	Keys           DirectionSet
	PreviousFacing config.Direction
	CurrentFacing  config.Direction
}

var Player = donburi.NewComponentType[PlayerData]()
