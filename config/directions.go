package config

// Direction is both a held movement key and the player's facing.
type Direction int

const (
	DirectionIdle Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
	DirectionCount // Must be last - used for array sizing
)

var directionNames = [DirectionCount]string{
	DirectionIdle:  "idle",
	DirectionUp:    "up",
	DirectionDown:  "down",
	DirectionLeft:  "left",
	DirectionRight: "right",
}

func (d Direction) String() string {
	if d < 0 || d >= DirectionCount {
		return "unknown"
	}
	return directionNames[d]
}

// IsMovement reports whether d is one of the four key directions.
func (d Direction) IsMovement() bool {
	return d > DirectionIdle && d < DirectionCount
}

// Axis returns the unit contribution of a movement direction.
// up/down move along y, left/right along x; screen y grows downward.
func (d Direction) Axis() (dx, dy float64) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	}
	return 0, 0
}

// ParseDirection maps a token such as "up" to its Direction.
func ParseDirection(s string) (Direction, bool) {
	for d, name := range directionNames {
		if name == s {
			return Direction(d), true
		}
	}
	return DirectionIdle, false
}
