package components

import "github.com/yohamta/donburi"

// PauseData stores whether the session clock is stopped
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
