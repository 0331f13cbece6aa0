package scenes

import "github.com/hajimehoshi/ebiten/v2"

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Scene is a full-screen game state driven by the Ebitengine loop.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}
