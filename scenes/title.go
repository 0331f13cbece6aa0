package scenes

import (
	"sync"

	cfg "github.com/automoto/coinchase/config"
	"github.com/automoto/coinchase/systems"
	"github.com/automoto/coinchase/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// TitleScene shows the start screen until Play is clicked or a start key
// is pressed.
type TitleScene struct {
	sceneChanger SceneChanger
	titleUI      *ui.TitleUI
	newPlay      func() Scene
	title        string
	once         sync.Once
	started      bool
}

func NewTitleScene(sc SceneChanger, title string, newPlay func() Scene) *TitleScene {
	return &TitleScene{sceneChanger: sc, title: title, newPlay: newPlay}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)

	ts.titleUI.Update()
	if systems.AnyJustPressed(systems.Keyboard, cfg.Input.Start) {
		ts.started = true
	}

	if ts.started {
		ts.sceneChanger.ChangeScene(ts.newPlay())
	}
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	if ts.titleUI == nil {
		return
	}
	ts.titleUI.Draw(screen)
}

func (ts *TitleScene) configure() {
	ts.titleUI = ui.NewTitleUI(ts.title, func() {
		ts.started = true
	})
}
