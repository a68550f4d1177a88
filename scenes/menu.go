package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/automoto/terra-firma/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuScene displays the main menu
type MenuScene struct {
	ui           *ui.MenuUI
	sceneChanger SceneChanger
	session      *Session
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, session *Session) *MenuScene {
	return &MenuScene{sceneChanger: sc, session: session}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ui.UI.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ms.start()
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ui == nil {
		return
	}
	ms.ui.UI.Draw(screen)
}

func (ms *MenuScene) start() {
	ms.sceneChanger.ChangeScene(NewGameplayScene(ms.sceneChanger, ms.session))
}

func (ms *MenuScene) configure() {
	ms.ui = ui.NewMenuUI(ms.start, func() { os.Exit(0) })
}
