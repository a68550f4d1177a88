package ui

import (
	cfg "github.com/automoto/terra-firma/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
)

// PauseUI is drawn over the dimmed world while gameplay is paused
type PauseUI struct {
	UI *ebitenui.UI

	OnResume func()
	OnExit   func()
}

func NewPauseUI(onResume, onExit func()) *PauseUI {
	ui := &PauseUI{
		OnResume: onResume,
		OnExit:   onExit,
	}
	loadFonts()
	ui.buildUI()
	return ui
}

func (ui *PauseUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := centeredColumn(8)
	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	))

	handlers := map[string]func(){
		"Resume": func() {
			if ui.OnResume != nil {
				ui.OnResume()
			}
		},
		"Main Menu": func() {
			if ui.OnExit != nil {
				ui.OnExit()
			}
		},
	}
	for _, option := range cfg.Pause.MenuOptions {
		content.AddChild(menuButton(option, cfg.Pause.ButtonMinWidth, handlers[option]))
	}

	rootContainer.AddChild(content)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}
