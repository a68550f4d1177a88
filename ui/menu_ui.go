package ui

import (
	"image/color"

	cfg "github.com/automoto/terra-firma/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

type MenuUI struct {
	UI *ebitenui.UI

	OnStart func()
	OnQuit  func()
}

func NewMenuUI(onStart, onQuit func()) *MenuUI {
	ui := &MenuUI{
		OnStart: onStart,
		OnQuit:  onQuit,
	}
	loadFonts()
	ui.buildUI()
	return ui
}

func (ui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := centeredColumn(10)
	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))

	handlers := map[string]func(){
		"Start Game": func() {
			if ui.OnStart != nil {
				ui.OnStart()
			}
		},
		"Quit": func() {
			if ui.OnQuit != nil {
				ui.OnQuit()
			}
		},
	}
	for _, option := range cfg.Menu.MenuOptions {
		content.AddChild(menuButton(option, cfg.Menu.ButtonMinWidth, handlers[option]))
	}

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Enter to start  F1 inspector  F11 fullscreen", &smallFace, &widget.LabelColor{
			Idle: color.RGBA{160, 160, 180, 255},
		}),
	))

	rootContainer.AddChild(content)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}
