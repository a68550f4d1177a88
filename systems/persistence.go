package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/terra-firma/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Inspector  bool `json:"inspector"`
	Fullscreen bool `json:"fullscreen"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "terra-firma",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings applies loaded settings before the first scene is
// created. The -inspector flag wins over a saved value.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
	cfg.Debug.Inspector = cfg.Debug.Inspector || saved.Inspector
}

// UpdateSettings handles the inspector and fullscreen toggles and persists
// them.
func UpdateSettings(ecs *ecs.ECS) {
	inspector := GetOrCreateInspector(ecs)
	changed := false

	if GetAction(ecs, cfg.ActionToggleInspector).JustPressed {
		inspector.Visible = !inspector.Visible
		changed = true
	}
	if GetAction(ecs, cfg.ActionToggleFullscreen).JustPressed {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		changed = true
	}
	if !changed {
		return
	}
	_ = SaveSettings(&SavedSettings{
		Inspector:  inspector.Visible,
		Fullscreen: ebiten.IsFullscreen(),
	})
}
