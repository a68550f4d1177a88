package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed float64 // pixels per second
	Scale float64
	Z     float64

	// Sprite sheet
	SpriteSheet string
	FrameWidth  int
	FrameHeight int
	Columns     int
	Rows        int

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
	SpeedFactor     float64 // Camera speed cap relative to player speed
}

// MapConfig contains tiled map loading configuration
type MapConfig struct {
	MainName string
	MainPath string

	// Uniform world scale applied to every layer root
	Scale float64

	// Default chunk size for registry entries (tiles)
	ChunkWidth  float64
	ChunkHeight float64

	// Collision space cell size (world pixels)
	CellSize int

	// Ticks between modification checks when serving assets from disk
	ReloadInterval int

	// Seconds for the fade-in after a map is built
	FadeInDuration float32
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Friction    float64 // Velocity multiplier per tick for dynamic bodies
	PushFactor  float64 // Fraction of player movement transferred to dynamic bodies
	MinVelocity float64 // Below this, dynamic bodies come to rest
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor   color.RGBA
	FadeDuration   float32
	MenuOptions    []string
	ButtonMinWidth int
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	Title           string
	MenuOptions     []string
	ButtonMinWidth  int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu  bool   // Skip menu and go directly to game
	Inspector bool   // Show the world inspector overlay
	AssetDir  string // Serve assets from disk and hot reload them
}

// UIConfig contains HUD and overlay configuration values
type UIConfig struct {
	HUDTextColor       color.RGBA
	HUDTextBgColor     color.RGBA
	DebugColliderColor map[string]color.RGBA
	LoadingText        string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Camera CameraConfig
var Map MapConfig
var Physics PhysicsConfig
var Pause PauseConfig
var Menu MenuConfig
var Debug DebugConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "Terra Firma",
		TPS:    60,
	}

	Player = PlayerConfig{
		Speed: 200,
		Scale: 2,
		Z:     100,

		SpriteSheet: "tileset/character-sprite-sheet.png",
		FrameWidth:  32,
		FrameHeight: 32,
		Columns:     4,
		Rows:        1,

		CollisionWidth:  32,
		CollisionHeight: 32,
	}

	// Camera Config
	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		SpeedFactor:     0.75,
	}

	Map = MapConfig{
		MainName: "Main",
		MainPath: "maps/map_00/main.tmx",

		Scale: 2,

		ChunkWidth:  32,
		ChunkHeight: 32,

		CellSize: 32,

		ReloadInterval: 60, // once a second at 60 TPS

		FadeInDuration: 0.6,
	}

	Physics = PhysicsConfig{
		Friction:    0.85,
		PushFactor:  1.0,
		MinVelocity: 0.05,
	}

	Pause = PauseConfig{
		OverlayColor:   BlackOverlay,
		FadeDuration:   0.25,
		MenuOptions:    []string{"Resume", "Main Menu"},
		ButtonMinWidth: 180,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:      Orange,
		Title:           "TERRA FIRMA",
		MenuOptions:     []string{"Start Game", "Quit"},
		ButtonMinWidth:  180,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:  false,
		Inspector: false,
	}

	UI = UIConfig{
		HUDTextColor:   White,
		HUDTextBgColor: color.RGBA{R: 0, G: 0, B: 0, A: 160},
		DebugColliderColor: map[string]color.RGBA{
			"Static":    Green,
			"Kinematic": Blue,
			"Dynamic":   Yellow,
			"Player":    Red,
		},
		LoadingText: "Loading...",
	}
}
