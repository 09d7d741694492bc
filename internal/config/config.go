// Package config loads the game configuration from YAML, layering EXOGAME_*
// environment overrides on top.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the root of config/game.yaml.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Scene  SceneConfig  `yaml:"scene"`
	Player PlayerConfig `yaml:"player"`
	Input  InputConfig  `yaml:"input"`
	Save   SaveConfig   `yaml:"save"`
}

type WindowConfig struct {
	Width     int    `yaml:"width" env:"EXOGAME_WINDOW_WIDTH"`
	Height    int    `yaml:"height" env:"EXOGAME_WINDOW_HEIGHT"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"targetFPS"`
}

// SceneConfig names the scene directory and the persistent level loaded at
// startup. Streamed segments live in the same directory.
type SceneConfig struct {
	Dir  string `yaml:"dir" env:"EXOGAME_SCENE_DIR"`
	Main string `yaml:"main" env:"EXOGAME_SCENE"`
}

// PlayerConfig holds the character tuning. Distances are centimetres,
// angles degrees.
type PlayerConfig struct {
	MaxHealth          float32    `yaml:"maxHealth"`
	SpawnPosition      [3]float32 `yaml:"spawnPosition"`
	WalkSpeed          float32    `yaml:"walkSpeed"`
	CrouchSpeed        float32    `yaml:"crouchSpeed"`
	JumpVelocity       float32    `yaml:"jumpVelocity"`
	AirControl         float32    `yaml:"airControl"`
	CapsuleRadius      float32    `yaml:"capsuleRadius"`
	CapsuleHeight      float32    `yaml:"capsuleHeight"`
	TurnRate           float32    `yaml:"turnRate"`
	LookUpRate         float32    `yaml:"lookUpRate"`
	RotationRate       float32    `yaml:"rotationRate"`
	MouseSensitivity   float32    `yaml:"mouseSensitivity"`
	ArmLength          float32    `yaml:"armLength"`
	PickupRange        float32    `yaml:"pickupRange"`
	ProjectileSpeed    float32    `yaml:"projectileSpeed"`
	ProjectileLifetime float32    `yaml:"projectileLifetime"`
}

// InputConfig maps action and axis names to device inputs. Input names are
// raylib key names without the Key prefix ("W", "Space", "LeftControl"),
// "MouseLeft"/"MouseRight"/"MouseMiddle", or "MouseX"/"MouseY" for axes.
type InputConfig struct {
	Actions map[string][]string      `yaml:"actions"`
	Axes    map[string][]AxisBinding `yaml:"axes"`
}

type AxisBinding struct {
	Input string  `yaml:"input"`
	Scale float32 `yaml:"scale"`
}

// SaveConfig selects the gdata application name and the save slot.
type SaveConfig struct {
	AppName string `yaml:"appName" env:"EXOGAME_SAVE_APP"`
	Slot    string `yaml:"slot"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "exogame",
			TargetFPS: 60,
		},
		Scene: SceneConfig{
			Dir:  "assets/scenes",
			Main: "main",
		},
		Player: PlayerConfig{
			MaxHealth:          100,
			SpawnPosition:      [3]float32{0, 96, 0},
			WalkSpeed:          600,
			CrouchSpeed:        300,
			JumpVelocity:       600,
			AirControl:         0.2,
			CapsuleRadius:      42,
			CapsuleHeight:      192,
			TurnRate:           45,
			LookUpRate:         45,
			RotationRate:       540,
			MouseSensitivity:   0.1,
			ArmLength:          300,
			PickupRange:        700,
			ProjectileSpeed:    3000,
			ProjectileLifetime: 3,
		},
		Input: InputConfig{
			Actions: map[string][]string{
				"Jump":         {"Space"},
				"Crouch":       {"LeftControl", "C"},
				"Drag":         {"E", "MouseRight"},
				"Fire":         {"MouseLeft"},
				"ResetView":    {"R"},
				"TouchPressed": {"Touch"},
				"Save":         {"F5"},
				"Load":         {"F9"},
				"Restart":      {"F1"},
				"Debug":        {"F3"},
				"Snapshot":     {"F6"},
			},
			Axes: map[string][]AxisBinding{
				"MoveForward": {{Input: "W", Scale: 1}, {Input: "S", Scale: -1}, {Input: "Up", Scale: 1}, {Input: "Down", Scale: -1}},
				"MoveRight":   {{Input: "D", Scale: 1}, {Input: "A", Scale: -1}},
				"Turn":        {{Input: "MouseX", Scale: 1}},
				"LookUp":      {{Input: "MouseY", Scale: -1}},
				"TurnRate":    {{Input: "Right", Scale: 1}, {Input: "Left", Scale: -1}},
				"LookUpRate":  {{Input: "PageUp", Scale: 1}, {Input: "PageDown", Scale: -1}},
			},
		},
		Save: SaveConfig{
			AppName: "exogame",
			Slot:    "slot0",
		},
	}
}

// Load reads path over Default and applies environment overrides. A missing
// file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("Config: %s not found, using defaults", path)
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate rejects values the game cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Scene.Main == "" {
		return errors.New("scene.main is required")
	}
	if c.Player.MaxHealth <= 0 {
		return fmt.Errorf("player.maxHealth must be positive, got %v", c.Player.MaxHealth)
	}
	if c.Player.AirControl < 0 || c.Player.AirControl > 1 {
		return fmt.Errorf("player.airControl must be within [0, 1], got %v", c.Player.AirControl)
	}
	if c.Player.PickupRange <= 0 {
		return fmt.Errorf("player.pickupRange must be positive, got %v", c.Player.PickupRange)
	}
	if c.Player.CapsuleRadius <= 0 || c.Player.CapsuleHeight <= 0 {
		return errors.New("player capsule size must be positive")
	}
	if c.Save.AppName == "" {
		return errors.New("save.appName is required")
	}
	return nil
}
