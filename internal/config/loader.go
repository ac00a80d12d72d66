package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadArtillery loads artillery configuration.
// Search order: customPath -> ~/.arcade/configs/artillery.yaml -> ./configs/artillery.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. The result is validated.
func LoadArtillery(customPath string) (ArtilleryConfig, error) {
	cfg := DefaultArtilleryConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("artillery.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if c, err := decodeOver(data); err == nil {
				return c, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/artillery.yaml"); err == nil {
		if c, err := decodeOver(data); err == nil {
			return c, nil
		}
	}

	// Use embedded default YAML
	c, err := decodeOver(defaultArtilleryYAML)
	if err != nil {
		return DefaultArtilleryConfig(), nil // Fallback to hardcoded if embed fails
	}
	return c, nil
}

// decodeOver decodes data on top of the defaults and validates the result.
func decodeOver(data []byte) (ArtilleryConfig, error) {
	cfg := DefaultArtilleryConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Preset names a round layout.
type Preset string

const (
	PresetClassic Preset = "classic"
	PresetDuel    Preset = "duel"
	PresetBrawl   Preset = "brawl"
)

// Presets lists the layouts in display order.
var Presets = []Preset{PresetClassic, PresetDuel, PresetBrawl}

// ApplyPreset modifies the config for a round layout. Unknown presets are an error.
func ApplyPreset(cfg *ArtilleryConfig, preset Preset) error {
	switch preset {
	case PresetClassic, "":
		cfg.Players.Count = 4
	case PresetDuel:
		cfg.Players.Count = 2
		cfg.Terrain.PeakHeight = 70
	case PresetBrawl:
		cfg.Players.Count = 6
		cfg.Field.Width = max(cfg.Field.Width, 700)
	default:
		return fmt.Errorf("config: unknown preset %q", preset)
	}
	return nil
}

// DifficultyPreset represents a named autopilot skill.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyDifficultyPreset modifies the autopilot difficulty based on a preset.
func ApplyDifficultyPreset(cfg *ArtilleryConfig, preset DifficultyPreset) {
	d := &cfg.Autopilot.Difficulty
	if preset == DifficultyFixed {
		d.Enabled = false
	} else {
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}
