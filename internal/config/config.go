// Package config provides YAML-based game configuration loading and
// difficulty management for the artillery game.
package config

import (
	"errors"
	"fmt"
)

// ArtilleryConfig contains all configuration for the artillery game.
type ArtilleryConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Players    PlayersConfig    `yaml:"players"`
	Ballistics BallisticsConfig `yaml:"ballistics"`
	Blasts     BlastsConfig     `yaml:"blasts"`
	Sprites    SpritesConfig    `yaml:"sprites"`
	Controls   ControlsConfig   `yaml:"controls"`
	Autopilot  AutopilotConfig  `yaml:"autopilot"`
}

// FieldConfig defines the simulated field in pixels.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TerrainConfig defines terrain generation.
type TerrainConfig struct {
	PeakHeight float64 `yaml:"peak_height"`
	Flatness   float64 `yaml:"flatness"`
	Footprint  int     `yaml:"footprint"` // Columns levelled under each cannon
}

// PlayersConfig defines the combatants of a round.
type PlayersConfig struct {
	Count        int     `yaml:"count"`
	InitialAngle float64 `yaml:"initial_angle"` // Degrees from vertical-up
	InitialPower float64 `yaml:"initial_power"`
	MaxPower     float64 `yaml:"max_power"`
}

// BallisticsConfig defines projectile flight.
type BallisticsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	PowerDivisor float64 `yaml:"power_divisor"`
	MuzzleX      float64 `yaml:"muzzle_x"`
	MuzzleY      float64 `yaml:"muzzle_y"`
	BodyScale    float64 `yaml:"body_scale"`
	RocketScale  float64 `yaml:"rocket_scale"`
	SmokePerTick int     `yaml:"smoke_per_tick"`
	SmokeJitter  int     `yaml:"smoke_jitter"`
}

// BlastsConfig defines the two explosion kinds.
type BlastsConfig struct {
	Kill   BlastConfig `yaml:"kill"`
	Impact BlastConfig `yaml:"impact"`
}

// BlastConfig defines one explosion.
type BlastConfig struct {
	Particles    int     `yaml:"particles"`
	Size         float64 `yaml:"size"`
	MaxAgeMs     float64 `yaml:"max_age_ms"`
	CraterRadius float64 `yaml:"crater_radius"`
}

// SpritesConfig defines where sprites come from.
type SpritesConfig struct {
	Dir            string `yaml:"dir"` // Empty uses the built-in sprites
	AlphaThreshold uint8  `yaml:"alpha_threshold"`
	MaxSize        int    `yaml:"max_size"` // Longer sprites are scaled down to this many pixels; 0 keeps them
}

// ControlsConfig defines how far one key press moves the aim.
type ControlsConfig struct {
	AimStep       float64 `yaml:"aim_step"`      // Degrees per press
	FineAimStep   float64 `yaml:"fine_aim_step"` // Degrees per fine press
	PowerStep     float64 `yaml:"power_step"`
	FastPowerStep float64 `yaml:"fast_power_step"`
}

// AutopilotConfig defines the CPU-controlled cannons.
type AutopilotConfig struct {
	ThinkTicks int              `yaml:"think_ticks"` // Ticks between aim adjustments
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a round.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "shots", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Shots/ticks at which max difficulty is reached
}

// ScalingConfig defines the aiming error at the lowest difficulty. The error
// shrinks linearly to zero at level 1.0.
type ScalingConfig struct {
	AngleError float64 `yaml:"angle_error"` // Degrees
	PowerError float64 `yaml:"power_error"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid artillery config")

// MaxPlayers is the number of distinct cannon colours.
const MaxPlayers = 10

// Validate reports the first setting that cannot produce a playable round.
func (c ArtilleryConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field %dx%d", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	case c.Players.Count < 2 || c.Players.Count > MaxPlayers:
		return fmt.Errorf("%w: %d players (want 2..%d)", ErrInvalidConfig, c.Players.Count, MaxPlayers)
	case c.Players.MaxPower <= 0:
		return fmt.Errorf("%w: max_power %.0f", ErrInvalidConfig, c.Players.MaxPower)
	case c.Players.InitialAngle < -90 || c.Players.InitialAngle > 90:
		return fmt.Errorf("%w: initial_angle %.0f outside [-90,90]", ErrInvalidConfig, c.Players.InitialAngle)
	case c.Terrain.Footprint < 1:
		return fmt.Errorf("%w: footprint %d", ErrInvalidConfig, c.Terrain.Footprint)
	case c.Terrain.Flatness == 0:
		return fmt.Errorf("%w: flatness is zero", ErrInvalidConfig)
	case c.Ballistics.PowerDivisor == 0:
		return fmt.Errorf("%w: power_divisor is zero", ErrInvalidConfig)
	case c.Ballistics.BodyScale <= 0 || c.Ballistics.RocketScale <= 0:
		return fmt.Errorf("%w: sprite scales must be positive", ErrInvalidConfig)
	case c.Sprites.MaxSize < 0:
		return fmt.Errorf("%w: sprite max_size %d", ErrInvalidConfig, c.Sprites.MaxSize)
	case c.Controls.AimStep <= 0 || c.Controls.PowerStep <= 0:
		return fmt.Errorf("%w: control steps must be positive", ErrInvalidConfig)
	}
	return nil
}
