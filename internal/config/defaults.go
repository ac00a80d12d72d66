package config

import (
	_ "embed"
)

//go:embed defaults/artillery.yaml
var defaultArtilleryYAML []byte

// DefaultArtilleryConfig returns the default artillery configuration.
func DefaultArtilleryConfig() ArtilleryConfig {
	return ArtilleryConfig{
		Field: FieldConfig{
			Width:  500,
			Height: 500,
		},
		Terrain: TerrainConfig{
			PeakHeight: 100,
			Flatness:   70,
			Footprint:  40,
		},
		Players: PlayersConfig{
			Count:        4,
			InitialAngle: 90,
			InitialPower: 100,
			MaxPower:     1000,
		},
		Ballistics: BallisticsConfig{
			Gravity:      0.1,
			PowerDivisor: 50,
			MuzzleX:      20,
			MuzzleY:      -10,
			BodyScale:    1,
			RocketScale:  1,
			SmokePerTick: 5,
			SmokeJitter:  10,
		},
		Blasts: BlastsConfig{
			Kill:   BlastConfig{Particles: 10, Size: 80, MaxAgeMs: 2000, CraterRadius: 40},
			Impact: BlastConfig{Particles: 4, Size: 30, MaxAgeMs: 1000, CraterRadius: 20},
		},
		Sprites: SpritesConfig{
			MaxSize: 128,
		},
		Controls: ControlsConfig{
			AimStep:       1,
			FineAimStep:   0.2,
			PowerStep:     1,
			FastPowerStep: 20,
		},
		Autopilot: AutopilotConfig{
			ThinkTicks: 3,
			Difficulty: DifficultyConfig{
				Enabled:      true,
				InitialLevel: 0.3,
				Progression: ProgressionConfig{
					Type:  "shots",
					MaxAt: 8,
				},
				Scaling: ScalingConfig{
					AngleError: 12,
					PowerError: 120,
				},
			},
		},
	}
}
