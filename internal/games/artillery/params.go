package artillery

import (
	"github.com/vovakirdan/tui-artillery/internal/config"
	"github.com/vovakirdan/tui-artillery/internal/games/artillery/sim"
)

// ParamsFromConfig maps the YAML configuration onto simulation parameters.
// Angles in the config are degrees; the simulation works in radians. One
// tick lasts 1000/tickRate simulated milliseconds.
func ParamsFromConfig(cfg config.ArtilleryConfig, tickRate int) sim.Params {
	if tickRate <= 0 {
		tickRate = 60
	}
	blast := func(b config.BlastConfig) sim.BlastParams {
		return sim.BlastParams{
			Particles:    b.Particles,
			Size:         b.Size,
			MaxAgeMs:     b.MaxAgeMs,
			CraterRadius: b.CraterRadius,
		}
	}

	return sim.Params{
		Width:        cfg.Field.Width,
		Height:       cfg.Field.Height,
		PeakHeight:   cfg.Terrain.PeakHeight,
		Flatness:     cfg.Terrain.Flatness,
		Footprint:    cfg.Terrain.Footprint,
		Players:      cfg.Players.Count,
		InitialAngle: sim.Radians(cfg.Players.InitialAngle),
		InitialPower: cfg.Players.InitialPower,
		MaxPower:     cfg.Players.MaxPower,
		Gravity:      cfg.Ballistics.Gravity,
		PowerDivisor: cfg.Ballistics.PowerDivisor,
		Muzzle:       sim.V(cfg.Ballistics.MuzzleX, cfg.Ballistics.MuzzleY),
		BodyScale:    cfg.Ballistics.BodyScale,
		RocketScale:  cfg.Ballistics.RocketScale,
		SmokePerTick: cfg.Ballistics.SmokePerTick,
		SmokeJitter:  cfg.Ballistics.SmokeJitter,
		Kill:         blast(cfg.Blasts.Kill),
		Impact:       blast(cfg.Blasts.Impact),
		TickMs:       1000.0 / float64(tickRate),
	}
}
