package sim

import (
	"errors"
	"fmt"
)

// BlastParams describes one kind of explosion.
type BlastParams struct {
	Particles    int     // Particles emitted
	Size         float64 // Maximum particle travel from the impact point
	MaxAgeMs     float64 // Particle lifetime in milliseconds
	CraterRadius float64 // Radius of the hole punched into the terrain
}

// Params holds every tunable of the simulation. Zero values are not valid;
// start from DefaultParams.
type Params struct {
	Width, Height int // Field size in pixels

	PeakHeight float64 // Amplitude of the terrain sine waves
	Flatness   float64 // Wavelength divisor of the terrain sine waves
	Footprint  int     // Columns flattened under each combatant

	Players      int     // Combatants per round, 2..len(Palette)
	InitialAngle float64 // Radians from vertical-up
	InitialPower float64
	MaxPower     float64

	Gravity      float64 // Added to the downward velocity each tick
	PowerDivisor float64 // Launch speed = power / PowerDivisor
	Muzzle       Vec2    // Launch point relative to the combatant position

	BodyScale   float64
	RocketScale float64

	SmokePerTick int // Smoke puffs added per flying tick
	SmokeJitter  int // Smoke puffs land within ±SmokeJitter/2 pixels

	Kill   BlastParams // Projectile hit a combatant
	Impact BlastParams // Projectile hit the ground

	TickMs float64 // Simulated milliseconds per tick
}

// DefaultParams returns the classic 500x500, four-player setup.
func DefaultParams() Params {
	return Params{
		Width:        500,
		Height:       500,
		PeakHeight:   100,
		Flatness:     70,
		Footprint:    40,
		Players:      4,
		InitialAngle: Radians(90),
		InitialPower: 100,
		MaxPower:     1000,
		Gravity:      0.1,
		PowerDivisor: 50,
		Muzzle:       V(20, -10),
		BodyScale:    1,
		RocketScale:  1,
		SmokePerTick: 5,
		SmokeJitter:  10,
		Kill:         BlastParams{Particles: 10, Size: 80, MaxAgeMs: 2000, CraterRadius: 40},
		Impact:       BlastParams{Particles: 4, Size: 30, MaxAgeMs: 1000, CraterRadius: 20},
		TickMs:       1000.0 / 60.0,
	}
}

// ErrInvalidParams is wrapped by every Params validation failure.
var ErrInvalidParams = errors.New("invalid simulation parameters")

// Validate checks that the parameters describe a playable field.
func (p Params) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w: field %dx%d", ErrInvalidParams, p.Width, p.Height)
	case p.Players < 2 || p.Players > len(Palette):
		return fmt.Errorf("%w: %d players (want 2..%d)", ErrInvalidParams, p.Players, len(Palette))
	case p.Footprint < 1:
		return fmt.Errorf("%w: footprint %d", ErrInvalidParams, p.Footprint)
	case p.PowerDivisor == 0:
		return fmt.Errorf("%w: power divisor is zero", ErrInvalidParams)
	case p.MaxPower <= 0:
		return fmt.Errorf("%w: max power %.0f", ErrInvalidParams, p.MaxPower)
	case p.BodyScale <= 0 || p.RocketScale <= 0:
		return fmt.Errorf("%w: sprite scales must be positive", ErrInvalidParams)
	case p.TickMs <= 0:
		return fmt.Errorf("%w: tick length %.2fms", ErrInvalidParams, p.TickMs)
	case p.Flatness == 0:
		return fmt.Errorf("%w: flatness is zero", ErrInvalidParams)
	}
	return nil
}
