package sim

import "math"

// FlightState is the lifecycle of a projectile.
type FlightState int

const (
	FlightIdle FlightState = iota
	FlightFlying
	FlightTerminal
)

// String returns the state name.
func (s FlightState) String() string {
	switch s {
	case FlightIdle:
		return "Idle"
	case FlightFlying:
		return "Flying"
	case FlightTerminal:
		return "Terminal"
	default:
		return "Unknown"
	}
}

// Outcome is how a flight ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeHitCombatant
	OutcomeHitTerrain
	OutcomeExited
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeHitCombatant:
		return "HitCombatant"
	case OutcomeHitTerrain:
		return "HitTerrain"
	case OutcomeExited:
		return "Exited"
	default:
		return "Unknown"
	}
}

// Projectile is the single rocket in flight.
type Projectile struct {
	Pos   Vec2
	Vel   Vec2
	Angle float64 // Sprite orientation, radians from vertical-up
	State FlightState
	Ticks int // Ticks spent flying
}

// Launch starts a flight from origin. The velocity is the up vector rotated
// by angle and scaled by power/divisor.
func (p *Projectile) Launch(origin Vec2, angle, power, divisor float64) {
	p.Pos = origin
	p.Angle = angle
	p.Vel = Up.Rotate(angle).Scale(power / divisor)
	p.State = FlightFlying
	p.Ticks = 0
}

// Step integrates one tick of constant gravity. It is a no-op unless flying.
func (p *Projectile) Step(gravity float64) {
	if p.State != FlightFlying {
		return
	}
	p.Vel.Y += gravity
	p.Pos = p.Pos.Add(p.Vel)
	p.Angle = math.Atan2(p.Vel.X, -p.Vel.Y)
	p.Ticks++
}

// OutOfField reports whether the projectile left the field through the
// bottom or either side. Leaving through the top is allowed; it falls back.
func (p *Projectile) OutOfField(width, height int) bool {
	return p.Pos.Y > float64(height) || p.Pos.X < 0 || p.Pos.X >= float64(width)
}

// End marks the flight as finished.
func (p *Projectile) End() {
	p.State = FlightTerminal
}

// Flying reports whether the projectile is in flight.
func (p *Projectile) Flying() bool {
	return p.State == FlightFlying
}

// Transform places the rocket sprite at the projectile's position and angle.
func (p *Projectile) Transform(rocket Sprite, scale float64) Transform {
	return Translate(-rocket.Pivot.X, -rocket.Pivot.Y).
		Then(Rotate(p.Angle)).
		Then(Scale(scale)).
		Then(Translate(p.Pos.X, p.Pos.Y))
}
