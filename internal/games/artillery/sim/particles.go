package sim

import (
	"image/color"
	"math/rand"
)

// spreadDegrees bounds the emission angle. Emission covers [0°, 300°), not a
// full circle; the gap is kept as observed in the classic game.
const spreadDegrees = 300

// Particle is one explosion fragment. Its position is a closed-form function
// of its age, evaluated from the birth time on every update.
type Particle struct {
	Birth     float64 // Milliseconds
	MaxAge    float64 // Milliseconds
	Origin    Vec2
	Direction Vec2
	Accel     Vec2
	Pos       Vec2
	Scale     float64
	Color     color.RGBA // Premultiplied white, faded uniformly
}

// ParticleSystem owns every live explosion particle.
type ParticleSystem struct {
	rng       *rand.Rand
	particles []Particle
}

// NewParticleSystem creates an empty system drawing randomness from rng.
func NewParticleSystem(rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{rng: rng, particles: make([]Particle, 0, 32)}
}

// Emit adds count particles at origin. Each travels up to spread pixels and
// lives maxAgeMs milliseconds from nowMs.
func (ps *ParticleSystem) Emit(origin Vec2, count int, spread, maxAgeMs, nowMs float64) {
	for range count {
		dist := ps.rng.Float64() * spread
		angle := Radians(float64(ps.rng.Intn(spreadDegrees)))
		displacement := V(dist, 0).Rotate(angle)
		dir := displacement.Scale(2)

		ps.particles = append(ps.particles, Particle{
			Birth:     nowMs,
			MaxAge:    maxAgeMs,
			Origin:    origin,
			Direction: dir,
			Accel:     dir.Scale(-1),
			Pos:       origin,
			Scale:     0.25,
			Color:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		})
	}
}

// Update ages every particle to nowMs, dropping the ones past their max age.
func (ps *ParticleSystem) Update(nowMs float64) {
	live := ps.particles[:0]
	for _, p := range ps.particles {
		age := nowMs - p.Birth
		if age > p.MaxAge {
			continue
		}
		p.place(age / p.MaxAge)
		live = append(live, p)
	}
	ps.particles = live
}

// place evaluates position, fade and size at relative age t in [0, 1].
func (p *Particle) place(t float64) {
	p.Pos = p.Origin.Add(p.Direction.Scale(t)).Add(p.Accel.Scale(0.5 * t * t))

	inv := 1 - t
	v := uint8(255 * inv)
	p.Color = color.RGBA{R: v, G: v, B: v, A: v}

	p.Scale = (50 + p.Pos.Sub(p.Origin).Len()) / 200
}

// Particles returns the live particles. The slice must not be modified.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Clear removes every particle.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}
