package sim

import "math/rand"

// SmokeTrail is the fixed-size puffs left behind a flying rocket. Puffs do
// not age; the whole trail is dropped when a flight starts or ends.
type SmokeTrail struct {
	rng   *rand.Rand
	puffs []Vec2
}

// NewSmokeTrail creates an empty trail drawing randomness from rng.
func NewSmokeTrail(rng *rand.Rand) *SmokeTrail {
	return &SmokeTrail{rng: rng}
}

// Puff adds count puffs around pos, each offset by up to jitter/2 pixels
// on both axes.
func (s *SmokeTrail) Puff(pos Vec2, count, jitter int) {
	if jitter <= 0 {
		jitter = 1
	}
	for range count {
		p := pos
		p.X += float64(s.rng.Intn(jitter) - jitter/2)
		p.Y += float64(s.rng.Intn(jitter) - jitter/2)
		s.puffs = append(s.puffs, p)
	}
}

// Puffs returns the current puffs. The slice must not be modified.
func (s *SmokeTrail) Puffs() []Vec2 {
	return s.puffs
}

// Clear drops the whole trail.
func (s *SmokeTrail) Clear() {
	s.puffs = s.puffs[:0]
}
