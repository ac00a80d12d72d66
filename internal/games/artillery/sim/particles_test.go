package sim

import (
	"math/rand"
	"testing"
)

func TestParticleLifecycle(t *testing.T) {
	ps := NewParticleSystem(rand.New(rand.NewSource(3)))
	origin := V(123.25, 77.5)
	t0 := 5000.0

	ps.Emit(origin, 1, 30, 1000, t0)
	ps.Update(t0)
	if ps.Len() != 1 {
		t.Fatalf("len = %d, want 1", ps.Len())
	}
	if got := ps.Particles()[0].Pos; got != origin {
		t.Errorf("position at relAge 0 = %v, want %v", got, origin)
	}
	if a := ps.Particles()[0].Color.A; a != 255 {
		t.Errorf("alpha at birth = %d, want 255", a)
	}

	ps.Update(t0 + 999)
	if ps.Len() != 1 {
		t.Errorf("particle gone at t0+999")
	}

	ps.Update(t0 + 1001)
	if ps.Len() != 0 {
		t.Errorf("particle still alive at t0+1001")
	}
}

func TestParticleClosedForm(t *testing.T) {
	ps := NewParticleSystem(rand.New(rand.NewSource(11)))
	origin := V(50, 50)
	ps.Emit(origin, 20, 80, 2000, 0)

	// Evaluating at an age directly must match evaluating through earlier
	// ages: position is a function of age only.
	ps.Update(1500)
	direct := append([]Particle(nil), ps.Particles()...)

	ps2 := NewParticleSystem(rand.New(rand.NewSource(11)))
	ps2.Emit(origin, 20, 80, 2000, 0)
	for ms := 0.0; ms <= 1500; ms += 16 {
		ps2.Update(ms)
	}
	ps2.Update(1500)
	for i, p := range ps2.Particles() {
		if p.Pos != direct[i].Pos {
			t.Errorf("particle %d: stepped %v, direct %v", i, p.Pos, direct[i].Pos)
		}
	}

	// At the end of its life a particle has travelled its displacement and
	// never more than the spread.
	ps.Update(2000)
	for i, p := range ps.Particles() {
		d := p.Pos.Sub(origin).Len()
		if d > 80+1e-9 {
			t.Errorf("particle %d travelled %v > spread", i, d)
		}
		if p.Color.A != 0 || p.Color.R != 0 {
			t.Errorf("particle %d not faded at max age: %+v", i, p.Color)
		}
		want := (50 + d) / 200
		if !near(p.Scale, want) {
			t.Errorf("particle %d scale = %v, want %v", i, p.Scale, want)
		}
	}
}

func TestParticleFadeUniform(t *testing.T) {
	ps := NewParticleSystem(rand.New(rand.NewSource(1)))
	ps.Emit(V(0, 0), 3, 10, 1000, 0)
	ps.Update(500)
	for _, p := range ps.Particles() {
		c := p.Color
		if c.R != c.A || c.G != c.A || c.B != c.A {
			t.Errorf("fade not uniform: %+v", c)
		}
		if c.A < 126 || c.A > 128 {
			t.Errorf("alpha at half life = %d, want ~127", c.A)
		}
	}
}

func TestSmokeTrail(t *testing.T) {
	s := NewSmokeTrail(rand.New(rand.NewSource(9)))
	pos := V(200, 100)
	s.Puff(pos, 5, 10)
	s.Puff(pos, 5, 10)
	if got := len(s.Puffs()); got != 10 {
		t.Fatalf("puffs = %d, want 10", got)
	}
	for _, p := range s.Puffs() {
		if p.X < pos.X-5 || p.X > pos.X+4 || p.Y < pos.Y-5 || p.Y > pos.Y+4 {
			t.Errorf("puff %v outside jitter box", p)
		}
	}
	s.Clear()
	if len(s.Puffs()) != 0 {
		t.Error("Clear left puffs behind")
	}
}
