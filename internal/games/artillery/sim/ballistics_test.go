package sim

import (
	"math"
	"testing"
)

func TestGravityAppliedAfterOneTick(t *testing.T) {
	var p Projectile
	p.Launch(V(100, 240), 0, 0, 50)
	if p.Vel.Y != 0 {
		t.Fatalf("initial vertical velocity = %v, want 0", p.Vel.Y)
	}
	p.Step(0.1)
	if p.Vel.Y <= 0 {
		t.Errorf("after one tick velocity.y = %v, want > 0", p.Vel.Y)
	}
	if p.Pos.Y <= 240 {
		t.Errorf("projectile did not fall: y = %v", p.Pos.Y)
	}
}

func TestLaunchVelocity(t *testing.T) {
	tests := []struct {
		name   string
		angle  float64
		power  float64
		wantVX float64
		wantVY float64
	}{
		{"straight up", 0, 100, 0, -2},
		{"right", math.Pi / 2, 500, 10, 0},
		{"left", -math.Pi / 2, 50, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Projectile
			p.Launch(V(0, 0), tt.angle, tt.power, 50)
			if !near(p.Vel.X, tt.wantVX) || !near(p.Vel.Y, tt.wantVY) {
				t.Errorf("velocity = %v, want (%v,%v)", p.Vel, tt.wantVX, tt.wantVY)
			}
			if p.State != FlightFlying {
				t.Errorf("state = %v, want Flying", p.State)
			}
		})
	}
}

func TestStepTracksDirection(t *testing.T) {
	var p Projectile
	p.Launch(V(0, 0), math.Pi/4, 200, 50)
	for i := 0; i < 30; i++ {
		p.Step(0.1)
		want := math.Atan2(p.Vel.X, -p.Vel.Y)
		if !near(p.Angle, want) {
			t.Fatalf("tick %d: angle %v, want %v", i, p.Angle, want)
		}
	}
	if p.Ticks != 30 {
		t.Errorf("ticks = %d, want 30", p.Ticks)
	}

	p.End()
	pos := p.Pos
	p.Step(0.1)
	if p.Pos != pos {
		t.Error("Step moved a finished projectile")
	}
}

func TestOutOfField(t *testing.T) {
	tests := []struct {
		pos  Vec2
		want bool
	}{
		{V(10, 10), false},
		{V(10, -500), false}, // above the top falls back
		{V(10, 501), true},
		{V(-0.5, 10), true},
		{V(500, 10), true},
		{V(499.9, 500), false},
	}
	for _, tt := range tests {
		p := Projectile{Pos: tt.pos, State: FlightFlying}
		if got := p.OutOfField(500, 500); got != tt.want {
			t.Errorf("OutOfField(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}
