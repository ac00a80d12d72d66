package sim

import (
	"math"
	"testing"
)

func TestTransformThenOrder(t *testing.T) {
	// Translate first, then scale: (1,0) -> (3,0) -> (6,0)
	tr := Translate(2, 0).Then(Scale(2))
	got := tr.Apply(V(1, 0))
	if !near(got.X, 6) || !near(got.Y, 0) {
		t.Errorf("Translate.Then(Scale) = %+v, want (6,0)", got)
	}

	// Scale first, then translate: (1,0) -> (2,0) -> (4,0)
	tr = Scale(2).Then(Translate(2, 0))
	got = tr.Apply(V(1, 0))
	if !near(got.X, 4) || !near(got.Y, 0) {
		t.Errorf("Scale.Then(Translate) = %+v, want (4,0)", got)
	}
}

func TestRotateMatchesVector(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		in    Vec2
	}{
		{"quarter turn", math.Pi / 2, Up},
		{"eighth turn", math.Pi / 4, V(3, -1)},
		{"negative", -math.Pi / 3, V(-2, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.in.Rotate(tt.angle)
			got := Rotate(tt.angle).Apply(tt.in)
			if !near(got.X, want.X) || !near(got.Y, want.Y) {
				t.Errorf("Rotate(%v).Apply(%v) = %v, want %v", tt.angle, tt.in, got, want)
			}
		})
	}

	// Up rotated by +90 degrees points right on screen.
	r := Up.Rotate(math.Pi / 2)
	if !near(r.X, 1) || !near(r.Y, 0) {
		t.Errorf("Up rotated 90° = %v, want (1,0)", r)
	}
}

func TestTransformInverse(t *testing.T) {
	tr := Translate(-5, -10).Then(Rotate(0.7)).Then(Scale(1.5)).Then(Translate(120, 33))
	inv, ok := tr.Inverse()
	if !ok {
		t.Fatal("expected an invertible transform")
	}
	for _, p := range []Vec2{V(0, 0), V(3, 4), V(-17, 250)} {
		back := inv.Apply(tr.Apply(p))
		if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
			t.Errorf("inverse round trip of %v gave %v", p, back)
		}
	}
}

func TestTransformDegenerate(t *testing.T) {
	tr := Translate(4, 4).Then(Scale(0))
	if tr.Invertible() {
		t.Error("zero scale should not be invertible")
	}
	if _, ok := tr.Inverse(); ok {
		t.Error("Inverse should fail for a zero scale")
	}
}
