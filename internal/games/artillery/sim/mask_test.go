package sim

import (
	"errors"
	"image/color"
	"testing"
)

func TestBuildMaskThreshold(t *testing.T) {
	pix := []color.NRGBA{
		{A: 0}, {A: 10},
		{A: 11}, {A: 255},
	}
	m, err := BuildMask(pix, 2, 2, 10)
	if err != nil {
		t.Fatalf("BuildMask: %v", err)
	}
	want := [][]bool{{false, false}, {true, true}}
	for y := range want {
		for x := range want[y] {
			if got := m.Opaque(x, y); got != want[y][x] {
				t.Errorf("Opaque(%d,%d) = %v, want %v", x, y, got, want[y][x])
			}
		}
	}
	if m.Width() != 2 || m.Height() != 2 {
		t.Errorf("dimensions %dx%d, want 2x2", m.Width(), m.Height())
	}
}

func TestBuildMaskTransparent(t *testing.T) {
	m, err := BuildMask(make([]color.NRGBA, 12), 4, 3, 0)
	if err != nil {
		t.Fatalf("BuildMask: %v", err)
	}
	if m.Count() != 0 {
		t.Errorf("transparent sprite has %d opaque pixels", m.Count())
	}

	// Nothing can collide with an empty mask.
	solid, _ := BuildMask(solidSprite(4, 3, Vec2{}).Pix, 4, 3, 0)
	if _, ok := Collide(solid, Identity(), m, Identity()); ok {
		t.Error("collision against an all-transparent mask")
	}
}

func TestBuildMaskMalformed(t *testing.T) {
	tests := []struct {
		name string
		n    int
		w, h int
	}{
		{"short buffer", 5, 2, 3},
		{"long buffer", 7, 2, 3},
		{"zero width", 0, 0, 3},
		{"negative height", 4, 2, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildMask(make([]color.NRGBA, tt.n), tt.w, tt.h, 0)
			if !errors.Is(err, ErrMalformedSprite) {
				t.Errorf("err = %v, want ErrMalformedSprite", err)
			}
		})
	}
}

func TestMaskLibraryMissingSprite(t *testing.T) {
	sprites := testSprites()
	delete(sprites, SpriteRocket)
	if _, err := NewMaskLibrary(sprites, 0); !errors.Is(err, ErrMalformedSprite) {
		t.Errorf("missing rocket: err = %v, want ErrMalformedSprite", err)
	}

	sprites = testSprites()
	bad := sprites[SpriteGun]
	bad.Pix = bad.Pix[:len(bad.Pix)-1]
	sprites[SpriteGun] = bad
	if _, err := NewMaskLibrary(sprites, 0); !errors.Is(err, ErrMalformedSprite) {
		t.Errorf("short gun buffer: err = %v, want ErrMalformedSprite", err)
	}
}

func TestMaskLibraryLookup(t *testing.T) {
	lib := testLibrary(t)
	for _, id := range AllSprites {
		s := lib.Sprite(id)
		m := lib.Mask(id)
		if m == nil {
			t.Fatalf("no mask for %s", id)
		}
		if m.Width() != s.W || m.Height() != s.H {
			t.Errorf("%s mask %dx%d, sprite %dx%d", id, m.Width(), m.Height(), s.W, s.H)
		}
	}
}
