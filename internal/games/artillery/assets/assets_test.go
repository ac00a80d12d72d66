package assets

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/vovakirdan/tui-artillery/internal/games/artillery/sim"
)

func TestBuiltinBuildsMasks(t *testing.T) {
	lib, err := sim.NewMaskLibrary(Builtin(), 0)
	if err != nil {
		t.Fatalf("NewMaskLibrary: %v", err)
	}
	for _, id := range sim.AllSprites {
		if lib.Mask(id).Count() == 0 {
			t.Errorf("%s mask is empty", id)
		}
	}

	ground := lib.Mask(sim.SpriteGround)
	if ground.Count() != GroundW*GroundH {
		t.Errorf("ground tile must be fully opaque, %d of %d", ground.Count(), GroundW*GroundH)
	}

	body := lib.Sprite(sim.SpriteBody)
	if body.Pivot != sim.V(0, BodyH) {
		t.Errorf("carriage pivot = %v, want bottom-left", body.Pivot)
	}
}

func writeSprites(t *testing.T, dir string, skip string) {
	t.Helper()
	for id, s := range Builtin() {
		name := id.String()
		if name == skip {
			continue
		}
		// The ground tile goes through the BMP decoder, the rest through PNG.
		ext := ".png"
		if id == sim.SpriteGround {
			ext = ".bmp"
		}
		f, err := os.Create(filepath.Join(dir, name+ext))
		if err != nil {
			t.Fatal(err)
		}
		if ext == ".png" {
			err = png.Encode(f, ToImage(s))
		} else {
			err = bmp.Encode(f, ToImage(s))
		}
		if err != nil {
			t.Fatalf("encode %s: %v", name, err)
		}
		f.Close()
	}
}

func TestLoadDirRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeSprites(t, dir, "")

	loaded, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	builtin := Builtin()
	for _, id := range sim.AllSprites {
		got, want := loaded[id], builtin[id]
		if got.W != want.W || got.H != want.H {
			t.Errorf("%s: size %dx%d, want %dx%d", id, got.W, got.H, want.W, want.H)
			continue
		}
		if got.Pivot != want.Pivot {
			t.Errorf("%s: pivot %v, want %v", id, got.Pivot, want.Pivot)
		}
		for i := range want.Pix {
			if (got.Pix[i].A > 0) != (want.Pix[i].A > 0) {
				t.Errorf("%s: opacity differs at pixel %d", id, i)
				break
			}
		}
	}
}

func TestLoadDirMissing(t *testing.T) {
	dir := t.TempDir()
	writeSprites(t, dir, "rocket")

	_, err := LoadDir(dir)
	if !errors.Is(err, ErrMissingSprite) {
		t.Errorf("err = %v, want ErrMissingSprite", err)
	}
}

func TestLoadDirCorrupt(t *testing.T) {
	dir := t.TempDir()
	writeSprites(t, dir, "")
	if err := os.WriteFile(filepath.Join(dir, "cannon.png"), []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDir(dir); err == nil {
		t.Error("expected a decode error")
	}
}

func TestLoadEmptyDirUsesBuiltin(t *testing.T) {
	sprites, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(sprites) != len(sim.AllSprites) {
		t.Errorf("got %d sprites, want %d", len(sprites), len(sim.AllSprites))
	}
}

func TestResize(t *testing.T) {
	exp := Builtin()[sim.SpriteExplosion]
	small := Resize(sim.SpriteExplosion, exp, 16, 16)
	if small.W != 16 || small.H != 16 || len(small.Pix) != 256 {
		t.Fatalf("resized to %dx%d (%d px)", small.W, small.H, len(small.Pix))
	}
	if small.Pivot != sim.V(8, 8) {
		t.Errorf("pivot = %v, want centre", small.Pivot)
	}
	if Resize(sim.SpriteExplosion, exp, exp.W, exp.H).W != exp.W {
		t.Error("same-size resize changed the sprite")
	}
}

func TestFit(t *testing.T) {
	fitted := Fit(Builtin(), 32)

	tests := []struct {
		id   sim.SpriteID
		w, h int
	}{
		{sim.SpriteExplosion, 32, 32},
		{sim.SpriteBody, 32, 16},
		{sim.SpriteGun, GunW, GunH},
		{sim.SpriteGround, GroundW, GroundH},
	}
	for _, tt := range tests {
		s := fitted[tt.id]
		if s.W != tt.w || s.H != tt.h || len(s.Pix) != tt.w*tt.h {
			t.Errorf("%v fitted to %dx%d, want %dx%d", tt.id, s.W, s.H, tt.w, tt.h)
		}
	}
	if len(fitted) != len(sim.AllSprites) {
		t.Errorf("Fit dropped sprites: %d left", len(fitted))
	}
	if Fit(Builtin(), 0)[sim.SpriteExplosion].W != ExplosionW {
		t.Error("max size 0 should keep sprites")
	}
}
