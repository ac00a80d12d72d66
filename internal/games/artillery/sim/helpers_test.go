package sim

import (
	"image/color"
	"math/rand"
	"testing"
)

var opaquePx = color.NRGBA{R: 200, G: 200, B: 200, A: 255}

func solidSprite(w, h int, pivot Vec2) Sprite {
	pix := make([]color.NRGBA, w*h)
	for i := range pix {
		pix[i] = opaquePx
	}
	return Sprite{W: w, H: h, Pix: pix, Pivot: pivot}
}

func discSprite(size int) Sprite {
	pix := make([]color.NRGBA, size*size)
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
			if dx*dx+dy*dy <= r*r {
				pix[y*size+x] = opaquePx
			}
		}
	}
	return Sprite{W: size, H: size, Pix: pix, Pivot: V(r, r)}
}

func testSprites() map[SpriteID]Sprite {
	return map[SpriteID]Sprite{
		SpriteBody:      solidSprite(40, 20, V(0, 20)),
		SpriteGun:       solidSprite(4, 20, V(2, 20)),
		SpriteRocket:    solidSprite(4, 10, V(2, 5)),
		SpriteExplosion: discSprite(16),
		SpriteGround:    solidSprite(4, 4, V(0, 0)),
	}
}

func testLibrary(t *testing.T) *MaskLibrary {
	t.Helper()
	lib, err := NewMaskLibrary(testSprites(), 0)
	if err != nil {
		t.Fatalf("NewMaskLibrary: %v", err)
	}
	return lib
}

func flatContour(width, y int) []int {
	c := make([]int, width)
	for i := range c {
		c[i] = y
	}
	return c
}

// newFlatWorld builds a 500x500 world with flat ground at y=250 and
// combatants at the given columns.
func newFlatWorld(t *testing.T, seed int64, positions ...float64) *World {
	t.Helper()
	p := DefaultParams()
	w, err := NewWorld(p, testLibrary(t), rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	if err := w.StartRound(Setup{Contour: flatContour(p.Width, 250), Positions: positions}); err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	return w
}

// runFlight ticks until the flight in progress ends and returns that tick's result.
func runFlight(t *testing.T, w *World, limit int) TickResult {
	t.Helper()
	for i := 0; i < limit; i++ {
		res := w.Tick(Input{})
		if res.Outcome != OutcomeNone {
			return res
		}
	}
	t.Fatalf("flight did not end within %d ticks", limit)
	return TickResult{}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
