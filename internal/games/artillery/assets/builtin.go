package assets

import (
	"image/color"
	"math"

	"github.com/vovakirdan/tui-artillery/internal/games/artillery/sim"
)

// Built-in sprite sizes.
const (
	BodyW, BodyH           = 40, 20
	GunW, GunH             = 6, 24
	RocketW, RocketH       = 6, 16
	ExplosionW, ExplosionH = 64, 64
	GroundW, GroundH       = 16, 16
)

var (
	steel = color.NRGBA{R: 200, G: 200, B: 210, A: 255}
	iron  = color.NRGBA{R: 90, G: 90, B: 100, A: 255}
	flame = color.NRGBA{R: 255, G: 200, B: 80, A: 255}
)

// Builtin returns procedurally drawn sprites so the game runs without any
// files on disk.
func Builtin() map[sim.SpriteID]sim.Sprite {
	return map[sim.SpriteID]sim.Sprite{
		sim.SpriteBody:      carriage(),
		sim.SpriteGun:       cannon(),
		sim.SpriteRocket:    rocket(),
		sim.SpriteExplosion: explosion(),
		sim.SpriteGround:    ground(),
	}
}

type canvas struct {
	w, h int
	pix  []color.NRGBA
}

func newCanvas(w, h int) *canvas {
	return &canvas{w: w, h: h, pix: make([]color.NRGBA, w*h)}
}

func (c *canvas) set(x, y int, col color.NRGBA) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.pix[y*c.w+x] = col
}

func (c *canvas) sprite(id sim.SpriteID) sim.Sprite {
	return sim.Sprite{W: c.w, H: c.h, Pix: c.pix, Pivot: Pivot(id, c.w, c.h)}
}

// carriage is a sloped hull over two wheels.
func carriage() sim.Sprite {
	c := newCanvas(BodyW, BodyH)
	for y := 4; y < 14; y++ {
		inset := (14 - y) / 2
		for x := inset; x < BodyW-inset; x++ {
			c.set(x, y, steel)
		}
	}
	for _, cx := range []float64{9.5, 29.5} {
		for y := 12; y < BodyH; y++ {
			for x := int(cx) - 6; x <= int(cx)+6; x++ {
				dx, dy := float64(x)-cx, float64(y)-15.5
				if dx*dx+dy*dy <= 20 {
					c.set(x, y, iron)
				}
			}
		}
	}
	return c.sprite(sim.SpriteBody)
}

// cannon is a barrel pointing up from its pivot.
func cannon() sim.Sprite {
	c := newCanvas(GunW, GunH)
	for y := 0; y < GunH; y++ {
		x0, x1 := 1, GunW-1
		if y > GunH-6 {
			x0, x1 = 0, GunW
		}
		for x := x0; x < x1; x++ {
			c.set(x, y, iron)
		}
	}
	return c.sprite(sim.SpriteGun)
}

// rocket points up with a tapered nose and fins.
func rocket() sim.Sprite {
	c := newCanvas(RocketW, RocketH)
	for y := 0; y < RocketH; y++ {
		half := 2
		switch {
		case y < 2:
			half = 0
		case y < 4:
			half = 1
		case y >= RocketH-4:
			half = 3
		}
		mid := RocketW / 2
		for x := mid - half - 1; x < mid+half; x++ {
			col := steel
			if y >= RocketH-2 {
				col = flame
			}
			c.set(x, y, col)
		}
	}
	return c.sprite(sim.SpriteRocket)
}

// explosion is a filled disc; only its shape matters for craters.
func explosion() sim.Sprite {
	c := newCanvas(ExplosionW, ExplosionH)
	r := float64(ExplosionW) / 2
	for y := 0; y < ExplosionH; y++ {
		for x := 0; x < ExplosionW; x++ {
			dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
			d := math.Sqrt(dx*dx + dy*dy)
			if d > r {
				continue
			}
			t := d / r
			c.set(x, y, color.NRGBA{R: 255, G: uint8(220 - 160*t), B: uint8(80 * (1 - t)), A: 255})
		}
	}
	return c.sprite(sim.SpriteExplosion)
}

// ground is an opaque earth tile with a deterministic speckle.
func ground() sim.Sprite {
	c := newCanvas(GroundW, GroundH)
	for y := 0; y < GroundH; y++ {
		for x := 0; x < GroundW; x++ {
			n := uint8((x*7 + y*13 + x*y) % 24)
			c.set(x, y, color.NRGBA{R: 110 + n, G: 80 + n/2, B: 40, A: 255})
		}
	}
	return c.sprite(sim.SpriteGround)
}
