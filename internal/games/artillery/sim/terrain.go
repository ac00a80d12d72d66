package sim

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
)

// Terrain owns the height contour and the opacity bitmap derived from it.
// contour[x] is the Y of the topmost solid pixel in column x; everything at
// or below it is ground. Consumers only ever see copies or the immutable mask.
type Terrain struct {
	width, height int
	contour       []int
	ground        Sprite

	pix     []color.NRGBA
	mask    *Mask
	dirty   bool
	version uint64
}

// NewTerrain creates a flat terrain at half height textured with ground.
func NewTerrain(width, height int, ground Sprite) (*Terrain, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("sim: terrain size %dx%d: %w", width, height, ErrInvalidParams)
	}
	if ground.W <= 0 || ground.H <= 0 || len(ground.Pix) != ground.W*ground.H {
		return nil, fmt.Errorf("sim: ground tile: %w", ErrMalformedSprite)
	}
	t := &Terrain{
		width:   width,
		height:  height,
		contour: make([]int, width),
		ground:  ground,
	}
	for x := range t.contour {
		t.contour[x] = height / 2
	}
	t.Rasterize()
	return t, nil
}

// Width returns the field width in pixels.
func (t *Terrain) Width() int { return t.width }

// Height returns the field height in pixels.
func (t *Terrain) Height() int { return t.height }

// Generate fills the contour with the sum of three sine waves whose
// frequency and phase multipliers are drawn from [1,2), [2,3) and [3,4).
// The contour is not rasterized; callers flatten pads first.
func (t *Terrain) Generate(rng *rand.Rand, peak, flatness float64) {
	r1 := rng.Float64() + 1
	r2 := rng.Float64() + 2
	r3 := rng.Float64() + 3
	offset := float64(t.height) / 2

	for x := range t.contour {
		fx := float64(x)
		h := peak / r1 * math.Sin(fx/flatness*r1+r1)
		h += peak / r2 * math.Sin(fx/flatness*r2+r2)
		h += peak / r3 * math.Sin(fx/flatness*r3+r3)
		h += offset
		t.contour[x] = t.clampY(int(h))
	}
}

// SetContour replaces the contour. Values are clamped into the field and
// the slice is copied; extra or missing columns are an error.
func (t *Terrain) SetContour(c []int) error {
	if len(c) != t.width {
		return fmt.Errorf("sim: contour has %d columns, field is %d wide: %w", len(c), t.width, ErrInvalidParams)
	}
	for x, y := range c {
		t.contour[x] = t.clampY(y)
	}
	return nil
}

// HeightAt returns the contour at column x, clamping x into the field.
func (t *Terrain) HeightAt(x int) int {
	if x < 0 {
		x = 0
	}
	if x >= t.width {
		x = t.width - 1
	}
	return t.contour[x]
}

// Contour returns a copy of the contour.
func (t *Terrain) Contour() []int {
	out := make([]int, len(t.contour))
	copy(out, t.contour)
	return out
}

// FlattenUnder levels footprint columns starting at each living combatant's
// column to the height at that column.
func (t *Terrain) FlattenUnder(cs []Combatant, footprint int) {
	for _, c := range cs {
		if !c.Alive {
			continue
		}
		x0 := c.Column()
		if x0 < 0 || x0 >= t.width {
			continue
		}
		h := t.contour[x0]
		for x := x0; x < x0+footprint && x < t.width; x++ {
			t.contour[x] = h
		}
	}
}

// Rasterize rebuilds the bitmap and mask from the contour. Ground pixels
// sample the tiled ground sprite; the mask is derived from the same bitmap.
func (t *Terrain) Rasterize() {
	pix := make([]color.NRGBA, t.width*t.height)
	gw, gh := t.ground.W, t.ground.H
	for x := 0; x < t.width; x++ {
		top := t.contour[x]
		for y := top; y < t.height; y++ {
			pix[y*t.width+x] = t.ground.Pix[(y%gh)*gw+x%gw]
		}
	}

	// Dimensions and length match by construction.
	mask, _ := BuildMask(pix, t.width, t.height, 0)

	t.pix = pix
	t.mask = mask
	t.dirty = true
	t.version++
}

// ApplyCrater carves the explosion mask, placed by tr, out of the contour.
// A column only changes when an opaque explosion pixel lies deeper than the
// current ground top, so ground can recede but never grow. The touched
// columns are returned in ascending order. The bitmap is not rebuilt; call
// Settle afterwards.
func (t *Terrain) ApplyCrater(m *Mask, tr Transform) []int {
	touched := make(map[int]bool)
	for x := 0; x < m.w; x++ {
		for y := 0; y < m.h; y++ {
			if !m.opaque[y*m.w+x] {
				continue
			}
			p := tr.Apply(V(float64(x), float64(y)))
			col := int(math.Floor(p.X))
			if col < 0 || col >= t.width || p.Y <= 0 {
				continue
			}
			depth := t.clampY(int(p.Y))
			if depth > t.contour[col] {
				t.contour[col] = depth
				touched[col] = true
			}
		}
	}

	cols := make([]int, 0, len(touched))
	for x := 0; x < t.width; x++ {
		if touched[x] {
			cols = append(cols, x)
		}
	}
	return cols
}

// Settle snaps living combatants onto the contour, re-levels their pads and
// rebuilds the bitmap.
func (t *Terrain) Settle(cs []Combatant, footprint int) {
	for i := range cs {
		if !cs[i].Alive {
			continue
		}
		cs[i].Pos.Y = float64(t.HeightAt(cs[i].Column()))
	}
	t.FlattenUnder(cs, footprint)
	t.Rasterize()
}

// Mask returns the current collision mask.
func (t *Terrain) Mask() *Mask {
	return t.mask
}

// Version increments every time the bitmap is rebuilt.
func (t *Terrain) Version() uint64 {
	return t.version
}

// TakeSnapshot returns a copy of the bitmap when it changed since the last
// call, and nil otherwise.
func (t *Terrain) TakeSnapshot() *TerrainSnapshot {
	if !t.dirty {
		return nil
	}
	t.dirty = false
	pix := make([]color.NRGBA, len(t.pix))
	copy(pix, t.pix)
	return &TerrainSnapshot{
		W:       t.width,
		H:       t.height,
		Pix:     pix,
		Contour: t.Contour(),
		Version: t.version,
	}
}

func (t *Terrain) clampY(y int) int {
	if y < 0 {
		return 0
	}
	if y >= t.height {
		return t.height - 1
	}
	return y
}

// TerrainSnapshot is a read-only copy of the terrain handed to renderers.
type TerrainSnapshot struct {
	W, H    int
	Pix     []color.NRGBA
	Contour []int
	Version uint64
}

// Solid reports whether the snapshot pixel at (x, y) is ground.
func (s *TerrainSnapshot) Solid(x, y int) bool {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return false
	}
	return s.Pix[y*s.W+x].A > 0
}
