package sim

import (
	"errors"
	"fmt"
	"image/color"
)

// SpriteID names one of the sprites the simulation needs.
type SpriteID int

const (
	SpriteBody SpriteID = iota
	SpriteGun
	SpriteRocket
	SpriteExplosion
	SpriteGround
)

// AllSprites lists every sprite the simulation requires at startup.
var AllSprites = []SpriteID{SpriteBody, SpriteGun, SpriteRocket, SpriteExplosion, SpriteGround}

// String returns the sprite's asset name.
func (id SpriteID) String() string {
	switch id {
	case SpriteBody:
		return "carriage"
	case SpriteGun:
		return "cannon"
	case SpriteRocket:
		return "rocket"
	case SpriteExplosion:
		return "explosion"
	case SpriteGround:
		return "ground"
	default:
		return "unknown"
	}
}

// Sprite is an immutable pixel buffer supplied by the asset collaborator.
// Pix is row-major with len(Pix) == W*H. Pivot is the local point that the
// owning entity's position refers to.
type Sprite struct {
	W, H  int
	Pix   []color.NRGBA
	Pivot Vec2
}

// At returns the pixel at (x, y).
func (s Sprite) At(x, y int) color.NRGBA {
	return s.Pix[y*s.W+x]
}

// ErrMalformedSprite is returned when a pixel buffer does not match its dimensions.
var ErrMalformedSprite = errors.New("malformed sprite buffer")

// Mask is an immutable per-pixel opacity grid.
type Mask struct {
	w, h   int
	opaque []bool
}

// BuildMask converts a pixel buffer into an opacity mask. A pixel is opaque
// when its alpha is greater than threshold.
func BuildMask(pix []color.NRGBA, w, h int, threshold uint8) (*Mask, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrMalformedSprite, w, h)
	}
	if len(pix) != w*h {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrMalformedSprite, len(pix), w, h)
	}

	m := &Mask{w: w, h: h, opaque: make([]bool, w*h)}
	for i, p := range pix {
		m.opaque[i] = p.A > threshold
	}
	return m, nil
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.w }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.h }

// Opaque reports whether (x, y) is opaque. Out-of-bounds points are transparent.
func (m *Mask) Opaque(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.opaque[y*m.w+x]
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	n := 0
	for _, o := range m.opaque {
		if o {
			n++
		}
	}
	return n
}

// MaskLibrary holds the sprites and their masks, built once at load time
// and read-only afterwards.
type MaskLibrary struct {
	sprites map[SpriteID]Sprite
	masks   map[SpriteID]*Mask
}

// NewMaskLibrary builds a mask for every required sprite. A missing or
// malformed sprite is an initialization failure.
func NewMaskLibrary(sprites map[SpriteID]Sprite, threshold uint8) (*MaskLibrary, error) {
	lib := &MaskLibrary{
		sprites: make(map[SpriteID]Sprite, len(AllSprites)),
		masks:   make(map[SpriteID]*Mask, len(AllSprites)),
	}
	for _, id := range AllSprites {
		s, ok := sprites[id]
		if !ok {
			return nil, fmt.Errorf("sim: sprite %s: %w", id, ErrMalformedSprite)
		}
		m, err := BuildMask(s.Pix, s.W, s.H, threshold)
		if err != nil {
			return nil, fmt.Errorf("sim: sprite %s: %w", id, err)
		}
		lib.sprites[id] = s
		lib.masks[id] = m
	}
	return lib, nil
}

// Mask returns the mask for a sprite.
func (l *MaskLibrary) Mask(id SpriteID) *Mask {
	return l.masks[id]
}

// Sprite returns the pixel buffer for a sprite.
func (l *MaskLibrary) Sprite(id SpriteID) Sprite {
	return l.sprites[id]
}
