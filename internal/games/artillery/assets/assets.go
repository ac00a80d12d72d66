// Package assets supplies the sprite buffers the artillery simulation builds
// its masks from: a procedural built-in set, or PNG/BMP files from a directory.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/vovakirdan/tui-artillery/internal/games/artillery/sim"
)

// ErrMissingSprite is returned when a sprite file cannot be found.
var ErrMissingSprite = errors.New("assets: missing sprite")

// Extensions tried, in order, for each sprite name.
var Extensions = []string{".png", ".bmp"}

// Pivot returns the default anchor for a sprite of the given size: the
// carriage stands on its bottom-left corner, the cannon turns around its
// bottom centre, everything else is centred.
func Pivot(id sim.SpriteID, w, h int) sim.Vec2 {
	switch id {
	case sim.SpriteBody:
		return sim.V(0, float64(h))
	case sim.SpriteGun:
		return sim.V(float64(w)/2, float64(h))
	case sim.SpriteGround:
		return sim.Vec2{}
	default:
		return sim.V(float64(w)/2, float64(h)/2)
	}
}

// Load returns the built-in sprites when dir is empty and the sprites in
// dir otherwise.
func Load(dir string) (map[sim.SpriteID]sim.Sprite, error) {
	if dir == "" {
		return Builtin(), nil
	}
	return LoadDir(dir)
}

// LoadDir reads every required sprite from dir. Files are named after the
// sprite (carriage, cannon, rocket, explosion, ground) with a .png or .bmp
// extension. A missing or undecodable file fails the whole load.
func LoadDir(dir string) (map[sim.SpriteID]sim.Sprite, error) {
	out := make(map[sim.SpriteID]sim.Sprite, len(sim.AllSprites))
	for _, id := range sim.AllSprites {
		path, err := find(dir, id.String())
		if err != nil {
			return nil, err
		}
		img, err := decode(path)
		if err != nil {
			return nil, fmt.Errorf("assets: %s: %w", path, err)
		}
		out[id] = FromImage(id, img)
	}
	return out, nil
}

func find(dir, name string) (string, error) {
	for _, ext := range Extensions {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrMissingSprite, name, dir)
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// FromImage converts any decoded image into a sprite with the default pivot.
func FromImage(id sim.SpriteID, img image.Image) sim.Sprite {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	w, h := b.Dx(), b.Dy()
	pix := make([]color.NRGBA, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix[y*w+x] = dst.NRGBAAt(x, y)
		}
	}
	return sim.Sprite{W: w, H: h, Pix: pix, Pivot: Pivot(id, w, h)}
}

// Resize scales a sprite to w x h with nearest-neighbour sampling so hard
// mask edges survive.
func Resize(id sim.SpriteID, s sim.Sprite, w, h int) sim.Sprite {
	if w == s.W && h == s.H {
		return s
	}
	return FromImage(id, scaleImage(ToImage(s), w, h))
}

// Fit scales down every sprite whose longer side exceeds maxSize, keeping
// its aspect ratio. A maxSize of 0 returns the sprites unchanged.
func Fit(sprites map[sim.SpriteID]sim.Sprite, maxSize int) map[sim.SpriteID]sim.Sprite {
	if maxSize <= 0 {
		return sprites
	}
	out := make(map[sim.SpriteID]sim.Sprite, len(sprites))
	for id, s := range sprites {
		long := max(s.W, s.H)
		if long <= maxSize {
			out[id] = s
			continue
		}
		w := max(s.W*maxSize/long, 1)
		h := max(s.H*maxSize/long, 1)
		out[id] = Resize(id, s, w, h)
	}
	return out
}

func scaleImage(src image.Image, w, h int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// ToImage wraps a sprite's pixels in an image for encoding or scaling.
func ToImage(s sim.Sprite) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.W, s.H))
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			img.SetNRGBA(x, y, s.Pix[y*s.W+x])
		}
	}
	return img
}
