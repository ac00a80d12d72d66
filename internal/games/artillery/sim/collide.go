package sim

import "math"

// Collide reports whether any opaque pixel of a, placed by ta, lands on an
// opaque pixel of b, placed by tb. It scans a column by column (x ascending,
// then y ascending) and returns the field-space position of the first
// colliding pixel of a. The cost is proportional to the area of a.
//
// A non-invertible tb yields no collision.
func Collide(a *Mask, ta Transform, b *Mask, tb Transform) (Vec2, bool) {
	inv, ok := tb.Inverse()
	if !ok {
		return Vec2{}, false
	}
	aToB := ta.Then(inv)

	for x := 0; x < a.w; x++ {
		for y := 0; y < a.h; y++ {
			if !a.opaque[y*a.w+x] {
				continue
			}
			local := V(float64(x), float64(y))
			p := aToB.Apply(local)
			bx := int(math.Floor(p.X))
			by := int(math.Floor(p.Y))
			if bx < 0 || bx >= b.w || by < 0 || by >= b.h {
				continue
			}
			if b.opaque[by*b.w+bx] {
				return ta.Apply(local), true
			}
		}
	}
	return Vec2{}, false
}
