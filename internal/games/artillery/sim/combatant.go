package sim

import (
	"math"

	"github.com/vovakirdan/tui-artillery/internal/core"
)

// ColorTag identifies a combatant's team colour.
type ColorTag int

const (
	Red ColorTag = iota
	Green
	Blue
	Purple
	Orange
	Indigo
	Yellow
	SaddleBrown
	Tomato
	Turquoise
)

// Palette is the colour assignment order for combatants.
var Palette = []ColorTag{Red, Green, Blue, Purple, Orange, Indigo, Yellow, SaddleBrown, Tomato, Turquoise}

// String returns the colour name.
func (c ColorTag) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	case Purple:
		return "Purple"
	case Orange:
		return "Orange"
	case Indigo:
		return "Indigo"
	case Yellow:
		return "Yellow"
	case SaddleBrown:
		return "SaddleBrown"
	case Tomato:
		return "Tomato"
	case Turquoise:
		return "Turquoise"
	default:
		return "Unknown"
	}
}

// Aim limits, measured from vertical-up.
const (
	MinAngle = -math.Pi / 2
	MaxAngle = math.Pi / 2
)

// Combatant is one cannon on the field. The slice of combatants lives for a
// whole round; dead combatants stay in place with Alive == false.
type Combatant struct {
	Pos   Vec2 // Bottom-left corner of the carriage, on the terrain contour
	Alive bool
	Color ColorTag
	Angle float64 // Radians from vertical-up, clamped to [MinAngle, MaxAngle]
	Power float64 // Clamped to [0, Params.MaxPower]
}

// Aim adjusts the gun angle by delta radians, clamping silently.
func (c *Combatant) Aim(delta float64) {
	c.Angle = core.ClampF(c.Angle+delta, MinAngle, MaxAngle)
}

// Charge adjusts the power by delta, clamping silently to [0, maxPower].
func (c *Combatant) Charge(delta, maxPower float64) {
	c.Power = core.ClampF(c.Power+delta, 0, maxPower)
}

// Column returns the terrain column the combatant stands on.
func (c Combatant) Column() int {
	return int(c.Pos.X)
}

// BodyTransform places the carriage sprite with its bottom-left corner on Pos.
func (c Combatant) BodyTransform(body Sprite, scale float64) Transform {
	return Translate(-body.Pivot.X, -body.Pivot.Y).
		Then(Scale(scale)).
		Then(Translate(c.Pos.X, c.Pos.Y))
}

// GunTransform places the cannon sprite rotated by Angle around the muzzle.
func (c Combatant) GunTransform(gun Sprite, scale float64, muzzle Vec2) Transform {
	return Translate(-gun.Pivot.X, -gun.Pivot.Y).
		Then(Rotate(c.Angle)).
		Then(Scale(scale)).
		Then(Translate(c.Pos.X+muzzle.X, c.Pos.Y+muzzle.Y))
}

// AliveCount returns the number of living combatants.
func AliveCount(cs []Combatant) int {
	n := 0
	for _, c := range cs {
		if c.Alive {
			n++
		}
	}
	return n
}
