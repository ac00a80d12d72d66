package sim

import (
	"fmt"
	"math"
)

// CombatantView is a living combatant as the renderer sees it.
type CombatantView struct {
	Index int
	Pos   Vec2
	Angle float64
	Power float64
	Color ColorTag
	Body  Transform
	Gun   Transform
}

// ProjectileView is the rocket in flight.
type ProjectileView struct {
	Pos       Vec2
	Angle     float64
	Transform Transform
}

// HUD is the current player's readout.
type HUD struct {
	Player   int
	Color    ColorTag
	AngleDeg int
	Power    int
}

// String formats the readout for a status line.
func (h HUD) String() string {
	return fmt.Sprintf("%s  angle %d°  power %d", h.Color, h.AngleDeg, h.Power)
}

// Frame is everything the rendering collaborator needs for one tick. Terrain
// is nil unless the bitmap was rebuilt since the previous Frame call, so
// renderers keep the last snapshot they received.
type Frame struct {
	Tick       uint64
	Phase      Phase
	Terrain    *TerrainSnapshot
	Combatants []CombatantView
	Projectile *ProjectileView
	Particles  []Particle
	Smoke      []Vec2
	HUD        HUD
}

// Frame builds the render view of the current state. It consumes the
// terrain's dirty flag.
func (w *World) Frame() Frame {
	p := w.params
	f := Frame{
		Tick:    w.tick,
		Phase:   w.turn.Phase(),
		Terrain: w.terrain.TakeSnapshot(),
	}

	body, gun := w.lib.Sprite(SpriteBody), w.lib.Sprite(SpriteGun)
	for i, c := range w.combatants {
		if !c.Alive {
			continue
		}
		f.Combatants = append(f.Combatants, CombatantView{
			Index: i,
			Pos:   c.Pos,
			Angle: c.Angle,
			Power: c.Power,
			Color: c.Color,
			Body:  c.BodyTransform(body, p.BodyScale),
			Gun:   c.GunTransform(gun, p.BodyScale, p.Muzzle),
		})
	}

	if w.projectile.Flying() {
		f.Projectile = &ProjectileView{
			Pos:       w.projectile.Pos,
			Angle:     w.projectile.Angle,
			Transform: w.projectile.Transform(w.lib.Sprite(SpriteRocket), p.RocketScale),
		}
	}

	f.Particles = append([]Particle(nil), w.particles.Particles()...)
	f.Smoke = append([]Vec2(nil), w.smoke.Puffs()...)

	if cur := w.turn.Current(); cur >= 0 && cur < len(w.combatants) {
		c := w.combatants[cur]
		f.HUD = HUD{
			Player:   cur,
			Color:    c.Color,
			AngleDeg: int(math.Round(Degrees(c.Angle))),
			Power:    int(c.Power),
		}
	}
	return f
}

// RefreshTerrain marks the terrain bitmap dirty so the next Frame carries a
// snapshot. Renderers call it after losing their cached copy.
func (w *World) RefreshTerrain() {
	w.terrain.dirty = true
}
