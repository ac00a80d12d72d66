package sim

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
)

// ErrNoCombatants is returned when a round is set up with fewer than two
// combatants.
var ErrNoCombatants = errors.New("sim: a round needs at least two combatants")

// Input is what the input collaborator supplies once per tick.
type Input struct {
	AimDelta   float64 // Radians
	PowerDelta float64
	Launch     bool
	Quit       bool
}

// Setup overrides the random parts of a round. Nil fields are generated.
type Setup struct {
	Contour   []int     // One height per column
	Positions []float64 // Combatant X positions, arena order
}

// TickResult describes what happened during one tick.
type TickResult struct {
	Tick      uint64
	Launched  bool
	Outcome   Outcome // OutcomeNone unless a flight ended this tick
	Hit       int     // Index of the combatant hit, or -1
	Point     Vec2    // Where the flight ended
	Craters   []int   // Terrain columns carved this tick
	RoundOver bool    // The round ended this tick
	Quit      bool
}

// Result summarises a round.
type Result struct {
	Over   bool
	Winner int // Index of the last combatant standing, or -1
	Color  ColorTag
	Shots  int
	Ticks  uint64
}

// World is the whole simulation: terrain, combatants, the projectile,
// particles and the turn controller. It is driven by Tick from a single
// goroutine.
type World struct {
	params Params
	lib    *MaskLibrary
	rng    *rand.Rand
	log    *log.Logger

	terrain    *Terrain
	combatants []Combatant
	turn       *TurnController
	projectile Projectile
	particles  *ParticleSystem
	smoke      *SmokeTrail

	tick  uint64
	nowMs float64
	shots int
}

// NewWorld validates the parameters and builds an empty world. Call
// StartRound before ticking.
func NewWorld(p Params, lib *MaskLibrary, rng *rand.Rand) (*World, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if lib == nil {
		return nil, errors.New("sim: nil mask library")
	}
	if rng == nil {
		return nil, errors.New("sim: nil random source")
	}

	terrain, err := NewTerrain(p.Width, p.Height, lib.Sprite(SpriteGround))
	if err != nil {
		return nil, err
	}

	return &World{
		params:    p,
		lib:       lib,
		rng:       rng,
		log:       log.New(io.Discard),
		terrain:   terrain,
		turn:      NewTurnController(nil),
		particles: NewParticleSystem(rng),
		smoke:     NewSmokeTrail(rng),
	}, nil
}

// SetLogger replaces the logger. Nil silences logging.
func (w *World) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	w.log = l
}

// StartRound generates (or installs) the terrain, places the combatants and
// hands the first turn to combatant 0.
func (w *World) StartRound(s Setup) error {
	p := w.params

	if s.Contour != nil {
		if err := w.terrain.SetContour(s.Contour); err != nil {
			return err
		}
	} else {
		w.terrain.Generate(w.rng, p.PeakHeight, p.Flatness)
	}

	positions := s.Positions
	if positions == nil {
		positions = DefaultPositions(p.Width, p.Players)
	}
	if len(positions) < 2 {
		return ErrNoCombatants
	}
	if len(positions) > len(Palette) {
		return fmt.Errorf("%w: %d combatants, at most %d", ErrInvalidParams, len(positions), len(Palette))
	}

	cs := make([]Combatant, len(positions))
	for i, x := range positions {
		if x < 0 || x >= float64(p.Width) {
			return fmt.Errorf("%w: combatant %d at x=%.1f outside the field", ErrInvalidParams, i, x)
		}
		cs[i] = Combatant{
			Pos:   V(x, float64(w.terrain.HeightAt(int(x)))),
			Alive: true,
			Color: Palette[i],
			Angle: p.InitialAngle,
			Power: p.InitialPower,
		}
	}
	w.terrain.FlattenUnder(cs, p.Footprint)
	w.terrain.Rasterize()

	w.combatants = cs
	w.turn.Reset(cs)
	w.projectile = Projectile{}
	w.particles.Clear()
	w.smoke.Clear()
	w.tick = 0
	w.nowMs = 0
	w.shots = 0

	w.log.Info("round started", "combatants", len(cs), "width", p.Width, "height", p.Height)
	return nil
}

// DefaultPositions spreads n combatants evenly: x = width/(n+1)*(i+1).
func DefaultPositions(width, n int) []float64 {
	out := make([]float64, n)
	step := width / (n + 1)
	for i := range out {
		out[i] = float64(step * (i + 1))
	}
	return out
}

// Tick advances the world by one frame in a fixed order:
// input, integrate, collide, resolve, age particles, finish turn.
func (w *World) Tick(in Input) TickResult {
	w.tick++
	w.nowMs += w.params.TickMs
	res := TickResult{Tick: w.tick, Hit: -1, Quit: in.Quit}

	if w.turn.AcceptsInput() {
		c := &w.combatants[w.turn.Current()]
		c.Aim(in.AimDelta)
		c.Charge(in.PowerDelta, w.params.MaxPower)
		if in.Launch {
			w.launch()
			res.Launched = true
		}
	}

	if w.projectile.Flying() {
		w.projectile.Step(w.params.Gravity)
		w.smoke.Puff(w.projectile.Pos, w.params.SmokePerTick, w.params.SmokeJitter)

		outcome, hit, point := w.checkFlight()
		if outcome != OutcomeNone {
			res.Outcome, res.Hit, res.Point = outcome, hit, point
			res.Craters = w.resolve(outcome, hit, point)
		}
	}

	w.particles.Update(w.nowMs)

	if w.turn.Phase() == PhaseResolving && w.particles.Len() == 0 {
		w.turn.Finish(w.combatants)
		if w.turn.Phase() == PhaseRoundOver {
			res.RoundOver = true
			r := w.Result()
			w.log.Info("round over", "winner", r.Winner, "color", r.Color, "shots", r.Shots, "ticks", r.Ticks)
		} else {
			w.log.Debug("turn", "player", w.turn.Current(), "color", w.combatants[w.turn.Current()].Color)
		}
	}

	return res
}

func (w *World) launch() {
	c := w.combatants[w.turn.Current()]
	w.projectile.Launch(c.Pos.Add(w.params.Muzzle), c.Angle, c.Power, w.params.PowerDivisor)
	w.smoke.Clear()
	w.turn.Launch()
	w.shots++
	w.log.Debug("launch", "player", w.turn.Shooter(), "angle", int(math.Round(Degrees(c.Angle))), "power", int(c.Power))
}

// checkFlight runs the collision checks for the current tick. Living
// combatants other than the shooter are tested first, in arena order, body
// before gun; then the terrain; then leaving the field.
func (w *World) checkFlight() (Outcome, int, Vec2) {
	p := w.params
	rocket := w.lib.Mask(SpriteRocket)
	rocketT := w.projectile.Transform(w.lib.Sprite(SpriteRocket), p.RocketScale)

	body, gun := w.lib.Mask(SpriteBody), w.lib.Mask(SpriteGun)
	for i, c := range w.combatants {
		if !c.Alive || i == w.turn.Shooter() {
			continue
		}
		if pt, ok := w.collide(rocket, rocketT, body, c.BodyTransform(w.lib.Sprite(SpriteBody), p.BodyScale), "carriage", i); ok {
			return OutcomeHitCombatant, i, pt
		}
		if pt, ok := w.collide(rocket, rocketT, gun, c.GunTransform(w.lib.Sprite(SpriteGun), p.BodyScale, p.Muzzle), "cannon", i); ok {
			return OutcomeHitCombatant, i, pt
		}
	}

	if pt, ok := w.collide(rocket, rocketT, w.terrain.Mask(), Identity(), "terrain", -1); ok {
		return OutcomeHitTerrain, -1, pt
	}

	if w.projectile.OutOfField(p.Width, p.Height) {
		return OutcomeExited, -1, w.projectile.Pos
	}
	return OutcomeNone, -1, Vec2{}
}

func (w *World) collide(a *Mask, ta Transform, b *Mask, tb Transform, what string, idx int) (Vec2, bool) {
	if !tb.Invertible() {
		w.log.Warn("degenerate transform, skipping collision", "target", what, "combatant", idx, "det", tb.Det())
		return Vec2{}, false
	}
	return Collide(a, ta, b, tb)
}

func (w *World) resolve(outcome Outcome, hit int, point Vec2) []int {
	w.projectile.End()
	w.smoke.Clear()
	w.turn.Land()

	switch outcome {
	case OutcomeHitCombatant:
		w.combatants[hit].Alive = false
		w.log.Info("kill", "shooter", w.turn.Shooter(), "victim", hit, "color", w.combatants[hit].Color, "x", int(point.X), "y", int(point.Y))
		return w.blast(point, w.params.Kill)
	case OutcomeHitTerrain:
		w.log.Info("impact", "shooter", w.turn.Shooter(), "x", int(point.X), "y", int(point.Y))
		return w.blast(point, w.params.Impact)
	default:
		w.log.Debug("exited field", "shooter", w.turn.Shooter(), "x", int(point.X), "y", int(point.Y))
		return nil
	}
}

// blast emits the explosion particles and carves a randomly rotated crater
// centred on point.
func (w *World) blast(point Vec2, bp BlastParams) []int {
	w.particles.Emit(point, bp.Particles, bp.Size, bp.MaxAgeMs, w.nowMs)
	if bp.CraterRadius <= 0 {
		return nil
	}

	exp := w.lib.Sprite(SpriteExplosion)
	tr := CraterTransform(exp, point, bp.CraterRadius, w.rng.Float64()*2*math.Pi)
	if !tr.Invertible() {
		w.log.Warn("degenerate crater transform", "radius", bp.CraterRadius)
		return nil
	}

	cols := w.terrain.ApplyCrater(w.lib.Mask(SpriteExplosion), tr)
	w.terrain.Settle(w.combatants, w.params.Footprint)
	return cols
}

// CraterTransform centres the explosion sprite on point, rotated by angle and
// scaled so its half-width equals radius.
func CraterTransform(exp Sprite, point Vec2, radius, angle float64) Transform {
	scale := radius / (float64(exp.W) / 2)
	return Translate(-exp.Pivot.X, -exp.Pivot.Y).
		Then(Rotate(angle)).
		Then(Scale(scale)).
		Then(Translate(point.X, point.Y))
}

// Result reports the round outcome so far.
func (w *World) Result() Result {
	r := Result{
		Over:   w.turn.Phase() == PhaseRoundOver,
		Winner: -1,
		Shots:  w.shots,
		Ticks:  w.tick,
	}
	if r.Over && AliveCount(w.combatants) == 1 {
		for i, c := range w.combatants {
			if c.Alive {
				r.Winner = i
				r.Color = c.Color
			}
		}
	}
	return r
}

// Params returns the world's parameters.
func (w *World) Params() Params { return w.params }

// Library returns the sprite masks the world collides with.
func (w *World) Library() *MaskLibrary { return w.lib }

// Phase returns the turn phase.
func (w *World) Phase() Phase { return w.turn.Phase() }

// Current returns the index of the aiming combatant.
func (w *World) Current() int { return w.turn.Current() }

// Shooter returns the index of the combatant whose shot is in the air, or -1.
func (w *World) Shooter() int { return w.turn.Shooter() }

// Combatants returns a copy of the arena.
func (w *World) Combatants() []Combatant {
	out := make([]Combatant, len(w.combatants))
	copy(out, w.combatants)
	return out
}

// Contour returns a copy of the terrain contour.
func (w *World) Contour() []int { return w.terrain.Contour() }

// Projectile returns a copy of the projectile state.
func (w *World) Projectile() Projectile { return w.projectile }

// Particles returns the number of live explosion particles.
func (w *World) Particles() int { return w.particles.Len() }

// Ticks returns the ticks elapsed in the round.
func (w *World) Ticks() uint64 { return w.tick }

// NowMs returns the simulated clock in milliseconds.
func (w *World) NowMs() float64 { return w.nowMs }
