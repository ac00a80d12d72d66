package artillery

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-artillery/internal/config"
	"github.com/vovakirdan/tui-artillery/internal/games/artillery/sim"
)

// Autopilot search grid and per-adjustment limits.
const (
	searchAngleStep = 5.0  // Degrees
	searchMinAngle  = -85.0
	searchMaxAngle  = 85.0
	searchPowerStep = 25.0
	searchMaxTicks  = 3000
	maxAimPerStep   = 6.0 // Degrees per adjustment
	maxPowerPerStep = 60.0
)

// Autopilot aims a cannon by simulating candidate shots against the terrain
// contour, then adds an aiming error that shrinks as it fires more shots.
type Autopilot struct {
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	thinkTicks int

	shots   int
	planned bool
	target  int
	angle   float64 // Radians
	power   float64
	wait    int
}

// NewAutopilot creates a CPU player. rng supplies the aiming error.
func NewAutopilot(cfg config.AutopilotConfig, rng *rand.Rand) *Autopilot {
	return &Autopilot{
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rng,
		thinkTicks: max(cfg.ThinkTicks, 0),
		target:     -1,
	}
}

// Shots returns how many shots this autopilot has fired.
func (a *Autopilot) Shots() int { return a.shots }

// Target returns the combatant index of the last plan, or -1.
func (a *Autopilot) Target() int { return a.target }

// Decide returns the input for the combatant at index self. It walks the
// aim towards its plan a little per call and fires once it gets there.
func (a *Autopilot) Decide(w *sim.World, self int) sim.Input {
	cs := w.Combatants()
	if self < 0 || self >= len(cs) {
		return sim.Input{}
	}
	me := cs[self]

	if !a.planned {
		a.plan(w, self)
		a.wait = a.thinkTicks
	}
	if a.wait > 0 {
		a.wait--
		return sim.Input{}
	}
	a.wait = a.thinkTicks

	dAngle := clampAbs(a.angle-me.Angle, sim.Radians(maxAimPerStep))
	dPower := clampAbs(a.power-me.Power, maxPowerPerStep)
	in := sim.Input{AimDelta: dAngle, PowerDelta: dPower}

	if math.Abs(a.angle-me.Angle) < 1e-9 && math.Abs(a.power-me.Power) < 1e-9 {
		in.Launch = true
		a.shots++
		a.planned = false
	}
	return in
}

// plan picks the nearest living enemy and the grid shot landing closest to
// it, then perturbs that shot by the current aiming error.
func (a *Autopilot) plan(w *sim.World, self int) {
	p := w.Params()
	cs := w.Combatants()
	contour := w.Contour()
	me := cs[self]

	a.target = nearestEnemy(cs, self)
	a.planned = true
	if a.target < 0 {
		a.angle, a.power = me.Angle, me.Power
		return
	}
	goal := cs[a.target].Pos.X + float64(p.Footprint)/2
	origin := me.Pos.Add(p.Muzzle)

	bestAngle, bestPower := me.Angle, me.Power
	bestErr := math.Inf(1)
	for deg := searchMinAngle; deg <= searchMaxAngle; deg += searchAngleStep {
		for power := searchPowerStep; power <= p.MaxPower; power += searchPowerStep {
			x, ok := landing(p, contour, origin, sim.Radians(deg), power)
			if !ok {
				continue
			}
			if err := math.Abs(x - goal); err < bestErr {
				bestErr, bestAngle, bestPower = err, sim.Radians(deg), power
			}
		}
	}

	ticks := int(w.Ticks())
	angleErr := sim.Radians(a.difficulty.AngleError(a.shots, ticks))
	powerErr := a.difficulty.PowerError(a.shots, ticks)
	a.angle = bestAngle + (a.rng.Float64()*2-1)*angleErr
	a.power = bestPower + (a.rng.Float64()*2-1)*powerErr

	a.angle = math.Max(sim.MinAngle, math.Min(sim.MaxAngle, a.angle))
	a.power = math.Max(0, math.Min(p.MaxPower, a.power))
}

// landing flies a shot with the simulation's own ballistics and returns the
// column where it first meets the contour.
func landing(p sim.Params, contour []int, origin sim.Vec2, angle, power float64) (float64, bool) {
	var pr sim.Projectile
	pr.Launch(origin, angle, power, p.PowerDivisor)
	for range searchMaxTicks {
		pr.Step(p.Gravity)
		if pr.OutOfField(p.Width, p.Height) {
			return 0, false
		}
		x := int(pr.Pos.X)
		if pr.Pos.Y >= float64(contour[x]) {
			return pr.Pos.X, true
		}
	}
	return 0, false
}

func nearestEnemy(cs []sim.Combatant, self int) int {
	best, bestDist := -1, math.Inf(1)
	for i, c := range cs {
		if i == self || !c.Alive {
			continue
		}
		if d := math.Abs(c.Pos.X - cs[self].Pos.X); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func clampAbs(v, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, v))
}
