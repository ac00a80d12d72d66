package artillery

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-artillery/internal/config"
	"github.com/vovakirdan/tui-artillery/internal/games/artillery/assets"
	"github.com/vovakirdan/tui-artillery/internal/games/artillery/sim"
)

// flatDuel builds a two-cannon world on flat ground at y = 250.
func flatDuel(t *testing.T, positions ...float64) *sim.World {
	t.Helper()
	p := sim.DefaultParams()
	p.Players = len(positions)

	lib, err := sim.NewMaskLibrary(assets.Builtin(), 1)
	if err != nil {
		t.Fatal(err)
	}
	w, err := sim.NewWorld(p, lib, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	contour := make([]int, p.Width)
	for x := range contour {
		contour[x] = 250
	}
	if err := w.StartRound(sim.Setup{Contour: contour, Positions: positions}); err != nil {
		t.Fatal(err)
	}
	return w
}

func perfectPilot(thinkTicks int) *Autopilot {
	cfg := config.DefaultArtilleryConfig().Autopilot
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.InitialLevel = 1
	cfg.ThinkTicks = thinkTicks
	return NewAutopilot(cfg, rand.New(rand.NewSource(1)))
}

func TestAutopilotHitsOnFlatGround(t *testing.T) {
	w := flatDuel(t, 100, 400)
	pilot := perfectPilot(0)

	launched := false
	for range 500 {
		if w.Tick(pilot.Decide(w, 0)).Launched {
			launched = true
			break
		}
	}
	if !launched {
		t.Fatal("autopilot never fired")
	}
	if pilot.Target() != 1 || pilot.Shots() != 1 {
		t.Errorf("target %d shots %d", pilot.Target(), pilot.Shots())
	}

	for range 5000 {
		res := w.Tick(sim.Input{})
		if res.Outcome == sim.OutcomeNone {
			continue
		}
		if res.Outcome != sim.OutcomeHitCombatant || res.Hit != 1 {
			t.Fatalf("outcome %v hit %d at %+v, want combatant 1", res.Outcome, res.Hit, res.Point)
		}
		return
	}
	t.Fatal("shot never landed")
}

func TestAutopilotThinkDelay(t *testing.T) {
	w := flatDuel(t, 100, 400)
	pilot := perfectPilot(3)

	for i := range 3 {
		if in := pilot.Decide(w, 0); in != (sim.Input{}) {
			t.Fatalf("call %d acted before thinking: %+v", i, in)
		}
	}
	in := pilot.Decide(w, 0)
	if in.AimDelta == 0 && in.PowerDelta == 0 && !in.Launch {
		t.Error("no action after think delay")
	}
	if math.Abs(in.AimDelta) > sim.Radians(maxAimPerStep)+1e-12 || math.Abs(in.PowerDelta) > maxPowerPerStep {
		t.Errorf("step too large: %+v", in)
	}
}

func TestAutopilotOutOfRange(t *testing.T) {
	w := flatDuel(t, 100, 400)
	if in := perfectPilot(0).Decide(w, 7); in != (sim.Input{}) {
		t.Errorf("bad index produced %+v", in)
	}
}

func TestLandingFlatGround(t *testing.T) {
	p := sim.DefaultParams()
	contour := make([]int, p.Width)
	for x := range contour {
		contour[x] = 250
	}

	// Straight up comes back down where it left.
	x, ok := landing(p, contour, sim.V(120, 240), 0, 200)
	if !ok || math.Abs(x-120) > 1e-6 {
		t.Errorf("vertical shot landed at %v (ok=%v)", x, ok)
	}

	// Flat out at full power leaves the field.
	if _, ok := landing(p, contour, sim.V(120, 100), sim.MaxAngle, p.MaxPower); ok {
		t.Error("horizontal full-power shot should exit")
	}

	// More power at 45° goes further.
	near, _ := landing(p, contour, sim.V(120, 240), math.Pi/4, 150)
	far, _ := landing(p, contour, sim.V(120, 240), math.Pi/4, 250)
	if far <= near {
		t.Errorf("range did not grow with power: %v then %v", near, far)
	}
}

func TestNearestEnemy(t *testing.T) {
	cs := []sim.Combatant{
		{Pos: sim.V(100, 0), Alive: true},
		{Pos: sim.V(150, 0), Alive: false},
		{Pos: sim.V(300, 0), Alive: true},
		{Pos: sim.V(20, 0), Alive: true},
	}
	if got := nearestEnemy(cs, 0); got != 3 {
		t.Errorf("nearestEnemy = %d, want 3", got)
	}
	cs[3].Alive = false
	if got := nearestEnemy(cs, 0); got != 2 {
		t.Errorf("nearestEnemy = %d, want 2", got)
	}
	cs[2].Alive = false
	if got := nearestEnemy(cs, 0); got != -1 {
		t.Errorf("nearestEnemy with no enemies = %d, want -1", got)
	}
}
