package artillery

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-artillery/internal/config"
	"github.com/vovakirdan/tui-artillery/internal/core"
	"github.com/vovakirdan/tui-artillery/internal/games/artillery/assets"
	"github.com/vovakirdan/tui-artillery/internal/games/artillery/sim"
	"github.com/vovakirdan/tui-artillery/internal/registry"
)

func runtimeFor(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// perfectAim disables the autopilot's aiming error.
func perfectAim(cfg *config.ArtilleryConfig) {
	cfg.Autopilot.Difficulty.Enabled = false
	cfg.Autopilot.Difficulty.InitialLevel = 1
}

func TestRegisteredVariants(t *testing.T) {
	tests := []struct {
		id      string
		title   string
		players int
	}{
		{VariantClassic, "Artillery", 4},
		{VariantDuel, "Artillery Duel", 2},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if !registry.Exists(tt.id) {
				t.Fatalf("%q not registered", tt.id)
			}
			g, err := registry.Create(tt.id)
			if err != nil {
				t.Fatal(err)
			}
			if g.ID() != tt.id || g.Title() != tt.title {
				t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
			}
			g.Reset(runtimeFor(1))
			if st := g.State(); st.Players != tt.players {
				t.Errorf("Players = %d, want %d", st.Players, tt.players)
			}
		})
	}
}

func TestResetState(t *testing.T) {
	g := New(VariantClassic)
	g.Reset(runtimeFor(42))
	if g.Err() != nil {
		t.Fatalf("Reset failed: %v", g.Err())
	}

	st := g.State()
	if st.Current != 0 || st.Winner != core.NoWinner || st.GameOver || st.Paused || st.Shots != 0 {
		t.Errorf("fresh state = %+v", st)
	}
	if len(g.World().Combatants()) != 4 {
		t.Errorf("combatants = %d, want 4", len(g.World().Combatants()))
	}
}

func TestResetDeterministic(t *testing.T) {
	a, b := New(VariantClassic), New(VariantClassic)
	a.Reset(runtimeFor(7))
	b.Reset(runtimeFor(7))

	ca, cb := a.World().Contour(), b.World().Contour()
	for x := range ca {
		if ca[x] != cb[x] {
			t.Fatalf("contour differs at column %d: %d vs %d", x, ca[x], cb[x])
		}
	}

	c := New(VariantClassic)
	c.Reset(runtimeFor(8))
	same := true
	for x, y := range c.World().Contour() {
		if y != ca[x] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical terrain")
	}
}

func TestStepMapsControls(t *testing.T) {
	g := New(VariantDuel)
	g.Reset(runtimeFor(3))
	ctl := g.Config().Controls

	g.Step(press(core.ActionAimLeft, core.ActionAimLeft, core.ActionAimRightFine, core.ActionPowerUpFast, core.ActionPowerDown))

	c := g.World().Combatants()[0]
	wantAngle := 90 - 2*ctl.AimStep + ctl.FineAimStep
	if math.Abs(sim.Degrees(c.Angle)-wantAngle) > 1e-9 {
		t.Errorf("angle = %v°, want %v°", sim.Degrees(c.Angle), wantAngle)
	}
	wantPower := 100 + ctl.FastPowerStep - ctl.PowerStep
	if math.Abs(c.Power-wantPower) > 1e-9 {
		t.Errorf("power = %v, want %v", c.Power, wantPower)
	}

	g.Step(press(core.ActionFire))
	if !g.Last().Launched || g.World().Phase() != sim.PhaseLaunched {
		t.Errorf("fire did not launch: %+v phase %v", g.Last(), g.World().Phase())
	}
	if g.State().Shots != 1 {
		t.Errorf("Shots = %d, want 1", g.State().Shots)
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	g := New(VariantDuel)
	g.Reset(runtimeFor(3))

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause did not toggle")
	}
	ticks := g.World().Ticks()
	for range 10 {
		g.Step(press(core.ActionAimLeft))
	}
	if g.World().Ticks() != ticks {
		t.Error("world advanced while paused")
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause did not resume")
	}
	if g.World().Ticks() != ticks+1 {
		t.Errorf("ticks = %d, want %d", g.World().Ticks(), ticks+1)
	}
}

func TestQuit(t *testing.T) {
	g := New(VariantClassic)
	g.Reset(runtimeFor(1))
	if res := g.Step(press(core.ActionQuit)); !res.Quit {
		t.Error("quit action not reported")
	}
}

func TestBotsTakeLastSeats(t *testing.T) {
	g := New(VariantClassic)
	g.SetBots(2)
	g.Reset(runtimeFor(5))

	for i, want := range []bool{false, false, true, true} {
		if g.IsBot(i) != want {
			t.Errorf("IsBot(%d) = %v, want %v", i, g.IsBot(i), want)
		}
	}
	if g.State().Bots != 2 {
		t.Errorf("Bots = %d, want 2", g.State().Bots)
	}

	g.SetBots(9)
	g.Reset(runtimeFor(5))
	if g.State().Bots != 4 {
		t.Errorf("Bots = %d, want capped at 4", g.State().Bots)
	}
}

func TestBotDuelFinishes(t *testing.T) {
	g := New(VariantDuel)
	cfg := g.Config()
	perfectAim(&cfg)
	g.Configure(cfg)
	g.SetBots(2)
	g.Reset(runtimeFor(11))

	var st core.GameState
	for range 100000 {
		st = g.Step(core.NewInputFrame()).State
		if st.GameOver {
			break
		}
	}
	if !st.GameOver {
		t.Fatalf("round still running after %d ticks, %d shots", st.Ticks, st.Shots)
	}
	if st.Shots == 0 {
		t.Error("round over without a shot")
	}
	if st.Winner >= 0 && st.WinnerName == "" {
		t.Errorf("winner %d has no name", st.Winner)
	}

	// Further steps are ignored once the round is over.
	ticks := g.World().Ticks()
	g.Step(press(core.ActionFire))
	if g.World().Ticks() != ticks {
		t.Error("world advanced after round over")
	}
}

func TestResetFailureSurfaces(t *testing.T) {
	g := New(VariantClassic)
	cfg := g.Config()
	cfg.Sprites.Dir = filepath.Join(t.TempDir(), "none")
	g.Configure(cfg)

	var buf bytes.Buffer
	g.SetLogger(log.New(&buf))
	g.Reset(runtimeFor(1))

	if !errors.Is(g.Err(), assets.ErrMissingSprite) {
		t.Fatalf("Err = %v, want ErrMissingSprite", g.Err())
	}
	if !strings.Contains(buf.String(), "cannot start round") {
		t.Errorf("failure not logged: %q", buf.String())
	}

	// Still safe to drive.
	g.Step(press(core.ActionFire))
	for _, width := range []int{80, 24} {
		screen := core.NewScreen(width, 24)
		g.Render(screen)
		text := screen.String()
		if !strings.Contains(text, "artillery:") || !strings.Contains(text, "carriage") {
			t.Errorf("error not rendered at width %d:\n%s", width, text)
		}
	}
	if g.State().GameOver {
		t.Error("failed game reports game over")
	}
}

func TestSetSpritesOverrides(t *testing.T) {
	g := New(VariantDuel)
	cfg := g.Config()
	cfg.Sprites.Dir = "/does/not/exist"
	g.Configure(cfg)
	g.SetSprites(assets.Builtin())
	g.Reset(runtimeFor(1))
	if g.Err() != nil {
		t.Errorf("explicit sprites ignored: %v", g.Err())
	}
}

func TestParamsFromConfigDefaults(t *testing.T) {
	got := ParamsFromConfig(config.DefaultArtilleryConfig(), 60)
	if got != sim.DefaultParams() {
		t.Errorf("default config maps to\n%+v\nwant\n%+v", got, sim.DefaultParams())
	}
	if p := ParamsFromConfig(config.DefaultArtilleryConfig(), 0); p.TickMs != got.TickMs {
		t.Errorf("zero tick rate gave TickMs %v", p.TickMs)
	}
}

func TestResetFitsOversizedSprites(t *testing.T) {
	g := New(VariantDuel)
	cfg := g.Config()
	cfg.Sprites.MaxSize = 32
	g.Configure(cfg)
	g.Reset(runtimeFor(3))
	if g.Err() != nil {
		t.Fatalf("Reset: %v", g.Err())
	}

	exp := g.World().Library().Sprite(sim.SpriteExplosion)
	if exp.W != 32 || exp.H != 32 {
		t.Errorf("explosion is %dx%d, want 32x32", exp.W, exp.H)
	}
	if m := g.World().Library().Mask(sim.SpriteExplosion); m.Width() != 32 {
		t.Errorf("mask width %d, want 32", m.Width())
	}
}
