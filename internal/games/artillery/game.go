// Package artillery implements the turn-based artillery duel on top of the
// deterministic simulation in package sim. Players take turns aiming a cannon
// across destructible terrain; the last cannon standing wins the round.
package artillery

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-artillery/internal/config"
	"github.com/vovakirdan/tui-artillery/internal/core"
	"github.com/vovakirdan/tui-artillery/internal/games/artillery/assets"
	"github.com/vovakirdan/tui-artillery/internal/games/artillery/sim"
	"github.com/vovakirdan/tui-artillery/internal/registry"
)

// Registered variants.
const (
	VariantClassic = "artillery"
	VariantDuel    = "duel"
)

// pilotSeedSalt keeps the autopilot's noise stream apart from the world's.
const pilotSeedSalt = 0x5eed

// Game adapts a sim.World to the platform's Game interface.
type Game struct {
	id    string
	title string

	cfg     config.ArtilleryConfig
	sprites map[sim.SpriteID]sim.Sprite
	bots    int
	logger  *log.Logger

	runtime core.RuntimeConfig
	world   *sim.World
	pilots  map[int]*Autopilot
	paused  bool
	err     error

	terrain *sim.TerrainSnapshot // Last bitmap received from the world
	last    sim.TickResult
}

// New creates a game for the given variant. The duel variant forces two
// players regardless of the configured count.
func New(variant string) *Game {
	g := &Game{
		id:     variant,
		title:  "Artillery",
		logger: log.New(io.Discard),
	}
	if variant == VariantDuel {
		g.title = "Artillery Duel"
	}
	g.Configure(config.DefaultArtilleryConfig())
	return g
}

// Configure replaces the game configuration. It takes effect on the next Reset.
func (g *Game) Configure(cfg config.ArtilleryConfig) {
	if g.id == VariantDuel {
		_ = config.ApplyPreset(&cfg, config.PresetDuel)
	}
	g.cfg = cfg
}

// Config returns the configuration the next Reset will use.
func (g *Game) Config() config.ArtilleryConfig {
	return g.cfg
}

// SetSprites overrides the sprite set. Nil restores the sprites named by the
// configuration.
func (g *Game) SetSprites(sprites map[sim.SpriteID]sim.Sprite) {
	g.sprites = sprites
}

// SetBots hands the last n combatants to the autopilot.
func (g *Game) SetBots(n int) {
	g.bots = max(n, 0)
}

// SetLogger sets the logger passed down to the simulation.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
	if g.world != nil {
		g.world.SetLogger(l)
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Err returns why the last Reset could not build a world, if it failed.
func (g *Game) Err() error {
	return g.err
}

// World exposes the running simulation, nil if Reset failed.
func (g *Game) World() *sim.World {
	return g.world
}

// Last returns what happened during the most recent tick.
func (g *Game) Last() sim.TickResult {
	return g.last
}

// IsBot reports whether the combatant at index i is driven by the autopilot.
func (g *Game) IsBot(i int) bool {
	_, ok := g.pilots[i]
	return ok
}

// Reset starts a new round with a fresh world seeded from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.terrain = nil
	g.last = sim.TickResult{Hit: -1}
	g.world, g.err = g.newWorld(runtime)
	if g.err != nil {
		g.logger.Error("cannot start round", "game", g.id, "err", g.err)
		g.pilots = nil
		return
	}

	n := g.cfg.Players.Count
	bots := min(g.bots, n)
	g.pilots = make(map[int]*Autopilot, bots)
	pilotRng := rand.New(rand.NewSource(runtime.Seed ^ pilotSeedSalt))
	for i := n - bots; i < n; i++ {
		g.pilots[i] = NewAutopilot(g.cfg.Autopilot, pilotRng)
	}
}

func (g *Game) newWorld(runtime core.RuntimeConfig) (*sim.World, error) {
	sprites := g.sprites
	if sprites == nil {
		var err error
		sprites, err = assets.Load(g.cfg.Sprites.Dir)
		if err != nil {
			return nil, err
		}
	}
	sprites = assets.Fit(sprites, g.cfg.Sprites.MaxSize)
	lib, err := sim.NewMaskLibrary(sprites, g.cfg.Sprites.AlphaThreshold)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(runtime.Seed))
	w, err := sim.NewWorld(ParamsFromConfig(g.cfg, runtime.TickRate), lib, rng)
	if err != nil {
		return nil, err
	}
	w.SetLogger(g.logger.With("game", g.id, "seed", runtime.Seed))
	if err := w.StartRound(sim.Setup{}); err != nil {
		return nil, fmt.Errorf("artillery: %w", err)
	}
	return w, nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		if g.world != nil {
			g.last = g.world.Tick(sim.Input{Quit: true})
		}
		return core.StepResult{State: g.State(), Quit: true}
	}
	if g.world == nil || g.world.Phase() == sim.PhaseRoundOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var si sim.Input
	cur := g.world.Current()
	if pilot, ok := g.pilots[cur]; ok {
		if g.world.Phase() == sim.PhaseAiming {
			si = pilot.Decide(g.world, cur)
		}
	} else {
		si = g.inputFrom(in)
	}

	g.last = g.world.Tick(si)
	return core.StepResult{State: g.State(), Quit: g.last.Quit}
}

// inputFrom converts platform actions into a simulation input. Repeated key
// presses between two ticks add up.
func (g *Game) inputFrom(in core.InputFrame) sim.Input {
	c := g.cfg.Controls
	aim := float64(in.Count(core.ActionAimRight)-in.Count(core.ActionAimLeft)) * c.AimStep
	aim += float64(in.Count(core.ActionAimRightFine)-in.Count(core.ActionAimLeftFine)) * c.FineAimStep
	power := float64(in.Count(core.ActionPowerUp)-in.Count(core.ActionPowerDown)) * c.PowerStep
	power += float64(in.Count(core.ActionPowerUpFast)-in.Count(core.ActionPowerDownFast)) * c.FastPowerStep

	return sim.Input{
		AimDelta:   sim.Radians(aim),
		PowerDelta: power,
		Launch:     in.Has(core.ActionFire),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Players: g.cfg.Players.Count,
		Bots:    len(g.pilots),
		Current: -1,
		Winner:  core.NoWinner,
		Paused:  g.paused,
	}
	if g.world == nil {
		return st
	}

	res := g.world.Result()
	st.Current = g.world.Current()
	st.Shots = res.Shots
	st.Ticks = res.Ticks
	st.GameOver = res.Over
	if res.Over && res.Winner >= 0 {
		st.Winner = res.Winner
		st.WinnerName = res.Color.String()
	}
	return st
}

// Register the game with the registry
func init() {
	registry.Register(VariantClassic, func() registry.Game {
		return New(VariantClassic)
	})
	registry.Register(VariantDuel, func() registry.Game {
		return New(VariantDuel)
	})
}
