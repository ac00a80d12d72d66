package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-artillery/internal/core"
	"github.com/vovakirdan/tui-artillery/internal/registry"
	"github.com/vovakirdan/tui-artillery/internal/storage"
)

var (
	flagRounds   int
	flagVariant  string
	flagSave     bool
	flagMaxTicks uint64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless rounds between autopilots",
	Long: `Run rounds without a terminal UI. Every cannon is driven by the
autopilot; results are printed per round followed by a win tally.

Round i uses seed+i, so a fixed --seed replays the same batch.

Examples:
  artillery sim
  artillery sim --variant duel --rounds 50 --difficulty hard
  artillery sim --seed 7 --rounds 10 --verbose
  artillery sim --rounds 100 --save`,
	Run: runSim,
}

func init() {
	addRoundFlags(simCmd)
	simCmd.Flags().IntVar(&flagRounds, "rounds", 10, "Number of rounds to play")
	simCmd.Flags().StringVar(&flagVariant, "variant", "artillery", "Variant to simulate")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Record finished rounds in the history database")
	simCmd.Flags().Uint64Var(&flagMaxTicks, "max-ticks", 200000, "Abandon a round after this many ticks")
}

func runSim(_ *cobra.Command, _ []string) {
	if !registry.Exists(flagVariant) {
		fatal("unknown variant %q", flagVariant)
	}
	if flagRounds < 1 {
		fatal("--rounds must be at least 1")
	}

	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	logger := newLogger(os.Stderr, flagVerbose)
	game, err := newGame(flagVariant, cfg, logger)
	if err != nil {
		fatal("%v", err)
	}
	game.SetBots(cfg.Players.Count)

	var store *storage.Store
	if flagSave {
		store = openStore()
		if store != nil {
			defer store.Close()
		}
	}

	base := flagSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS

	wins := make(map[string]int)
	var order []string
	for i := range flagRounds {
		rt.Seed = base + int64(i)
		game.Reset(rt)
		if err := game.Err(); err != nil {
			fatal("round %d: %v", i+1, err)
		}

		st := game.State()
		for !st.GameOver && st.Ticks < flagMaxTicks {
			st = game.Step(core.NewInputFrame()).State
		}

		winner := st.WinnerName
		switch {
		case !st.GameOver:
			winner = "(abandoned)"
			logger.Warn("round abandoned", "seed", rt.Seed, "ticks", st.Ticks)
		case winner == "":
			winner = "-"
		}
		if _, ok := wins[winner]; !ok {
			order = append(order, winner)
		}
		wins[winner]++

		fmt.Printf("round %3d  seed %-20d  winner %-10s  shots %4d  ticks %7d\n",
			i+1, rt.Seed, winner, st.Shots, st.Ticks)

		if store != nil && st.GameOver {
			_, err := store.SaveRound(storage.RoundRecord{
				Variant:     game.ID(),
				Seed:        rt.Seed,
				Players:     st.Players,
				Bots:        st.Bots,
				Winner:      st.Winner,
				WinnerColor: st.WinnerName,
				Shots:       st.Shots,
				Ticks:       int64(st.Ticks),
			})
			if err != nil {
				logger.Error("cannot save round", "err", err)
			}
		}
	}

	fmt.Println()
	fmt.Println("Wins:")
	for _, name := range order {
		fmt.Printf("  %-10s  %d\n", name, wins[name])
	}
}
