package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-artillery/internal/core"
	"github.com/vovakirdan/tui-artillery/internal/platform/tui"
	"github.com/vovakirdan/tui-artillery/internal/registry"
)

var (
	flagBots    int
	flagLogPath string
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a round",
	Long: `Start a round of the specified variant.

Without --bots a setup screen asks who sits at the cannons.

Controls:
  Left/Right, A/D       - Aim
  Shift+Left/Right, ,/. - Fine aim
  Up/Down, W/S          - Power
  PgUp/PgDn             - Power in big steps
  Space/Enter           - Fire
  P/Esc                 - Pause
  R                     - Next round (after round over)
  Ctrl+S                - Screenshot to ~/.arcade/screenshots
  Ctrl+Y                - Copy the frame to the clipboard
  ?                     - Toggle full help
  Q/Ctrl+C              - Quit

Difficulty options (autopilot aim):
  easy   - Starts sloppy, sharpens with every shot
  normal - Starts at 30% skill, sharpens with every shot
  hard   - Starts at 70% skill, sharpens with every shot
  fixed  - No progression, stays at config's initial level

Examples:
  artillery play artillery
  artillery play duel --bots 1 --difficulty hard
  artillery play artillery --preset brawl --bots 5
  artillery play duel --assets ./sprites --log /tmp/artillery.log`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	addRoundFlags(playCmd)
	playCmd.Flags().IntVar(&flagBots, "bots", 0, "Number of cannons driven by the autopilot (last seats)")
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Write a game log to this file")
}

func runPlay(cmd *cobra.Command, args []string) {
	variant := args[0]

	// Check if variant exists
	if !registry.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'artillery list' to see available variants.")
		os.Exit(1)
	}

	rt := runtimeConfig()

	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	logger, closeLog, err := fileLogger(flagLogPath)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	game, err := newGame(variant, cfg, logger)
	if err != nil {
		fatal("%v", err)
	}

	bots := flagBots
	if !cmd.Flags().Changed("bots") {
		selection, selErr := tui.RunSetup(game.Config().Players.Count, rt)
		if selErr != nil {
			fatal("%v", selErr)
		}
		// User pressed back or quit
		if selection == nil {
			return
		}
		bots = selection.Bots
	}
	game.SetBots(bots)

	store := openStore()
	runErr := tui.Run(game, store, rt, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatal("running game: %v", runErr)
	}
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// fileLogger opens path for appending. The alternate screen owns the
// terminal, so an empty path discards log output.
func fileLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return newLogger(nil, false), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return newLogger(f, flagVerbose), func() { f.Close() }, nil
}
