// artillery is a turn-based artillery duel played in the terminal.
//
// Usage:
//
//	artillery list              - List available variants
//	artillery play <variant>    - Play a round
//	artillery menu              - Pick variants interactively
//	artillery sim               - Run headless autopilot rounds
//	artillery history           - Show finished rounds and wins per colour
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible rounds
//	--db <path>      - Set database path (default: ~/.arcade/artillery.db)
//	--config <path>  - Use a custom artillery.yaml
//	--verbose        - Log debug events
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-artillery/internal/config"
	"github.com/vovakirdan/tui-artillery/internal/games/artillery"
	"github.com/vovakirdan/tui-artillery/internal/games/artillery/assets"
	"github.com/vovakirdan/tui-artillery/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagVerbose bool

	// Round setup flags shared by play, menu and sim
	flagPreset     string
	flagDifficulty string
	flagAssets     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "artillery",
	Short: "Artillery - a turn-based cannon duel in your terminal",
	Long: `Artillery is a turn-based cannon duel over destructible terrain.
Take turns setting the angle and power of your cannon; the last one
standing wins the round.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  sim      - Run headless rounds between autopilots
  history  - View finished rounds

Examples:
  artillery list
  artillery play duel --bots 1
  artillery menu
  artillery sim --rounds 20 --save
  artillery history --browse`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/artillery.db", "Path to round history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom artillery config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug events")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(historyCmd)
}

// addRoundFlags registers the flags that shape a round.
func addRoundFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagPreset, "preset", "", "Round preset: classic, duel, brawl")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Autopilot difficulty: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with carriage/cannon/rocket/explosion/ground PNG or BMP sprites")
}

// loadConfig reads the config file and applies the preset flags.
func loadConfig() (config.ArtilleryConfig, error) {
	cfg, err := config.LoadArtillery(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagPreset != "" {
		if err := config.ApplyPreset(&cfg, config.Preset(flagPreset)); err != nil {
			return cfg, err
		}
	}
	if flagDifficulty != "" {
		config.ApplyDifficultyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}
	if flagAssets != "" {
		cfg.Sprites.Dir = flagAssets
	}
	return cfg, nil
}

// newGame creates a configured game for a variant. Sprites are loaded once
// here so a bad asset directory fails before any UI starts.
func newGame(variant string, cfg config.ArtilleryConfig, logger *log.Logger) (*artillery.Game, error) {
	sprites, err := assets.Load(cfg.Sprites.Dir)
	if err != nil {
		return nil, err
	}
	g := artillery.New(variant)
	g.Configure(cfg)
	g.SetSprites(sprites)
	g.SetLogger(logger)
	return g, nil
}

// newLogger returns a logger writing to w; nil w discards.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "artillery",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openStore opens the history database, warning and continuing without it
// on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		return nil
	}
	return store
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
