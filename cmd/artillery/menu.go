package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-artillery/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick variants from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant, Tab to
browse the round history. After you quit a round you return to the menu.

Examples:
  artillery menu
  artillery menu --fps 30
  artillery menu --db ./artillery.db`,
	Run: runMenu,
}

func init() {
	addRoundFlags(menuCmd)
	menuCmd.Flags().StringVar(&flagLogPath, "log", "", "Write a game log to this file")
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	logger, closeLog, err := fileLogger(flagLogPath)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	rt := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(rt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		rt = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsHistory {
			goBack, hErr := tui.RunHistory(store, rt.ScreenW, rt.ScreenH)
			if hErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", hErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from history
		}

		game, err := newGame(menuResult.GameID, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		selection, err := tui.RunSetup(game.Config().Players.Count, rt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		if selection == nil {
			continue
		}
		game.SetBots(selection.Bots)

		if err := tui.Run(game, store, rt, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			break
		}
	}
}
