package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trails/internal/platform/tui"
	"github.com/vovakirdan/trails/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a maze variant from a menu",
	Long: `Start Trails in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play, Tab for the leaderboard.
Esc in a game returns to the menu.

Examples:
  trails menu
  trails menu --fps 30 --sound`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom trails config YAML")
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := openSession(flagConfig, flagSound)
	if err != nil {
		return err
	}
	defer s.Close()

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(s.store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(s.store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		// Fresh seed per game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		run, err := tui.Run(game, cfg, tui.Options{
			Store:    s.store,
			Sound:    s.sound,
			Logger:   s.logger,
			Embedded: true,
		})
		if err != nil {
			return err
		}
		if !run.BackToMenu {
			return nil
		}
	}
}
