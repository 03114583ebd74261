package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/trails/internal/platform/tui"
	"github.com/vovakirdan/trails/internal/registry"
)

var (
	flagConfig string
	flagSound  bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a maze",
	Long: `Start playing the given maze variant (trails by default).

Controls:
  Arrows/WASD/hjkl  - Move
  R                 - New game
  P                 - Pause
  ?                 - Help
  Ctrl+S            - Screenshot to ~/.trails/screenshots
  Q/Esc             - Quit

Collect every gem before stepping on the exit. Each gem is worth 5
points and each cleared level 10.

Examples:
  trails play
  trails play trails_fit
  trails play --seed 42
  trails play --sound --config ./my-trails.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom trails config YAML")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

func runPlay(_ *cobra.Command, args []string) error {
	variant := defaultVariant
	if len(args) == 1 {
		variant = args[0]
	}
	if err := checkVariant(variant); err != nil {
		return err
	}

	s, err := openSession(flagConfig, flagSound)
	if err != nil {
		return err
	}
	defer s.Close()

	game, err := registry.Create(variant)
	if err != nil {
		return err
	}

	_, err = tui.Run(game, runtimeConfig(), tui.Options{
		Store:  s.store,
		Sound:  s.sound,
		Logger: s.logger,
	})
	return err
}
