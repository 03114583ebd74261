package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/trails/internal/core"
	"github.com/vovakirdan/trails/internal/games/trails"
	"github.com/vovakirdan/trails/internal/logging"
	"github.com/vovakirdan/trails/internal/platform/audio"
	"github.com/vovakirdan/trails/internal/registry"
	"github.com/vovakirdan/trails/internal/storage"
)

// session bundles what the interactive commands share.
type session struct {
	logger  *log.Logger
	store   *storage.Store
	sound   audio.Cuer
	closers []func()
}

// openSession sets up file logging, the score store and optional sound.
// The TUI owns the terminal, so nothing here writes to stdout.
func openSession(configPath string, withSound bool) (*session, error) {
	logger, logCloser, err := logging.New(logging.Options{
		Level:    flagLogLevel,
		Prefix:   "trails",
		FilePath: flagLogFile,
	})
	if err != nil {
		return nil, err
	}

	s := &session{
		logger:  logger,
		sound:   audio.Nop{},
		closers: []func(){func() { logCloser.Close() }},
	}

	trails.SetLogger(logger)
	trails.SetConfigPath(configPath)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
	} else {
		s.store = store
		s.closers = append(s.closers, func() { store.Close() })
	}

	if withSound {
		player := audio.NewPlayer(audio.Options{})
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			s.sound = player
			s.closers = append(s.closers, player.Close)
		}
	}

	return s, nil
}

// Close releases resources in reverse order of acquisition.
func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// runtimeConfig builds the runtime config from the terminal size and flags.
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

// checkVariant returns an error naming the list command for unknown IDs.
func checkVariant(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown variant %q (run 'trails list' to see them)", id)
	}
	return nil
}
