package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/matchduel/internal/config"
	"github.com/vovakirdan/matchduel/internal/core"
	"github.com/vovakirdan/matchduel/internal/platform/cli"
	"github.com/vovakirdan/matchduel/internal/registry"
)

// session bundles what every game command needs.
type session struct {
	cfg    config.MatchConfig
	logger *log.Logger
	term   cli.Terminal
	screen *core.Screen // Reused across frames
}

// fail prints an error the way every command reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// openSession loads the config and builds the logger from the global flags.
func openSession() session {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	level := cfg.Log.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	logger, err := cli.NewLogger(os.Stderr, level)
	if err != nil {
		fail("%v", err)
	}

	t := cli.DetectTerminal(os.Stdout)
	if flagNoColor {
		t.Color = false
	}
	logger.Debug("config loaded", "path", flagConfig, "rows", cfg.Board.Rows, "cols", cfg.Board.Cols)
	return session{cfg: cfg, logger: logger, term: t, screen: core.NewScreen(0, 0)}
}

// startGame creates the mode and resets it from the session config.
func (s session) startGame(gameID string) registry.Game {
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'matchduel list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating mode: %v", err)
	}
	if err := game.Reset(s.cfg.Runtime(flagSeed, s.logger)); err != nil {
		fail("%v", err)
	}
	return game
}

// sizer is implemented by games that know their screen size.
type sizer interface {
	ScreenSize() (int, int)
}

// printGame renders the game into a fresh screen and writes it out.
func (s session) printGame(game registry.Game) {
	w, h := 48, 16
	if sz, ok := game.(sizer); ok {
		w, h = sz.ScreenSize()
	}
	if !s.term.Fits(w) {
		s.logger.Warn("terminal narrower than the board", "need", w, "have", s.term.Width)
	}

	s.screen.Resize(w, h)
	game.Render(s.screen)
	fmt.Fprintln(s.term.Out, cli.RenderScreen(s.screen, s.term.Color))
}
