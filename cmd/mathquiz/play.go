package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mathquiz/internal/config"
	"github.com/vovakirdan/mathquiz/internal/core"
	"github.com/vovakirdan/mathquiz/internal/platform/tui"
	"github.com/vovakirdan/mathquiz/internal/quiz"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the quiz",
	Long: `Start the quiz in this terminal.

Controls:
  0-9        - Type answer (up to 3 digits)
  Backspace  - Delete last digit
  Enter      - Start / submit answer
  Esc        - Quit from the game over screen
  Ctrl+C     - Quit immediately

Examples:
  mathquiz play
  mathquiz play --seed 42
  mathquiz play --config ./quiz.yaml
  mathquiz play --log-file quiz.log --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	quizCfg, err := config.LoadQuiz(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Debug("starting", "width", width, "height", height, "fps", flagFPS,
		"time_limit", quizCfg.TimeLimit(), "promote_at", quizCfg.Tiers.PromoteAt)

	if err := tui.Run(quiz.New(quizCfg), cfg, logger); err != nil {
		return fmt.Errorf("run quiz: %w", err)
	}
	return nil
}

// newLogger returns a logger writing to path, or a silent one when path is
// empty. The terminal belongs to the game while it runs.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mathquiz",
		Level:           level,
	})
	return logger, closeFn, nil
}
