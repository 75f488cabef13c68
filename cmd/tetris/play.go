package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/ai"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var flagRecord bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Tetris",
	Long: `Play Tetris in the terminal.

Controls:
  A/D, Left/Right  - Move
  S, Down          - Soft drop
  K, W, Up         - Rotate clockwise
  J, Z             - Rotate anti-clockwise
  P/Esc            - Pause
  R                - Restart (when paused or after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 3
  hard   - Start at level 6 with a shorter key-repeat delay
  fixed  - Stay at the starting level

With --record every tick is stored in the database as training data for
'tetris train'.

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --record
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Record play as training data")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger()
	defer closeLog()

	cfg := loadConfig(logger)
	store := openStore(logger)

	game := tetris.New()

	var rec *ai.Recorder
	if flagRecord {
		if store == nil {
			closeLog()
			fmt.Fprintln(os.Stderr, "Error: --record needs a working database")
			os.Exit(1)
		}
		session := fmt.Sprintf("play-%d", time.Now().UnixNano())
		rec = ai.NewRecorder(store, session, cfg.AI.FlushEvery, duringTUI(logger))
		game.SetObserver(rec)
	}

	runErr := tui.Run(game, store, runtimeConfig())

	if rec != nil {
		if err := rec.Flush(); err != nil {
			logger.Error("could not save recorded frames", "error", err)
		}
		logger.Info("recording finished",
			"frames", rec.Recorded(),
			"lost", rec.Failed(),
		)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// duringTUI returns the logger to use while the alternate screen is active.
// Stderr would draw over the game, so only a log file is used.
func duringTUI(logger *log.Logger) *log.Logger {
	if flagLogFile == "" {
		return nil
	}
	return logger
}
