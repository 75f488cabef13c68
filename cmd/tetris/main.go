// tetris is a terminal Tetris with a neural-network player.
//
// Usage:
//
//	tetris list              - List the game variants
//	tetris play              - Play in the terminal
//	tetris ai                - Watch the network play
//	tetris train             - Train the network on recorded play
//	tetris menu              - Start the interactive menu
//	tetris serve             - Start SSH server for remote play
//	tetris scores [game]     - Show high scores
//
// Global flags:
//
//	--fps <rate>          - Render rate (default: 60)
//	--seed <value>        - RNG seed for reproducible piece order
//	--db <path>           - Database path (default: ~/.arcade/tetris.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/tetris"

	// Registers the tetris and tetris_ai games
	_ "github.com/vovakirdan/tui-tetris/internal/ai"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal, with a neural-network player",
	Long: `Tetris for the terminal. Play it yourself, record your games, and
train a small neural network to play like you.

Available commands:
  list     - Show the game variants
  play     - Play a game
  ai       - Watch the trained network play
  train    - Train the network on recorded games
  menu     - Interactive menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  tetris play
  tetris play --record
  tetris train --epochs 50
  tetris ai
  tetris serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
			return err
		}
		tetris.SetConfigPath(flagConfig)
		tetris.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Render rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/tetris.db", "Path to the database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(aiCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the process logger from the global flags. The returned
// close function releases the log file, if any.
func newLogger() (*log.Logger, func()) {
	out := os.Stderr
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		} else {
			out = f
			closeFn = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger, closeFn
}

// loadConfig loads the game config the same way the game does.
func loadConfig(logger *log.Logger) config.TetrisConfig {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultTetrisConfig()
	}
	preset, _ := config.ParseDifficultyPreset(flagDifficulty)
	config.ApplyTetrisPreset(&cfg, preset)
	if err := errors.Join(cfg.Validate(), tetris.RulesFromConfig(cfg).Validate()); err != nil {
		logger.Warn("invalid config, using defaults", "error", err)
		cfg = config.DefaultTetrisConfig()
	}
	return cfg
}
