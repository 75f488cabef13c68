package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/ai"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagNetwork string

var aiCmd = &cobra.Command{
	Use:   "ai",
	Short: "Watch the neural network play",
	Long: `Watch a trained network play. The network is loaded from the database
by name; without one an untrained network plays.

The AI game never stops: when the well overflows it starts again and the
panel shows the best score so far. Press Q to quit.

Examples:
  tetris ai
  tetris ai --network cautious`,
	Args: cobra.NoArgs,
	Run:  runAI,
}

func init() {
	aiCmd.Flags().StringVar(&flagNetwork, "network", "", "Stored network name (default from config)")
}

func runAI(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger()
	defer closeLog()

	cfg := loadConfig(logger)
	store := openStore(logger)
	installNetwork(store, cfg, logger)

	runErr := tui.Run(ai.NewGame(), store, runtimeConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// networkName picks the --network flag over the config file.
func networkName(cfg config.TetrisConfig) string {
	if flagNetwork != "" {
		return flagNetwork
	}
	return cfg.AI.Network
}

// installNetwork loads the configured network for the AI game. Without a
// stored network the AI plays untrained.
func installNetwork(store *storage.Store, cfg config.TetrisConfig, logger *log.Logger) {
	ai.SetThreshold(cfg.AI.Threshold)
	if store == nil {
		return
	}

	name := networkName(cfg)
	net, err := ai.LoadNetwork(store, name)
	switch {
	case errors.Is(err, storage.ErrNetworkNotFound):
		logger.Info("no trained network, the AI plays untrained", "network", name)
	case err != nil:
		logger.Warn("could not load network", "network", name, "error", err)
	default:
		logger.Debug("loaded network", "network", name, "sizes", net.Sizes())
		ai.SetNetwork(net)
	}
}
