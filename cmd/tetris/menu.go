package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the interactive menu",
	Long: `Start in interactive menu mode: play, watch the AI or browse high
scores. Leaving a game with B (while paused or after game over) returns
to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  tetris menu
  tetris menu --fps 30
  tetris menu --db ./tetris.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger()
	defer closeLog()

	cfg := loadConfig(logger)
	store := openStore(logger)
	installNetwork(store, cfg, logger)

	username := "player"
	if u, err := user.Current(); err == nil {
		username = u.Username
	}

	runErr := tui.RunSession(store, runtimeConfig(), username)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
