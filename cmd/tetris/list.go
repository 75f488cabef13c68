package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game variants",
	Long:  `Shows the registered game variants with how often each was played and its best score.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	stats := map[string]*storage.GameStats{}
	logger, closeLog := newLogger()
	defer closeLog()
	if store := openStore(logger); store != nil {
		if all, err := store.GetAllGamesStats(); err == nil {
			stats = all
		} else {
			logger.Warn("could not read stats", "error", err)
		}
		store.Close()
	}

	idW := 2 // "ID" header
	for _, g := range games {
		idW = max(idW, len(g.ID))
	}

	fmt.Println("Available games:")
	fmt.Println()
	fmt.Printf("  %-*s  %-12s  %6s  %8s\n", idW, "ID", "Title", "Played", "Best")
	fmt.Printf("  %-*s  %-12s  %6s  %8s\n", idW, "--", "-----", "------", "----")

	for _, g := range games {
		played, best := 0, 0
		if st, ok := stats[g.ID]; ok {
			played, best = st.GamesCount, st.HighScore
		}
		fmt.Printf("  %-*s  %-12s  %6d  %8d\n", idW, g.ID, g.Title, played, best)
	}

	fmt.Println()
	fmt.Println("Run 'tetris play' to play, or 'tetris ai' to watch the network.")
}
