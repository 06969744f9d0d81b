package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shrink-arena/internal/registry"
	"github.com/vovakirdan/shrink-arena/internal/storage"
)

var (
	flagScoresLimit int
	flagRunsLimit   int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores and recent runs for a game",
	Long: `Display the top high scores, play statistics and the most recent
runs for the specified game.

Examples:
  arena scores arena
  arena scores inventorium --runs 20
  arena scores arena --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of high scores to show")
	scoresCmd.Flags().IntVar(&flagRunsLimit, "runs", 5, "Number of recent runs to show (0 hides them)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs for the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	info, ok := registry.Info(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arena list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores and runs for %s.\n", info.Title)
		return
	}

	if err := printScores(store, info); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}
	if flagRunsLimit > 0 {
		if err := printRuns(store, gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		}
	}
}

func printScores(store *storage.Store, info registry.GameInfo) error {
	scores, err := store.TopScores(info.ID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arena play %s' to set the first high score!\n", info.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(info.ID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Games: %d   Average: %.1f   Last played: %s\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	return nil
}

func printRuns(store *storage.Store, gameID string) error {
	runs, err := store.RecentRuns(gameID, flagRunsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent runs")
	fmt.Println()
	fmt.Printf("  %-8s  %-6s  %-6s  %-8s  %-9s  %s\n", "Run", "Score", "Kills", "Ticks", "Arena", "Date")
	fmt.Printf("  %-8s  %-6s  %-6s  %-8s  %-9s  %s\n", "---", "-----", "-----", "-----", "-----", "----")
	for _, r := range runs {
		fmt.Printf("  %-8s  %-6d  %-6d  %-8d  %-9s  %s\n",
			r.RunID.String()[:8], r.Score, r.Kills, r.Ticks,
			fmt.Sprintf("%dx%d", r.ArenaW, r.ArenaH),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
