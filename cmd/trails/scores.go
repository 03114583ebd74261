package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trails/internal/registry"
	"github.com/vovakirdan/trails/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the leaderboard",
	Long: `Without a variant, prints a summary for every variant that has runs.
With a variant, prints its top runs.

Examples:
  trails scores
  trails scores trails
  trails scores trails_fit --limit 25
  trails scores trails --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs for the variant")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if len(args) == 0 {
		if flagScoresClear {
			return fmt.Errorf("--clear needs a variant")
		}
		return printSummary(out, store)
	}

	variant := args[0]
	if err := checkVariant(variant); err != nil {
		return err
	}

	if flagScoresClear {
		if err := store.ClearScores(variant); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared all runs for %s.\n", variant)
		return nil
	}

	return printTop(out, store, variant, flagScoresLimit)
}

func printSummary(out io.Writer, store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-12s  %5s  %6s  %6s  %6s  %s\n", "Variant", "Runs", "Best", "Level", "Gems", "Last played")
	fmt.Fprintf(out, "  %-12s  %5s  %6s  %6s  %6s  %s\n", "-------", "----", "----", "-----", "----", "-----------")
	for _, info := range registry.List() {
		st, ok := stats[info.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(out, "  %-12s  %5d  %6d  %6d  %6d  %s\n",
			info.ID, st.RunsCount, st.HighScore, st.MaxLevel, st.TotalGems,
			st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printTop(out io.Writer, store *storage.Store, variant string, limit int) error {
	game, err := registry.Create(variant)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(variant, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'trails play %s' to set the first high score!\n", variant)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %6s  %5s  %4s  %s\n", "Rank", "Player", "Score", "Level", "Gems", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %6s  %5s  %4s  %s\n", "----", "------", "-----", "-----", "----", "----")
	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "local"
		}
		fmt.Fprintf(out, "  %-4d  %-12s  %6d  %5d  %4d  %s\n",
			i+1, player, e.Score, e.Level, e.Gems, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.HighScore(variant)
	if err == nil {
		fmt.Fprintf(out, "\nBest: %d\n", best)
	}
	return nil
}
