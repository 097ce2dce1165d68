package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded high scores",
	Long: `Display the best recorded scores.

Scores are only recorded when playing with --record. On a terminal the
scores open in an interactive table; otherwise a plain table is printed.

Examples:
  snake scores
  snake scores --limit 5
  snake scores --db ./scores.db | less`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, game.GameID, flagLimit, width, height)
	}
	return printScores(cmd.OutOrStdout(), store, flagLimit)
}

// printScores writes the top scores as a plain table.
func printScores(w io.Writer, src tui.ScoreSource, limit int) error {
	entries, err := src.TopScores(game.GameID, limit)
	if err != nil {
		return fmt.Errorf("cannot read scores: %w", err)
	}

	fmt.Fprintln(w, "High Scores - Snake")
	fmt.Fprintln(w)

	if len(entries) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'snake --record' to set the first high score!")
		return nil
	}

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		Headers("Rank", "Score", "Date")
	for _, row := range tui.ScoreRows(entries) {
		t.Row(row...)
	}
	fmt.Fprintln(w, t.String())

	if stats, err := src.GetGameStats(game.GameID); err == nil && stats.GamesCount > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d  Games: %d  Avg: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
