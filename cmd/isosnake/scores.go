package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/isosnake/isosnake/internal/registry"
	"github.com/isosnake/isosnake/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best runs",
	Long: `Display the top 10 runs for the specified mode, plus a breakdown
of how runs ended. With no argument, a per-mode summary is shown.

Examples:
  isosnake scores
  isosnake scores campaign
  isosnake scores endless
  isosnake scores endless --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded runs for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	// No mode: show the summary across all modes
	if len(args) == 0 {
		if flagClearScores {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a mode, e.g. 'isosnake scores endless --clear'")
			os.Exit(1)
		}
		runScoresSummary()
		return
	}

	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Available modes: campaign, endless")
		os.Exit(1)
	}

	// Get mode title
	g, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := g.Title()

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all runs for %s.\n", title)
		return
	}

	// Get top runs
	runs, err := store.TopRuns(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	// Display runs
	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'isosnake play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-12s  %-6s  %s\n", "Rank", "Score", "End", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %-6s  %s\n", "----", "-----", "---", "-----", "----")

	// Print runs
	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-12s  %-6d  %s\n", i+1, entry.Score, entry.Cause, entry.Level, dateStr)
	}

	// Aggregates
	fmt.Println()
	if stats, err := store.GetModeStats(gameID); err == nil {
		fmt.Printf("Best: %d   Runs: %d   Average: %.1f\n", stats.HighScore, stats.RunsCount, stats.AvgScore)
	}
	if breakdown, err := store.CauseBreakdown(gameID); err == nil && len(breakdown) > 0 {
		fmt.Print("Ends: ")
		first := true
		for _, cause := range []string{"collision", "cannibalism", "fell", "won", "quit"} {
			if n, ok := breakdown[cause]; ok {
				if !first {
					fmt.Print("  ")
				}
				fmt.Printf("%s %d", cause, n)
				first = false
			}
		}
		fmt.Println()
	}
}

// runScoresSummary prints a one-line summary per registered mode.
func runScoresSummary() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Println("Best runs by mode:")
	fmt.Println()
	fmt.Printf("  %-10s  %-8s  %-6s  %s\n", "Mode", "Best", "Runs", "Average")
	fmt.Printf("  %-10s  %-8s  %-6s  %s\n", "----", "----", "----", "-------")

	for _, g := range registry.List() {
		stats, statsErr := store.GetModeStats(g.ID)
		if statsErr != nil {
			continue
		}
		fmt.Printf("  %-10s  %-8d  %-6d  %.1f\n", g.ID, stats.HighScore, stats.RunsCount, stats.AvgScore)
	}

	fmt.Println()
	fmt.Println("Run 'isosnake scores <mode>' for the full table.")
}
