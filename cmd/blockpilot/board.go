package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockpilot/internal/platform/tui"
	"github.com/vovakirdan/blockpilot/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse scores and runs interactively",
	Long: `Open an interactive scoreboard. Press V to flip between high scores
and recent runs, Tab to switch games.`,
	Run: runBoard,
}

func runBoard(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		os.Exit(1)
	}
}
