package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/brezel/pkg/state"
)

var (
	recentLimit int
	recentShow  int
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List notes by last edit, newest first",
	Long: `Recent lists notes most recently edited first, the order the editor
sidebar uses. Pass --show with a position to print that note.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store := state.New(newService(""))

		snap, err := store.Load(ctx)
		if err != nil {
			fatal("Error listing notes", err)
		}

		if cmd.Flags().Changed("show") {
			note, err := store.Select(ctx, recentShow-1)
			if errors.Is(err, state.ErrNoSelection) {
				fatal("Error selecting note", fmt.Errorf("position %d is out of range (1-%d)", recentShow, len(snap.Notes)))
			}
			if err != nil {
				fatal("Error reading note", err)
			}
			fmt.Print(note.Content)
			return
		}

		for i, note := range snap.Notes {
			if recentLimit > 0 && i >= recentLimit {
				break
			}
			fmt.Printf("%3d  %s  %s\n", i+1, note.LastEditedTime.Format(time.DateTime), note.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", 0, "Show at most this many notes")
	recentCmd.Flags().IntVar(&recentShow, "show", 0, "Print the note at this position (1 is the newest)")
}
