package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/brezel/pkg/adapters/lifecycle"
	"github.com/aretw0/brezel/pkg/core"
)

var (
	watchMatch string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print changes to notes as they happen",
	Long: `Watch reports notes created, modified or deleted in the notes folder,
including changes made by other editors. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		service := newService("")
		events, err := service.Watch(ctx, watchMatch)
		if err != nil {
			fatal("Error starting watcher", err)
		}

		src := lifecycle.NewSource(events)
		if err := src.Start(ctx); err != nil {
			fatal("Error starting watcher", err)
		}

		fmt.Fprintf(os.Stderr, "Watching %s\n", service.Root())
		for e := range src.Events() {
			change, ok := e.(core.Event)
			if !ok {
				continue
			}
			fmt.Printf("%s  %-6s  %s\n", time.Unix(change.Timestamp, 0).Format(time.TimeOnly), change.Type, change.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchMatch, "match", "", "Only report notes whose filename matches this glob")
}
