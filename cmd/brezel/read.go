package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/brezel/pkg/core"
)

var readCmd = &cobra.Command{
	Use:   "read [title]",
	Short: "Print a note",
	Long:  `Read a note by its title and print its markdown body verbatim.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		title := args[0]
		service := newService("")

		content, err := service.ReadNote(context.Background(), title)
		if errors.Is(err, core.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "No note titled %q\n", title)
			os.Exit(1)
		}
		if err != nil {
			fatal("Error reading note", err)
		}

		fmt.Print(content)
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
}
