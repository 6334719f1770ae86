package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	createPath string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an empty note",
	Long: `Create asks where to save a new note and creates it empty.
The note must be saved directly in the notes folder; other locations are rejected.
Use --path to answer the prompt non-interactively.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service := newService(createPath)

		title, ok, err := service.CreateNote(context.Background())
		if err != nil {
			fatal("Error creating note", err)
		}
		if !ok {
			fmt.Fprintln(os.Stderr, "Note creation canceled")
			os.Exit(1)
		}

		fmt.Printf("Note created: %s\n", title)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVarP(&createPath, "path", "p", "", "Path of the new note (skips the prompt)")
}
