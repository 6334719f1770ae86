package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [title]",
	Short: "Delete a note",
	Long: `Delete permanently removes a note and its metadata after confirmation.
Use --yes to skip the confirmation prompt.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		title := args[0]
		service := newService("")

		deleted, err := service.DeleteNote(context.Background(), title)
		if err != nil {
			fatal("Error deleting note", err)
		}
		if !deleted {
			fmt.Println("Deletion canceled")
			return
		}

		fmt.Printf("Note deleted: %s\n", title)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
