package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	writeFile string
)

var writeCmd = &cobra.Command{
	Use:   "write [title]",
	Short: "Replace the body of a note",
	Long: `Write replaces the body of a note, creating the file if needed.
Content is read from --file, or from stdin when no file is given.

Example:
  echo "- milk" | brezel write groceries`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		title := args[0]

		var (
			data []byte
			err  error
		)
		if writeFile != "" {
			data, err = os.ReadFile(writeFile)
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			fatal("Error reading content", err)
		}

		service := newService("")
		if err := service.WriteNote(context.Background(), title, string(data)); err != nil {
			fatal("Error writing note", err)
		}

		fmt.Printf("Note saved: %s\n", title)
	},
}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().StringVarP(&writeFile, "file", "f", "", "Read content from this file instead of stdin")
}
