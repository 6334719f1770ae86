package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	listJSON  bool
	listYAML  bool
	listMatch string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Long: `List every note in the notes folder with its identifier and last edit time.
Notes without metadata get an identifier on the way. An empty folder gets a welcome note.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service := newService("")

		notes, err := service.GetNotesMatching(context.Background(), listMatch)
		if err != nil {
			fatal("Error listing notes", err)
		}

		switch {
		case listJSON:
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fatal("Error encoding JSON", err)
			}
		case listYAML:
			encoder := yaml.NewEncoder(os.Stdout)
			encoder.SetIndent(2)
			if err := encoder.Encode(notes); err != nil {
				fatal("Error encoding YAML", err)
			}
			encoder.Close()
		default:
			for _, note := range notes {
				fmt.Printf("%s  %s  %s\n", note.ID, note.LastEditedTime.Format(time.DateTime), note.Title)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "Output in YAML format")
	listCmd.Flags().StringVar(&listMatch, "match", "", "Only list notes whose filename matches this glob (e.g. '2024-*.md')")
	listCmd.MarkFlagsMutuallyExclusive("json", "yaml")
}
