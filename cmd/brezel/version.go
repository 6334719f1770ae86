package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/brezel"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of brezel",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("brezel version %s\n", brezel.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
