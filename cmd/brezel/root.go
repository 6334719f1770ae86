package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/brezel"
	"github.com/aretw0/brezel/pkg/core"
)

const (
	configDir  = ".config/brezel"
	configName = "config"
	configType = "yaml"
)

var (
	cfgFile   string
	verbose   bool
	assumeYes bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "brezel",
	Short: "Manage a folder of markdown notes with stable identifiers",
	Long: `Brezel keeps your notes as plain markdown files under ~/BrezelNotes.
Each note gets a stable identifier stored in a sidecar file under
~/BrezelNotes/.metadata, so notes keep their identity while you edit them
here or in any other editor.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if viper.GetBool("verbose") {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/brezel/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Answer yes to confirmations")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("assume_yes", rootCmd.PersistentFlags().Lookup("yes"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(filepath.Join(home, configDir))
		viper.SetConfigName(configName)
		viper.SetConfigType(configType)
	}

	// A missing default config file is fine; flags and defaults apply.
	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		cobra.CheckErr(err)
	}
}

// newService builds the service with terminal dialogs. savePath, when set,
// answers the save dialog without prompting.
func newService(savePath string) *core.Service {
	svc, err := brezel.New(
		brezel.WithLogger(slog.Default()),
		brezel.WithDialogs(newTerminalDialogs(os.Stderr, viper.GetBool("assume_yes"), savePath)),
	)
	if err != nil {
		fatal("Error initializing notes", err)
	}
	return svc
}
