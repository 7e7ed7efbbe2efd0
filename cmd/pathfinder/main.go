// Package main provides the entry point for the PathFinder API server and terminal wizard.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/pathfinder/internal/config"
	"github.com/jonathan/pathfinder/internal/logging"
)

var (
	configPath string

	appConfig *config.Config
	logger    logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pathfinder",
	Short: "PathFinder career self-assessment",
	Long:  "PathFinder helps graduate students weigh a PhD against an industry career: a short questionnaire, an analysis API, and a terminal wizard.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		l, err := logging.New(cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		appConfig = cfg
		logger = l
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML or JSON config file")
}

func main() {
	// Load .env file if it exists
	if _, err := config.LoadEnvFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
