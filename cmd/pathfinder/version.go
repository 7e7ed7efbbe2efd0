package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/pathfinder/internal/server"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = server.Version

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "pathfinder %s (api %s)\n", version, server.Version)
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
