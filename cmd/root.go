// Package cmd holds the portfolio command line.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Serve Marcos Menezes' personal portfolio",
	Long: `portfolio serves a single-page personal portfolio: a typewriter hero,
a project showcase with detail views, skills and contact details.

Configuration is read from the environment and from a .env file in the
working directory.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
