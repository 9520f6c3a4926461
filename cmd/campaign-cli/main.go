// Package main is the entry point for the campaign-cli application.
// It registers the operational sub-commands (schema migration, admin accounts,
// voter import and SMS checks) and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sabbir073/Complete-Political-website-sub006/cmd/campaign-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "campaign-cli",
		Short: "Operations CLI for the campaign website backend",
		Long: `campaign-cli runs maintenance tasks against the campaign database.
It reads the same YAML configuration as the REST API. Point it at the file with
--config or the CONFIG_PATH environment variable.`,
		SilenceUsage: true,
	}

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = "configs/rest-app.yaml"
	}
	rootCmd.PersistentFlags().String("config", defaultConfig, "Path to the REST API configuration file")

	if err := commands.InitCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
