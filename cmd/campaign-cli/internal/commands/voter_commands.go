package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/app"

	"github.com/spf13/cobra"
)

// ImportVotersCmd upserts voters from a CSV file
func ImportVotersCmd(cmd *cobra.Command, _ []string) error {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return fmt.Errorf("invalid input-file flag: %w", err)
	}

	file, err := os.Open(filepath.Clean(inputFilePath))
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	env, err := setupEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	voterService, err := app.NewVoterService(env.repos.Voters, env.logger)
	if err != nil {
		return fmt.Errorf("failed to create voter service: %w", err)
	}

	result, err := voterService.Import(cmd.Context(), file)
	if err != nil {
		return err
	}

	for _, rowErr := range result.Errors {
		env.logger.Warn(rowErr)
	}
	env.logger.Info(fmt.Sprintf("Imported %d voters, skipped %d rows", result.Imported, result.Skipped))
	return nil
}

// InitVoterCommands registers the voter roll commands
func InitVoterCommands(rootCmd *cobra.Command) error {
	importVotersCmd := &cobra.Command{
		Use:   "import-voters",
		Short: "Import voters from a CSV file",
		Args:  cobra.NoArgs,
		RunE:  ImportVotersCmd,
	}
	importVotersCmd.Flags().String("input-file", "", "Path to the CSV file with a header line")
	if err := importVotersCmd.MarkFlagRequired("input-file"); err != nil {
		return fmt.Errorf("failed to mark input-file required: %w", err)
	}
	rootCmd.AddCommand(importVotersCmd)
	return nil
}
