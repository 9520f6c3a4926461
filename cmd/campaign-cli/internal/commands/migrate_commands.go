package commands

import (
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/persistence"

	"github.com/spf13/cobra"
)

// MigrateCmd creates or updates every table
func MigrateCmd(cmd *cobra.Command, _ []string) error {
	env, err := setupEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	if err := persistence.AutoMigrate(env.db); err != nil {
		return err
	}
	env.logger.Info("Database migrations completed successfully")
	return nil
}

// InitMigrateCommands registers the schema migration command
func InitMigrateCommands(rootCmd *cobra.Command) error {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE:  MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)
	return nil
}
