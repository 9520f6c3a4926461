package commands

import (
	"fmt"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/persistence"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/config"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// environment is what every command needs before doing its work
type environment struct {
	cfg    *config.RestConfig
	logger logger.Logger
	db     *gorm.DB
	repos  *persistence.Repositories
}

func (e *environment) Close() {
	if err := persistence.CloseDB(e.db); err != nil {
		e.logger.Error("failed to close database: ", err)
	}
}

// setupEnvironment loads the config named by --config, starts the logger and opens the database
func setupEnvironment(cmd *cobra.Command) (*environment, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}

	cfg, err := config.InitializeRestConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	// The CLI always logs to the console regardless of the server's log target
	settings := &config.LoggerSettings{
		LogLevel: cfg.Logger.LogLevel,
		LogType:  config.LogTypeConsole,
	}
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	db, err := persistence.NewDBConnection(cfg.Database, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	repos, err := persistence.NewRepositories(db, loggerInstance)
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, err
	}

	return &environment{cfg: cfg, logger: loggerInstance, db: db, repos: repos}, nil
}

// InitCommands registers every command group with the root command.
func InitCommands(rootCmd *cobra.Command) error {
	inits := []func(*cobra.Command) error{
		InitMigrateCommands,
		InitUserCommands,
		InitVoterCommands,
		InitSMSCommands,
	}
	for _, register := range inits {
		if err := register(rootCmd); err != nil {
			return err
		}
	}
	return nil
}
