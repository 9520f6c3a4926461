package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

// secretsEnv holds values that are only ever read from the environment.
type secretsEnv struct {
	DatabaseDSN string `env:"CAMPAIGN_DATABASE_DSN"`
	JWTSecret   string `env:"CAMPAIGN_JWT_SECRET"`
	S3AccessKey string `env:"CAMPAIGN_S3_ACCESS_KEY"`
	S3SecretKey string `env:"CAMPAIGN_S3_SECRET_KEY"`
	SMSAPIKey   string `env:"CAMPAIGN_SMS_API_KEY"`
}

// InitializeRestConfig loads the REST API configuration from the YAML file at path.
// A missing file falls back to defaults; CAMPAIGN_* variables override file values.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	setRestDefaults(v)

	v.SetEnvPrefix("CAMPAIGN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := applySecrets(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func applySecrets(cfg *RestConfig) error {
	var secrets secretsEnv
	if err := env.Parse(&secrets); err != nil {
		return fmt.Errorf("parse secrets env: %w", err)
	}

	if secrets.DatabaseDSN != "" {
		cfg.Database.DSN = secrets.DatabaseDSN
	}
	if secrets.JWTSecret != "" {
		cfg.Auth.JWTSecret = secrets.JWTSecret
	}
	if secrets.S3AccessKey != "" {
		cfg.ObjectStorage.AccessKey = secrets.S3AccessKey
	}
	if secrets.S3SecretKey != "" {
		cfg.ObjectStorage.SecretKey = secrets.S3SecretKey
	}
	if secrets.SMSAPIKey != "" {
		cfg.SMS.APIKey = secrets.SMSAPIKey
	}
	return nil
}

func setRestDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("allowed_origins", []string{"http://localhost:3000"})

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "campaign.db")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)

	v.SetDefault("object_storage.provider", S3StorageProvider)
	v.SetDefault("object_storage.region", "ap-southeast-1")
	v.SetDefault("object_storage.presign_expiry", time.Hour)

	v.SetDefault("sms.driver", SMSDriverLog)
	v.SetDefault("sms.timeout", 10*time.Second)

	v.SetDefault("auth.issuer", "campaign-api")
	v.SetDefault("auth.session_ttl", 24*time.Hour)
	v.SetDefault("auth.cookie_name", "campaign_session")

	v.SetDefault("upload.chunk_ttl", 30*time.Minute)
	v.SetDefault("upload.sweep_interval", 5*time.Minute)
	v.SetDefault("upload.max_chunk_size", 8<<20)
	v.SetDefault("upload.part_size", 10<<20)
	v.SetDefault("upload.presign_concurrency", 8)
}
