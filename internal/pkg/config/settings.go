package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// LoggerSettings holds configuration settings for logging, including log level, type and file path
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	if err := validateStruct("LoggerSettings", s); err != nil {
		return err
	}

	if s.LogType == LogTypeFile {
		if s.FilePath == "" {
			return fmt.Errorf("file path is required for file logger")
		}
		if s.MaxSize < 1 || s.MaxSize > 100 {
			return fmt.Errorf("max size must be between 1 and 100 MB")
		}
		if s.MaxBackups < 1 || s.MaxBackups > 10 {
			return fmt.Errorf("max backups must be between 1 and 10")
		}
		if s.MaxAge < 1 || s.MaxAge > 365 {
			return fmt.Errorf("max age must be between 1 and 365 days")
		}
	}

	return nil
}

// DatabaseSettings configures the relational store
type DatabaseSettings struct {
	Type            string        `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN             string        `mapstructure:"dsn"`
	DBName          string        `mapstructure:"db_name"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	if err := validateStruct("DatabaseSettings", s); err != nil {
		return err
	}
	if s.Type == PostgresDbType && s.DSN == "" {
		return fmt.Errorf("dsn is required for postgres")
	}
	return nil
}

// ObjectStorageSettings configures the S3 compatible bucket and the CDN in front of it
type ObjectStorageSettings struct {
	Provider      string        `mapstructure:"provider" validate:"required,oneof=s3"`
	Endpoint      string        `mapstructure:"endpoint" validate:"omitempty,url"`
	Region        string        `mapstructure:"region" validate:"required"`
	Bucket        string        `mapstructure:"bucket" validate:"required"`
	AccessKey     string        `mapstructure:"access_key"`
	SecretKey     string        `mapstructure:"secret_key"`
	UsePathStyle  bool          `mapstructure:"use_path_style"`
	CDNBaseURL    string        `mapstructure:"cdn_base_url" validate:"required,url"`
	PresignExpiry time.Duration `mapstructure:"presign_expiry" validate:"required"`
}

// Validate checks that all fields in ObjectStorageSettings are valid
func (s *ObjectStorageSettings) Validate() error {
	return validateStruct("ObjectStorageSettings", s)
}

// SMSSettings configures the SMS gateway
type SMSSettings struct {
	Driver            string        `mapstructure:"driver" validate:"required,oneof=http log"`
	GatewayURL        string        `mapstructure:"gateway_url" validate:"omitempty,url"`
	APIKey            string        `mapstructure:"api_key"`
	SenderID          string        `mapstructure:"sender_id"`
	EmergencyContacts []string      `mapstructure:"emergency_contacts"`
	Timeout           time.Duration `mapstructure:"timeout"`
}

// Validate checks that all fields in SMSSettings are valid
func (s *SMSSettings) Validate() error {
	if err := validateStruct("SMSSettings", s); err != nil {
		return err
	}
	if s.Driver == SMSDriverHTTP {
		if s.GatewayURL == "" {
			return fmt.Errorf("gateway url is required for the http sms driver")
		}
		if s.APIKey == "" {
			return fmt.Errorf("api key is required for the http sms driver")
		}
	}
	return nil
}

// AuthSettings configures admin console sessions
type AuthSettings struct {
	JWTSecret    string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	Issuer       string        `mapstructure:"issuer" validate:"required"`
	SessionTTL   time.Duration `mapstructure:"session_ttl" validate:"required"`
	CookieName   string        `mapstructure:"cookie_name" validate:"required"`
	CookieDomain string        `mapstructure:"cookie_domain"`
	CookieSecure bool          `mapstructure:"cookie_secure"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	return validateStruct("AuthSettings", s)
}

// UploadSettings tunes the chunked and multipart upload flows
type UploadSettings struct {
	ChunkTTL           time.Duration `mapstructure:"chunk_ttl" validate:"required"`
	SweepInterval      time.Duration `mapstructure:"sweep_interval" validate:"required"`
	MaxChunkSize       int64         `mapstructure:"max_chunk_size" validate:"required,min=1"`
	PartSize           int64         `mapstructure:"part_size" validate:"required,min=5242880"`
	PresignConcurrency int           `mapstructure:"presign_concurrency" validate:"required,min=1,max=64"`
}

// Validate checks that all fields in UploadSettings are valid
func (s *UploadSettings) Validate() error {
	return validateStruct("UploadSettings", s)
}

// SiteSettings describes the public site for SEO metadata and the sitemap
type SiteSettings struct {
	BaseURL       string `mapstructure:"base_url" validate:"required,url"`
	NameEn        string `mapstructure:"name_en" validate:"required"`
	NameBn        string `mapstructure:"name_bn" validate:"required"`
	DescriptionEn string `mapstructure:"description_en"`
	DescriptionBn string `mapstructure:"description_bn"`
	DefaultImage  string `mapstructure:"default_image"`
}

// Validate checks that all fields in SiteSettings are valid
func (s *SiteSettings) Validate() error {
	return validateStruct("SiteSettings", s)
}

// RestConfig is the full configuration of the REST API process
type RestConfig struct {
	Port           string                `mapstructure:"port" validate:"required,numeric"`
	AllowedOrigins []string              `mapstructure:"allowed_origins"`
	Logger         LoggerSettings        `mapstructure:"logger"`
	Database       DatabaseSettings      `mapstructure:"database"`
	ObjectStorage  ObjectStorageSettings `mapstructure:"object_storage"`
	SMS            SMSSettings           `mapstructure:"sms"`
	Auth           AuthSettings          `mapstructure:"auth"`
	Upload         UploadSettings        `mapstructure:"upload"`
	Site           SiteSettings          `mapstructure:"site"`
}

// Validate checks every settings section
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if err := validateOrigins(c.AllowedOrigins); err != nil {
		return err
	}

	sections := []interface{ Validate() error }{
		&c.Logger,
		&c.Database,
		&c.ObjectStorage,
		&c.SMS,
		&c.Auth,
		&c.Upload,
		&c.Site,
	}
	for _, section := range sections {
		if err := section.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// validateOrigins rejects origin lists the credentialed CORS middleware cannot serve
func validateOrigins(origins []string) error {
	if len(origins) == 0 {
		return fmt.Errorf("allowed_origins must list at least one origin")
	}
	for _, origin := range origins {
		if strings.Contains(origin, "*") {
			return fmt.Errorf("allowed_origins entry %q: wildcards are not allowed with credentialed requests", origin)
		}
	}
	return nil
}

func validateStruct(name string, s interface{}) error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed for %s: %v", name, messages)
		}
		return fmt.Errorf("validation failed for %s: %w", name, err)
	}
	return nil
}
