//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRestConfig = `
port: "9090"
logger:
  log_level: debug
  log_type: console
database:
  type: sqlite
  dsn: ":memory:"
object_storage:
  provider: s3
  region: ap-southeast-1
  bucket: campaign-media
  cdn_base_url: https://cdn.example.com
  presign_expiry: 30m
sms:
  driver: log
  emergency_contacts:
    - "01711000000"
auth:
  jwt_secret: 0123456789abcdef0123456789abcdef
upload:
  chunk_ttl: 10m
site:
  base_url: https://example.com
  name_en: Campaign
  name_bn: ক্যাম্পেইন
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig_FromFile(t *testing.T) {
	path := writeConfig(t, testRestConfig)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, "campaign-media", cfg.ObjectStorage.Bucket)
	assert.Equal(t, 30*time.Minute, cfg.ObjectStorage.PresignExpiry)
	assert.Equal(t, 10*time.Minute, cfg.Upload.ChunkTTL)
	assert.Equal(t, []string{"01711000000"}, cfg.SMS.EmergencyContacts)

	// defaults fill what the file leaves out
	assert.Equal(t, 5*time.Minute, cfg.Upload.SweepInterval)
	assert.Equal(t, "campaign_session", cfg.Auth.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestInitializeRestConfig_SecretsFromEnv(t *testing.T) {
	path := writeConfig(t, testRestConfig)

	t.Setenv("CAMPAIGN_JWT_SECRET", "fedcba9876543210fedcba9876543210")
	t.Setenv("CAMPAIGN_S3_ACCESS_KEY", "AKIAEXAMPLE")
	t.Setenv("CAMPAIGN_S3_SECRET_KEY", "secret")

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "fedcba9876543210fedcba9876543210", cfg.Auth.JWTSecret)
	assert.Equal(t, "AKIAEXAMPLE", cfg.ObjectStorage.AccessKey)
	assert.Equal(t, "secret", cfg.ObjectStorage.SecretKey)
}

func TestInitializeRestConfig_InvalidConfig(t *testing.T) {
	path := writeConfig(t, `
port: "8080"
auth:
  jwt_secret: too-short
`)

	_, err := InitializeRestConfig(path)
	assert.Error(t, err)
}

func TestInitializeRestConfig_AllowedOrigins(t *testing.T) {
	tests := []struct {
		name    string
		origins string
		wantErr bool
	}{
		{"explicit origins", "allowed_origins:\n  - https://example.com\n  - https://admin.example.com\n", false},
		{"bare wildcard", "allowed_origins:\n  - \"*\"\n", true},
		{"subdomain wildcard", "allowed_origins:\n  - https://*.example.com\n", true},
		{"empty list", "allowed_origins: []\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, testRestConfig+tt.origins)

			cfg, err := InitializeRestConfig(path)
			if tt.wantErr {
				assert.ErrorContains(t, err, "allowed_origins")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{"https://example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
		})
	}
}

func TestInitializeRestConfig_ShippedConfigIsValid(t *testing.T) {
	cfg, err := InitializeRestConfig(filepath.Join("..", "..", "..", "configs", "rest-app.yaml"))
	require.NoError(t, err)

	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, SMSDriverLog, cfg.SMS.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, int64(8<<20), cfg.Upload.MaxChunkSize)
}
