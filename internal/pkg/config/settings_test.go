//go:build unit
// +build unit

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoggerSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *LoggerSettings
		expectedError bool
	}{
		{
			name:          "valid console logger",
			settings:      &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole},
			expectedError: false,
		},
		{
			name: "valid file logger with rotation",
			settings: &LoggerSettings{
				LogLevel:   LogLevelDebug,
				LogType:    LogTypeFile,
				FilePath:   "/var/log/campaign/api.log",
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     28,
			},
			expectedError: false,
		},
		{
			name:          "missing log level",
			settings:      &LoggerSettings{LogType: LogTypeConsole},
			expectedError: true,
		},
		{
			name:          "invalid log type",
			settings:      &LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"},
			expectedError: true,
		},
		{
			name: "file logger missing rotation settings",
			settings: &LoggerSettings{
				LogLevel: LogLevelInfo,
				LogType:  LogTypeFile,
				FilePath: "/var/log/campaign/api.log",
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDatabaseSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *DatabaseSettings
		expectedError bool
	}{
		{"sqlite without dsn", &DatabaseSettings{Type: SqliteDbType}, false},
		{"postgres with dsn", &DatabaseSettings{Type: PostgresDbType, DSN: "host=localhost user=campaign"}, false},
		{"postgres without dsn", &DatabaseSettings{Type: PostgresDbType}, true},
		{"unsupported type", &DatabaseSettings{Type: "mysql", DSN: "x"}, true},
		{"negative pool size", &DatabaseSettings{Type: SqliteDbType, MaxOpenConns: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSMSSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *SMSSettings
		expectedError bool
	}{
		{"log driver", &SMSSettings{Driver: SMSDriverLog}, false},
		{"http driver complete", &SMSSettings{Driver: SMSDriverHTTP, GatewayURL: "https://sms.example.com/api", APIKey: "k"}, false},
		{"http driver without url", &SMSSettings{Driver: SMSDriverHTTP, APIKey: "k"}, true},
		{"http driver without key", &SMSSettings{Driver: SMSDriverHTTP, GatewayURL: "https://sms.example.com/api"}, true},
		{"unknown driver", &SMSSettings{Driver: "carrier-pigeon"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUploadSettingsValidation(t *testing.T) {
	valid := UploadSettings{
		ChunkTTL:           30 * time.Minute,
		SweepInterval:      time.Minute,
		MaxChunkSize:       8 << 20,
		PartSize:           5 << 20,
		PresignConcurrency: 4,
	}
	assert.NoError(t, valid.Validate())

	tooSmallParts := valid
	tooSmallParts.PartSize = 1 << 20
	assert.Error(t, tooSmallParts.Validate())

	noTTL := valid
	noTTL.ChunkTTL = 0
	assert.Error(t, noTTL.Validate())
}

func TestAuthSettingsValidation(t *testing.T) {
	settings := AuthSettings{
		JWTSecret:  "short",
		Issuer:     "campaign-api",
		SessionTTL: time.Hour,
		CookieName: "campaign_session",
	}
	assert.Error(t, settings.Validate())

	settings.JWTSecret = "0123456789abcdef0123456789abcdef"
	assert.NoError(t, settings.Validate())
}
