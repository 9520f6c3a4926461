//go:build unit
// +build unit

package logger

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []interface{}
		wantMsg   string
		wantAttrs []any
	}{
		{"empty", nil, "", nil},
		{"message only", []interface{}{"server started"}, "server started", []any{}},
		{"key value pairs", []interface{}{"order placed", "order_number", "ORD-1", "total", 500}, "order placed", []any{"order_number", "ORD-1", "total", 500}},
		{"odd tail falls back to sprint", []interface{}{"Starting server on port ", "8080"}, "Starting server on port 8080", nil},
		{"non string key falls back", []interface{}{"count", 1, 2}, "count1 2", nil},
		{"non string message", []interface{}{42}, "42", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, attrs := splitArgs(tt.args...)
			assert.Equal(t, tt.wantMsg, msg)
			if len(tt.wantAttrs) == 0 {
				assert.Empty(t, attrs)
			} else {
				assert.Equal(t, tt.wantAttrs, attrs)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel(config.LogLevelDebug))
	assert.Equal(t, slog.LevelInfo, parseLevel(config.LogLevelInfo))
	assert.Equal(t, slog.LevelWarn, parseLevel(config.LogLevelWarning))
	assert.Equal(t, slog.LevelError, parseLevel(config.LogLevelError))
	assert.Equal(t, slog.LevelError, parseLevel(config.LogLevelCritical))
	assert.Equal(t, slog.LevelInfo, parseLevel("unknown"))
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		settings *config.LoggerSettings
		wantErr  bool
	}{
		{"console", &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}, false},
		{"file", &config.LoggerSettings{
			LogLevel:   config.LogLevelDebug,
			LogType:    config.LogTypeFile,
			FilePath:   filepath.Join(t.TempDir(), "app.log"),
			MaxSize:    10,
			MaxBackups: 2,
			MaxAge:     7,
		}, false},
		{"file without path", &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeFile}, true},
		{"unknown type", &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: "syslog"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := newLogger(tt.settings)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, l)
			l.Debug("debug message", "k", "v")
			l.Info("info message")
		})
	}
}

func TestLogger_PanicPanicsWithMessage(t *testing.T) {
	l := NewConsoleLogger(config.LogLevelError)
	assert.PanicsWithValue(t, "boom", func() {
		l.Panic("boom", "reason", "test")
	})
}

func TestInitLogger_Singleton(t *testing.T) {
	settings := &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}
	require.NoError(t, InitLogger(settings))

	first, err := GetLogger()
	require.NoError(t, err)

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelDebug, LogType: config.LogTypeConsole}))
	second, err := GetLogger()
	require.NoError(t, err)

	assert.Same(t, first, second)
}
