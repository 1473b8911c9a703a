package logger_test

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	logpkg "github.com/maxviazov/portfolio-service/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name           string
		config         *logpkg.LoggerConfig
		expectError    bool
		validateOutput func(zerolog.Logger) bool
	}{
		{
			name: "valid production environment",
			config: &logpkg.LoggerConfig{
				ServiceName:    "test-service",
				ServiceVersion: "1.0.0",
				Env:            "prod",
				Level:          "info",
				TimeField:      "timestamp",
				TimeFormat:     "unix",
				Fields:         map[string]interface{}{"key": "value"},
			},
			validateOutput: func(logger zerolog.Logger) bool {
				return zerolog.GlobalLevel() == zerolog.InfoLevel
			},
		},
		{
			name: "invalid configuration - wrong env",
			config: &logpkg.LoggerConfig{
				ServiceName: "bad-service",
				Env:         "wrong-env", // not allowed by validator
				Level:       "debug",
			},
			expectError: true,
		},
		{
			name: "invalid log level",
			config: &logpkg.LoggerConfig{
				Env:   "prod",
				Level: "invalid-level", // not allowed
			},
			expectError: true,
		},
		{
			name: "invalid output target",
			config: &logpkg.LoggerConfig{
				Env:          "prod",
				OutputTarget: "file",
			},
			expectError: true,
		},
		{
			name: "valid staging environment",
			config: &logpkg.LoggerConfig{
				ServiceName:    "test-service",
				ServiceVersion: "2.0.0",
				Env:            "staging",
				Level:          "warn",
				TimeField:      "time",
				OutputTarget:   "stderr",
				Stacktrace:     true,
			},
			validateOutput: func(logger zerolog.Logger) bool {
				return zerolog.GlobalLevel() == zerolog.WarnLevel
			},
		},
		{
			name: "valid development environment without debug",
			config: &logpkg.LoggerConfig{
				Env:   "dev",
				Level: "info",
			},
			validateOutput: func(logger zerolog.Logger) bool {
				return zerolog.GlobalLevel() == zerolog.InfoLevel
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l, err := logpkg.New(test.config)
			if test.expectError {
				assert.NotNil(t, err)
				return
			}
			assert.NoError(t, err)
			if test.validateOutput != nil {
				assert.True(t, test.validateOutput(l))
			}
		})
	}

	t.Run("debug log file creation", func(t *testing.T) {
		t.Chdir(t.TempDir())
		config := &logpkg.LoggerConfig{
			ServiceName: "integration-test",
			Env:         "dev",
			Level:       "debug",
		}

		_, err := logpkg.New(config)
		assert.NoError(t, err)

		_, statErr := os.Stat("logs/debug.log")
		assert.NoError(t, statErr)
	})
}

func TestNewWithWriter_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := logpkg.NewWithWriter(&logpkg.LoggerConfig{
		Env:    "prod",
		Level:  "info",
		Fields: map[string]interface{}{"region": "eu"},
	}, &buf)
	require.NoError(t, err)

	l.Info().Str("component", "test").Msg("hello")
	l.Debug().Msg("filtered")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "portfolio-service", entry["service"])
	assert.Equal(t, "prod", entry["env"])
	assert.Equal(t, "eu", entry["region"])
	assert.Contains(t, entry, "ts")
}

func TestNewWithWriter_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l, err := logpkg.NewWithWriter(&logpkg.LoggerConfig{Env: "staging", Level: "info", Format: "console"}, &buf)
	require.NoError(t, err)

	l.Info().Msg("human readable")
	assert.Contains(t, buf.String(), "human readable")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
