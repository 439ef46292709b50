package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{"LOANRATES_TOP_N", "LOANRATES_FORMAT", "LOANRATES_LOG_LEVEL", "LOANRATES_DELIMITER"}

// clearEnv unsets the config variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, &Config{TopN: 3, Format: "text", LogLevel: "warn", Delimiter: ","}, cfg)
	assert.Equal(t, ',', cfg.DelimiterRune())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOANRATES_TOP_N", "5")
	t.Setenv("LOANRATES_FORMAT", "markdown")
	t.Setenv("LOANRATES_DELIMITER", ";")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, "markdown", cfg.Format)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, ';', cfg.DelimiterRune())
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOANRATES_FORMAT", "table")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("LOANRATES_TOP_N=10\nLOANRATES_FORMAT=csv\nLOANRATES_LOG_LEVEL=debug\n"), 0o644))

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.TopN)
	assert.Equal(t, "table", cfg.Format, "environment wins over env file")
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"top n not a number", "LOANRATES_TOP_N", "three"},
		{"top n zero", "LOANRATES_TOP_N", "0"},
		{"unknown format", "LOANRATES_FORMAT", "xml"},
		{"unknown log level", "LOANRATES_LOG_LEVEL", "trace"},
		{"long delimiter", "LOANRATES_DELIMITER", ";;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{TopN: 3, Format: "text", LogLevel: "info", Delimiter: "\t"}
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, '\t', cfg.DelimiterRune())

	cfg.TopN = -1
	assert.ErrorContains(t, cfg.Validate(), "invalid configuration")
}
