package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)
	t.Chdir(t.TempDir())

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.Equal(t, "", config.CSV.OutputDir)
	assert.False(t, config.AI.Enabled)
	assert.Equal(t, "gemini-2.0-flash", config.AI.Model)
	assert.Equal(t, 30, config.AI.TimeoutSeconds)
	assert.Equal(t, "budget.yaml", config.Budget.File)
	assert.Equal(t, "NOK", config.Budget.Currency)
	assert.Equal(t, 50, config.Budget.DefaultAttendees)
	assert.Equal(t, 30*time.Second, config.Timeout())
	assert.Equal(t, ',', config.Delimiter())
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)
	t.Chdir(t.TempDir())

	testEnvVars := map[string]string{
		"BUDGET_LOG_LEVEL":               "debug",
		"BUDGET_LOG_FORMAT":              "json",
		"BUDGET_CSV_DELIMITER":           ";",
		"BUDGET_AI_ENABLED":              "true",
		"BUDGET_AI_MODEL":                "gemini-1.5-pro",
		"BUDGET_BUDGET_FILE":             "julebord.yaml",
		"BUDGET_BUDGET_DEFAULT_ATTENDEES": "120",
		"GEMINI_API_KEY":                 "test-api-key",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, ";", config.CSV.Delimiter)
	assert.True(t, config.AI.Enabled)
	assert.Equal(t, "gemini-1.5-pro", config.AI.Model)
	assert.Equal(t, "julebord.yaml", config.Budget.File)
	assert.Equal(t, 120, config.Budget.DefaultAttendees)
	assert.Equal(t, "test-api-key", config.AI.APIKey)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
  format: "json"
csv:
  delimiter: "|"
  output_dir: "exports"
ai:
  model: "gemini-1.0-pro"
  timeout_seconds: 10
budget:
  currency: "SEK"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0600))
	t.Chdir(tempDir)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "|", config.CSV.Delimiter)
	assert.Equal(t, "exports", config.CSV.OutputDir)
	assert.Equal(t, "gemini-1.0-pro", config.AI.Model)
	assert.Equal(t, 10, config.AI.TimeoutSeconds)
	assert.Equal(t, "SEK", config.Budget.Currency)
	assert.Equal(t, "budget.yaml", config.Budget.File)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
csv:
  delimiter: "|"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0600))
	t.Chdir(tempDir)
	t.Setenv("BUDGET_LOG_LEVEL", "error")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level, "environment overrides file")
	assert.Equal(t, "|", config.CSV.Delimiter, "file overrides defaults")
	assert.Equal(t, "text", config.Log.Format, "defaults fill the rest")
}

func validConfig() *Config {
	c := &Config{}
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.CSV.Delimiter = ","
	c.AI.TimeoutSeconds = 30
	c.Budget.File = "budget.yaml"
	c.Budget.Currency = "NOK"
	c.Budget.DefaultAttendees = 50
	return c
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{"invalid log level", func(c *Config) { c.Log.Level = "invalid" }, "invalid log level"},
		{"invalid log format", func(c *Config) { c.Log.Format = "xml" }, "invalid log format"},
		{"invalid CSV delimiter", func(c *Config) { c.CSV.Delimiter = "abc" }, "CSV delimiter must be a single character"},
		{"empty CSV delimiter", func(c *Config) { c.CSV.Delimiter = "" }, "CSV delimiter must be a single character"},
		{
			"AI enabled without API key",
			func(c *Config) { c.AI.Enabled = true },
			"GEMINI_API_KEY required when AI is enabled",
		},
		{
			"invalid timeout seconds",
			func(c *Config) {
				c.AI.Enabled = true
				c.AI.APIKey = "test-key"
				c.AI.TimeoutSeconds = 0
			},
			"ai.timeout_seconds must be between 1 and 300",
		},
		{"empty budget file", func(c *Config) { c.Budget.File = " " }, "budget.file must not be empty"},
		{"bad currency", func(c *Config) { c.Budget.Currency = "kroner" }, "budget.currency must be a 3-letter ISO code"},
		{"negative attendees", func(c *Config) { c.Budget.DefaultAttendees = -1 }, "budget.default_attendees must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}

	assert.NoError(t, validateConfig(validConfig()))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		wantLevel logrus.Level
		wantJSON  bool
	}{
		{"text format info level", "info", "text", logrus.InfoLevel, false},
		{"json format debug level", "debug", "json", logrus.DebugLevel, true},
		{"invalid level falls back to info", "loud", "text", logrus.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			config.Log.Level = tt.level
			config.Log.Format = tt.format

			logger := ConfigureLoggingFromConfig(config)
			require.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel, logger.GetLevel())
			_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tt.wantJSON, isJSON)
		})
	}
}

func TestDelimiter_Unicode(t *testing.T) {
	config := validConfig()
	config.CSV.Delimiter = "§"
	require.NoError(t, validateConfig(config))
	assert.Equal(t, '§', config.Delimiter())
}

// clearTestEnvVars unsets every variable the loader reads for the duration of the test.
func clearTestEnvVars(t *testing.T) {
	envVars := []string{
		"BUDGET_LOG_LEVEL",
		"BUDGET_LOG_FORMAT",
		"BUDGET_CSV_DELIMITER",
		"BUDGET_CSV_OUTPUT_DIR",
		"BUDGET_AI_ENABLED",
		"BUDGET_AI_MODEL",
		"BUDGET_AI_TIMEOUT_SECONDS",
		"BUDGET_BUDGET_FILE",
		"BUDGET_BUDGET_CURRENCY",
		"BUDGET_BUDGET_DEFAULT_ATTENDEES",
		"GEMINI_API_KEY",
	}

	for _, envVar := range envVars {
		t.Setenv(envVar, "")
		require.NoError(t, os.Unsetenv(envVar))
	}
}
