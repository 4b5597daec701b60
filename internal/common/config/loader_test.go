package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("SES_FROM_EMAIL", "valuations@bizval.app")

	raw := `app:
  name: bizval-service
server:
  port: 9090
apis:
  gemini:
    api_key: ${GEMINI_API_KEY}
    model: gemini-1.5-flash
integrations:
  aws:
    ses:
      enabled: false
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "gemini-1.5-flash", cfg.APIs.Gemini.Model)
	assert.Equal(t, "env-key", cfg.APIs.Gemini.APIKey)
	assert.Equal(t, "valuations@bizval.app", cfg.Integrations.AWS.SES.FromEmail)
	// Defaults still fill whatever the file leaves out.
	assert.Equal(t, "ap-southeast-2", cfg.Integrations.AWS.Region)
	assert.Equal(t, "Your business valuation estimate", cfg.Email.Subject)
}

func TestLoadFromFile_MissingFileFails(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "bizval-service", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "gemini-1.5-pro", cfg.APIs.Gemini.Model)
	assert.Equal(t, 60000, cfg.APIs.Gemini.Timeout)
	assert.Equal(t, 2, cfg.APIs.Gemini.MaxRetries)
	assert.Equal(t, "Your business valuation estimate", cfg.Email.Subject)
	assert.Equal(t, "https://assets.bizval.app/thumbs", cfg.Email.AssetsBaseURL)
	assert.Equal(t, "ap-southeast-2", cfg.Integrations.AWS.Region)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestApplyDefaults_DoesNotOverrideExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 9090
	cfg.APIs.Gemini.Model = "gemini-1.5-flash"
	cfg.Email.Subject = "Custom subject"

	applyDefaults(cfg)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "gemini-1.5-flash", cfg.APIs.Gemini.Model)
	assert.Equal(t, "Custom subject", cfg.Email.Subject)
}

func TestValidateConfig(t *testing.T) {
	valid := &Config{}
	valid.APIs.Gemini.APIKey = "key"
	valid.Integrations.AWS.SES.FromEmail = "valuations@bizval.app"
	require.NoError(t, validateConfig(valid))

	missingKey := &Config{}
	missingKey.Integrations.AWS.SES.FromEmail = "valuations@bizval.app"
	assert.Error(t, validateConfig(missingKey))

	missingFrom := &Config{}
	missingFrom.APIs.Gemini.APIKey = "key"
	assert.Error(t, validateConfig(missingFrom))
}

func TestOverrideEmptyConfig_FillsFromEnvironment(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("AWS_REGION", "us-west-2")
	t.Setenv("SES_FROM_EMAIL", "env@bizval.app")

	cfg := &Config{}
	overrideEmptyConfig(cfg)

	assert.Equal(t, "env-key", cfg.APIs.Gemini.APIKey)
	assert.Equal(t, "us-west-2", cfg.Integrations.AWS.Region)
	assert.Equal(t, "env@bizval.app", cfg.Integrations.AWS.SES.FromEmail)
}

func TestOverrideEmptyConfig_KeepsFileValues(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg := &Config{}
	cfg.APIs.Gemini.APIKey = "file-key"
	overrideEmptyConfig(cfg)

	assert.Equal(t, "file-key", cfg.APIs.Gemini.APIKey)
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 60*time.Second, GetDuration(60000))
	assert.Equal(t, time.Duration(0), GetDuration(0))
}
