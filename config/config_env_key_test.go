package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"api": map[string]any{
			"baseUrl":        "",
			"requestTimeout": "15s",
		},
		"poller": map[string]any{
			"allowPrivateNetworks": true,
		},
		"session": map[string]any{
			"passphrase": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "API_BASEURL", want: "api.baseUrl"},
		{envKey: "API_REQUESTTIMEOUT", want: "api.requestTimeout"},
		{envKey: "POLLER_ALLOWPRIVATENETWORKS", want: "poller.allowPrivateNetworks"},
		{envKey: "SESSION_PASSPHRASE", want: "session.passphrase"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte("api:\n  baseUrl: http://yaml\n  requestTimeout: 5s\nsession:\n  driver: file\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yamlBody, 0o600))

	t.Setenv("API_BASEURL", "http://from-env")

	cwd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(cwd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, "http://from-env", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.RequestTimeout)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultRequestTimeout, cfg.API.RequestTimeout)
	assert.Equal(t, "file", cfg.Session.Driver)
	assert.Equal(t, defaultPollInterval, cfg.Poller.Interval)
	assert.Equal(t, defaultPollTimeout, cfg.Poller.Timeout)
	assert.Equal(t, defaultBucketURL, cfg.Export.BucketURL)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
	assert.Equal(t, "blogpilot", cfg.Metrics.Namespace)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	require.Error(t, cfg.Validate())

	cfg.API.BaseURL = "http://localhost:8000"
	require.NoError(t, cfg.Validate())

	cfg.Session.Driver = "redis"
	require.Error(t, cfg.Validate())
}

func TestValidate_Notify(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	cfg.API.BaseURL = "http://localhost:8000"

	cfg.Notify.Provider = NotifyProviderWebhook
	require.Error(t, cfg.Validate())

	cfg.Notify.Endpoint = "http://localhost:9000/hooks/generation"
	require.NoError(t, cfg.Validate())

	cfg.Notify.Provider = "kafka"
	require.Error(t, cfg.Validate())
}
