package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
camunda:
  broker_address: localhost:26500
workers:
  analyze-viability:
    enabled: true
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "bizstart-workers", cfg.App.Name)
	assert.Equal(t, 10, cfg.Camunda.MaxJobsActive)
	assert.Equal(t, "https://www.bizinfo.go.kr/uss/rss/bizinfoApi.do", cfg.APIs.Bizinfo.BaseURL)
	assert.Equal(t, 50, cfg.APIs.Bizinfo.DefaultCount)
	assert.Equal(t, "https://dapi.kakao.com", cfg.APIs.Kakao.BaseURL)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, 1800, cfg.Database.Redis.ListingTTL)

	worker := cfg.Workers["analyze-viability"]
	assert.True(t, worker.Enabled)
	assert.Equal(t, 5, worker.MaxJobsActive)
	assert.Equal(t, 30000, worker.Timeout)
}

func TestLoadFromFile_ExpandsPlaceholders(t *testing.T) {
	t.Setenv("TEST_BROKER", "zeebe:26500")
	t.Setenv("BIZINFO_API_KEY", "biz-key")

	path := writeConfig(t, `
camunda:
  broker_address: ${TEST_BROKER}
apis:
  bizinfo:
    api_key: ""
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "zeebe:26500", cfg.Camunda.BrokerAddress)
	assert.Equal(t, "biz-key", cfg.APIs.Bizinfo.APIKey)
}

func TestLoadFromFile_MissingBrokerIsInvalid(t *testing.T) {
	t.Setenv("ZEEBE_ADDRESS", "")
	path := writeConfig(t, `
logging:
  level: debug
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "camunda.broker_address")
}

func TestWorkerConfigHelpers(t *testing.T) {
	cfg := &Config{Workers: map[string]WorkerConfig{
		"match-policy-funds": {Enabled: false, MaxJobsActive: 2, Timeout: 1500},
	}}

	assert.False(t, IsWorkerEnabled(cfg, "match-policy-funds"))
	assert.True(t, IsWorkerEnabled(cfg, "resolve-location"))

	assert.Equal(t, 2, GetWorkerConfig(cfg, "match-policy-funds").MaxJobsActive)
	assert.Equal(t, 30000, GetWorkerConfig(cfg, "unknown").Timeout)
	assert.Equal(t, 1500*time.Millisecond, GetDuration(1500))
}
