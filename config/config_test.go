package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"home-goal/service"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "home-goal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_EnvOnlyUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, BackendMemory, cfg.RateLimit.Backend)
	assert.Equal(t, service.DefaultPolicy(), cfg.Policy)
}

func TestLoad_ExampleFile(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "configs", "home-goal.yaml"))
	require.NoError(t, err)

	assert.Equal(t, service.DefaultPolicy(), cfg.Policy)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

func TestLoad_FileOverridesPolicy(t *testing.T) {
	path := writeConfig(t, `
policy:
  loan_ceiling: 600000000
  risk_threshold: 0.4
  challenges:
    coffee: 15000
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(600_000_000), cfg.Policy.LoanCeiling)
	assert.Equal(t, 0.4, cfg.Policy.RiskThreshold)
	assert.Equal(t, int64(15_000), cfg.Policy.Challenges["coffee"])
	assert.Len(t, cfg.Policy.Challenges, 1)
	assert.Equal(t, service.DefaultStressAdjustment, cfg.Policy.StressAdjustment)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HOMEGOAL_POLICY_LOAN_CEILING", "800000000")
	t.Setenv("HOMEGOAL_SERVER_ADDR", ":9090")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, int64(800_000_000), cfg.Policy.LoanCeiling)
	assert.Equal(t, ":9090", cfg.Server.Addr)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidPolicy(t *testing.T) {
	path := writeConfig(t, `
policy:
  default_product: bonds
  max_years: 0
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "policy.default_product")
	assert.Contains(t, err.Error(), "policy.max_years")
}

func TestValidate_RedisBackendNeedsAddr(t *testing.T) {
	path := writeConfig(t, `
rate_limit:
  backend: redis
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis.addr")
}

func TestValidate_UnknownBackend(t *testing.T) {
	path := writeConfig(t, `
rate_limit:
  backend: memcached
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "memcached")
}
