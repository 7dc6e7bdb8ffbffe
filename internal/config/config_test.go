package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "repricer.db", cfg.Database)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.Error(t, cfg.ValidateEndpoints())
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repricer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database: /var/lib/repricer/slot.db
timeout_seconds: 5
endpoints:
  enroll: https://example.test/enroll
  fetch: https://example.test/fetch
  approve: https://example.test/approve
  delete: https://example.test/delete
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/repricer/slot.db", cfg.Database)
	assert.Equal(t, 5, cfg.TimeoutSeconds)
	assert.Equal(t, "https://example.test/enroll", cfg.Endpoints.Enroll)
	assert.NoError(t, cfg.ValidateEndpoints())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repricer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: from-file.db\n"), 0o600))

	t.Setenv("REPRICER_DB", "from-env.db")
	t.Setenv("REPRICER_FETCH_URL", "https://env.test/fetch")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env.db", cfg.Database)
	assert.Equal(t, "https://env.test/fetch", cfg.Endpoints.Fetch)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repricer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateEndpoints_NamesMissingURL(t *testing.T) {
	cfg := Default()
	cfg.Endpoints = EndpointConfig{
		Enroll:  "https://example.test/enroll",
		Fetch:   "https://example.test/fetch",
		Approve: "https://example.test/approve",
	}

	err := cfg.ValidateEndpoints()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete")
}

func TestHTTPTimeout(t *testing.T) {
	cfg := Default()
	cfg.TimeoutSeconds = 5
	assert.Equal(t, "5s", cfg.HTTPTimeout().String())
}
