package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoFileReturnsDefaults(t *testing.T) {
	t.Setenv(EndpointEnvVar, "")
	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, DefaultResults, cfg.Results)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultLocale, cfg.Locale)
	assert.False(t, cfg.Colors)
}

func TestLoad_FindsFileInDir(t *testing.T) {
	t.Setenv(EndpointEnvVar, "")
	dir := t.TempDir()
	yml := "endpoint: http://localhost:9999/api\nresults: 5\nseed: abc\ntimeout: 2s\nlocale: es\ncolors: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "userlist.yaml"), []byte(yml), 0o600))

	cfg, err := Load("", dir)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/api", cfg.Endpoint)
	assert.Equal(t, 5, cfg.Results)
	assert.Equal(t, "abc", cfg.Seed)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, "es", cfg.Locale)
	assert.True(t, cfg.Colors)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint: http://file/api\n"), 0o600))
	t.Setenv(EndpointEnvVar, "http://env/api")

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "http://env/api", cfg.Endpoint)
}

func TestLoad_ExplicitMissingPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"), "")
	require.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "userlist.yml"), []byte("results: [1,"), 0o600))
	_, err := Load("", dir)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Results = -1
	assert.Error(t, cfg.Validate())
	cfg.Results = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Timeout = -time.Second
	assert.Error(t, cfg.Validate())
}

func TestLogPath(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join(os.TempDir(), DefaultLogName), cfg.LogPath())
	cfg.LogFile = "/var/log/u.log"
	assert.Equal(t, "/var/log/u.log", cfg.LogPath())
}
