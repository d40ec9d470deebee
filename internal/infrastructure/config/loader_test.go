package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestManager_LoadWithoutFileUsesDefaults(t *testing.T) {
	isolateConfigDir(t)

	mgr, err := NewManager("")
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, DefaultConfig(), mgr.Get())
	assert.Empty(t, mgr.ConfigFileUsed())
}

func TestManager_LoadFromFile(t *testing.T) {
	dir := isolateConfigDir(t)
	path := filepath.Join(dir, "custom.toml")
	content := `
[simulation]
default_capacity = 3
policy = "LRU"

[output]
format = "JSON"
show_metrics = true

[stepper]
highlight_ms = 250
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 3, cfg.Simulation.DefaultCapacity)
	assert.Equal(t, "lru", cfg.Simulation.Policy)
	assert.Equal(t, OutputFormatJSON, cfg.Output.Format)
	assert.True(t, cfg.Output.ShowMetrics)
	assert.True(t, cfg.Output.ShowSummary, "unset keys keep their defaults")
	assert.Equal(t, 250, cfg.Stepper.HighlightMilliseconds)
	assert.Equal(t, path, mgr.ConfigFileUsed())
}

func TestManager_LoadFromXDGDir(t *testing.T) {
	dir := isolateConfigDir(t)
	appDir := filepath.Join(dir, appName)
	require.NoError(t, os.MkdirAll(appDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, configFileName), []byte("[simulation]\ndefault_capacity = 7\n"), 0o600))

	cfg, used, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Simulation.DefaultCapacity)
	assert.Equal(t, filepath.Join(appDir, configFileName), used)
}

func TestManager_EnvOverrides(t *testing.T) {
	isolateConfigDir(t)
	t.Setenv("LRUTRACE_LOG_LEVEL", "debug")
	t.Setenv("LRUTRACE_SIMULATION_DEFAULT_CAPACITY", "9")

	cfg, _, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 9, cfg.Simulation.DefaultCapacity)
}

func TestManager_InvalidValuesRejected(t *testing.T) {
	dir := isolateConfigDir(t)
	path := filepath.Join(dir, "bad.toml")
	content := `
[simulation]
default_capacity = 0
policy = "fifo"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, _, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulation.default_capacity must be at least 1")
	assert.Contains(t, err.Error(), "simulation.policy must be 'lru'")
}

func TestManager_MalformedFile(t *testing.T) {
	dir := isolateConfigDir(t)
	path := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[simulation\n"), 0o600))

	_, _, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestManager_GetReturnsCopy(t *testing.T) {
	isolateConfigDir(t)
	mgr, err := NewManager("")
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Simulation.DefaultCapacity = 99
	assert.Equal(t, DefaultConfig().Simulation.DefaultCapacity, mgr.Get().Simulation.DefaultCapacity)
}

func TestGetConfigDir_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")
	dir, err := GetConfigDir()
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, ".dev", appName), dir)
}

func TestManager_MissingExplicitFileUsesDefaults(t *testing.T) {
	isolateConfigDir(t)

	cfg, used, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Empty(t, used)
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"default_capacity"`)
	assert.Contains(t, string(data), `"highlight_ms"`)
}
