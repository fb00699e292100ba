package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmatch/internal/match"
)

// clearEnv makes sure the JOBMATCH_* variables are unset for the test and
// restored afterwards.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{EnvTables, EnvDatabase, EnvWorkers, EnvLogLevel, EnvLogFormat} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	env := writeFile(t, "empty.env", "")

	cfg, err := Load("", env)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, match.DefaultNameMatcherConfig(), cfg.NameMatcher)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := writeFile(t, "jobmatch.yaml", `
tables: tables.yaml
database: data/companies.db
workers: 4
log:
  level: debug
  format: json
name_matcher:
  max_distance: 1
`)
	env := writeFile(t, "test.env", "JOBMATCH_WORKERS=8\nJOBMATCH_DB=env.db\n")

	t.Setenv(EnvDatabase, "shell.db")

	cfg, err := Load(path, env)
	require.NoError(t, err)

	assert.Equal(t, "tables.yaml", cfg.Tables)
	assert.Equal(t, "shell.db", cfg.Database, "variables already set win over env files")
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)
	assert.Equal(t, 1, cfg.NameMatcher.MaxDistance)
	assert.Equal(t, 3, cfg.NameMatcher.MinContainmentLen, "unset fields keep defaults")
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	env := writeFile(t, "empty.env", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), env)
	require.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "workers: [\n"), env)
	require.Error(t, err)

	_, err = Load("", filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)

	_, err = Load(writeFile(t, "invalid.yaml", "workers: -2\nlog:\n  level: loud\n  format: xml\n"), env)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers must be >= 0")
	assert.Contains(t, err.Error(), "log level")
	assert.Contains(t, err.Error(), "log format")
}

func TestGetEnvInt_IgnoresGarbage(t *testing.T) {
	t.Setenv(EnvWorkers, "many")
	assert.Equal(t, 3, getEnvInt(EnvWorkers, 3))

	t.Setenv(EnvWorkers, " 6 ")
	assert.Equal(t, 6, getEnvInt(EnvWorkers, 3))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Database = " "
	cfg.NameMatcher.MaxDistance = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database path is empty")
	assert.Contains(t, err.Error(), "name_matcher")
}

func TestValidate_ZeroThreshold(t *testing.T) {
	cfg := Default()
	cfg.NameMatcher.MaxDistance = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name_matcher thresholds must be positive")

	clearEnv(t)

	path := writeFile(t, "jobmatch.yaml", "name_matcher:\n  max_distance: 0\n")

	_, err = Load(path, writeFile(t, "empty.env", ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLogConfig(t *testing.T) {
	level, err := LogConfig{Level: "WARN"}.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	level, err = LogConfig{}.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	var buf bytes.Buffer

	LogConfig{Level: "info", Format: "json"}.NewLogger(&buf).Debug("hidden")
	assert.Empty(t, buf.String())

	LogConfig{Level: "info", Format: "json"}.NewLogger(&buf).Info("shown", slog.String("k", "v"))
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"k":"v"`)

	buf.Reset()
	LogConfig{Level: "debug"}.NewLogger(&buf).Debug("text")
	assert.Contains(t, buf.String(), "msg=text")
}
