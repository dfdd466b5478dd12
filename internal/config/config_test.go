package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at an empty directory, runs from another empty
// directory and clears every PATHFINDER_* variable.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for _, k := range []string{EnvLogLevel, EnvLogFormat, EnvOutput, EnvForm, EnvTimeout} {
		t.Setenv(k, "")
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	return home
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(Sources{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_HomeFile(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".pathfinder.yaml"), `
log:
  level: debug
output: json
timeout: 2s
`)

	cfg, err := Load(Sources{})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "unset keys keep defaults")
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	isolate(t)

	_, err := Load(Sources{File: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestLoad_UnknownKey(t *testing.T) {
	isolate(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "cfg.yaml"), "outptu: json\n")

	_, err := Load(Sources{File: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outptu")
}

func TestLoad_EmptyFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "cfg.yaml"), "")

	cfg, err := Load(Sources{File: path})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	file := writeFile(t, filepath.Join(dir, "cfg.yaml"), "output: yaml\nform: cities\nlog:\n  level: info\n")
	env := writeFile(t, filepath.Join(dir, "test.env"), "PATHFINDER_OUTPUT=table\nPATHFINDER_LOG_LEVEL=error\n")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load(Sources{File: file, EnvFile: env})
	require.NoError(t, err)
	assert.Equal(t, "table", cfg.Output, ".env overrides the file")
	assert.Equal(t, "debug", cfg.Log.Level, "process environment overrides .env")
	assert.Equal(t, "cities", cfg.Form)
}

func TestLoad_DefaultEnvFile(t *testing.T) {
	isolate(t)
	writeFile(t, ".env", "PATHFINDER_FORM=indexed\n")

	cfg, err := Load(Sources{})
	require.NoError(t, err)
	assert.Equal(t, "indexed", cfg.Form)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := map[string][2]string{
		"output":     {EnvOutput, "xml"},
		"form":       {EnvForm, "csv"},
		"log format": {EnvLogFormat, "logfmt"},
		"timeout":    {EnvTimeout, "soon"},
		"negative":   {EnvTimeout, "-1s"},
	}
	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			t.Setenv(kv[0], kv[1])

			_, err := Load(Sources{})
			assert.Error(t, err)
		})
	}
}
