package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func defaults() *Config {
	var c Config
	c.LoadDefaults()
	return &c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "http://127.0.0.1:3333", c.ServerURL)
	assert.Equal(t, "data", c.DataDir)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_NoArgsGivesDefaults(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *Config
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "https://api.gobarber.test", "-d", "/tmp/gb", "-t", "3", "-l", "debug"},
			expected: &Config{
				ServerURL: "https://api.gobarber.test", DataDir: "/tmp/gb",
				RequestTimeout: 3 * time.Second, LogLevel: "debug",
			},
		},
		{
			name: "unknown flags are ignored",
			args: []string{"-c", "x.json", "-a", "http://localhost:4000", "-z"},
			expected: &Config{
				ServerURL: "http://localhost:4000", DataDir: "data",
				RequestTimeout: 10 * time.Second, LogLevel: "info",
			},
		},
		{name: "bad timeout", args: []string{"-t", "abc"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

func TestParseJSON(t *testing.T) {
	t.Run("overlays present keys only", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"server_url":      "http://www.example:9000",
			"request_timeout": "30s",
		})

		cfg := defaults()
		require.NoError(t, parseJSON(cfg, []string{"-config", path}))

		assert.Equal(t, "http://www.example:9000", cfg.ServerURL)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "data", cfg.DataDir)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("no config flag leaves cfg alone", func(t *testing.T) {
		cfg := &Config{ServerURL: "http://defaults:1234"}
		require.NoError(t, parseJSON(cfg, []string{"-a", "http://x"}))
		assert.Equal(t, "http://defaults:1234", cfg.ServerURL)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		err := parseJSON(defaults(), []string{"-c", bad})
		require.ErrorContains(t, err, "parse config")
	})

	t.Run("missing file", func(t *testing.T) {
		err := parseJSON(defaults(), []string{"-c", filepath.Join(t.TempDir(), "nope.json")})
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"server_url": "http://from-json:1",
		"data_dir":   "/json/dir",
		"log_level":  "warn",
	})

	cfg, err := LoadConfig([]string{"-c", path, "-a", "http://from-flag:2"})
	require.NoError(t, err)

	assert.Equal(t, "http://from-flag:2", cfg.ServerURL)
	assert.Equal(t, "/json/dir", cfg.DataDir)
	assert.Equal(t, "warn", cfg.LogLevel)
}
