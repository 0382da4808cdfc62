package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.UI.Section)
	assert.Nil(t, cfg.Clipboard.AckMs)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfigDecodesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[ui]
section = "forms"

[highlight]
engine = "chroma"

[clipboard]
ack-ms = 1500

[fetch]
base-url = "http://localhost:9999"
timeout-ms = 250

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.UI.Section)
	assert.Equal(t, "forms", *cfg.UI.Section)
	assert.Equal(t, "chroma", *cfg.Highlight.Engine)
	assert.Equal(t, 1500, *cfg.Clipboard.AckMs)
	assert.Equal(t, "http://localhost:9999", *cfg.Fetch.BaseURL)
	assert.Equal(t, 250, *cfg.Fetch.TimeoutMs)
	assert.Equal(t, "debug", *cfg.Log.Level)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"engine":  "[highlight]\nengine = \"prism\"\n",
		"ack":     "[clipboard]\nack-ms = 0\n",
		"timeout": "[fetch]\ntimeout-ms = -1\n",
		"url":     "[fetch]\nbase-url = \"not a url\"\n",
		"syntax":  "[ui\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestDefaultPathsHonourXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	assert.Equal(t, filepath.Join("/tmp/cfg", "sidebyside", "config.toml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/tmp/data", "sidebyside", "sidebyside.db"), DefaultDBPath())
	assert.Equal(t, filepath.Join("/tmp/data", "sidebyside", "sidebyside.log"), DefaultLogPath())
}

func TestRelativeXDGIsIgnored(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "relative/cfg")
	t.Setenv("XDG_DATA_HOME", "")
	assert.Equal(t, filepath.Join(home, ".config"), XDGConfigHome())
	assert.Equal(t, filepath.Join(home, ".local", "share"), XDGDataHome())
}
