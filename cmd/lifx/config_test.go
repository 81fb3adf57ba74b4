package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.DiscoverWait)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
broadcast: "192.168.1.255:56700"
source: 12345
discover_wait: 5s
log_level: debug
trace: true
`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.255:56700", cfg.Broadcast)
	assert.Equal(t, uint32(12345), cfg.Source)
	assert.Equal(t, 5*time.Second, cfg.DiscoverWait)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Trace)
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("broadcast: [unclosed"), 0o600))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestMakeColor(t *testing.T) {
	color, err := makeColor(360, 100, 100, 3500)
	require.NoError(t, err)
	assert.Equal(t, uint16(65535), color.Hue)
	assert.Equal(t, uint16(65535), color.Saturation)
	assert.Equal(t, uint16(65535), color.Brightness)
	assert.Equal(t, uint16(3500), color.Kelvin)

	color, err = makeColor(180, 50, 0, 9000)
	require.NoError(t, err)
	assert.Equal(t, uint16(32767), color.Hue)
	assert.Equal(t, uint16(0), color.Brightness)

	_, err = makeColor(400, 0, 0, 3500)
	assert.Error(t, err)
	_, err = makeColor(0, 101, 0, 3500)
	assert.Error(t, err)
	_, err = makeColor(0, 0, -1, 3500)
	assert.Error(t, err)
}
