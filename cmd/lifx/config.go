package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the file configuration for the lifx command, loaded from
// --config or, when present, ~/.config/lifx/config.yaml.
type Config struct {
	// Broadcast is the discovery broadcast address.
	Broadcast string `yaml:"broadcast"`

	// Port is the local UDP port to bind; zero picks an ephemeral one.
	Port int `yaml:"port"`

	// Source overrides the randomly chosen client identifier. Useful
	// when correlating traces across runs.
	Source uint32 `yaml:"source"`

	// DiscoverWait is how long commands wait for devices to answer a
	// discovery broadcast.
	DiscoverWait time.Duration `yaml:"discover_wait"`

	LogLevel string `yaml:"log_level"`
	Trace    bool   `yaml:"trace"`

	// TraceFile records every packet to this file in CBOR form. The
	// recording can be inspected later with "lifx trace".
	TraceFile string `yaml:"trace_file"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		DiscoverWait: 2 * time.Second,
		LogLevel:     "info",
	}
}

// LoadConfig reads the configuration file at path, falling back to the
// per-user default location and then to DefaultConfig. A missing file
// is only an error when a path was given explicitly.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".config", "lifx", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.DiscoverWait <= 0 {
		cfg.DiscoverWait = DefaultConfig().DiscoverWait
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultConfig().LogLevel
	}
	return cfg, nil
}
