// Package config loads and persists the oasis configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/papercomputeco/oasis/pkg/dotdir"
)

const (
	configFile = "config.toml"

	// v0 is the alpha version of the config
	v0 = 0

	// CurrentV is the currently supported version, points to v0
	CurrentV = v0
)

// orderedKeys lists every config key in TOML section order.
var orderedKeys = []string{
	"api.listen",
	"greeting.default_name",
	"greeting.min_count",
	"greeting.max_count",
	"emoji.glyphs",
	"mcp.enabled",
	"events.provider",
	"events.brokers",
	"events.topic",
	"client.api_target",
	"log.file",
}

type Configer struct {
	ddm        *dotdir.Manager
	targetPath string
}

// NewConfiger resolves the config.toml location. When no .oasis/ directory
// exists and no override is given, the target stays empty: LoadConfig then
// returns defaults and SaveConfig creates ~/.oasis/.
func NewConfiger(override string) (*Configer, error) {
	cfger := &Configer{ddm: dotdir.NewManager()}

	target, err := cfger.ddm.Target(override)
	if err != nil {
		return nil, err
	}
	if target == "" {
		return cfger, nil
	}

	path := filepath.Join(target, configFile)
	if _, err := os.Stat(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfger.targetPath = path

	return cfger, nil
}

// ValidConfigKeys returns all supported configuration key names in section order.
func ValidConfigKeys() []string {
	keys := make([]string, len(orderedKeys))
	copy(keys, orderedKeys)
	return keys
}

// IsValidConfigKey returns true if the given key is a supported configuration key.
func IsValidConfigKey(key string) bool {
	_, ok := configKeys[key]
	return ok
}

func (c *Configer) GetTarget() string {
	return c.targetPath
}

// LoadConfig loads config.toml from the target directory. A missing file
// yields NewDefaultConfig(); fields absent from the file are filled from
// the defaults.
func (c *Configer) LoadConfig() (*Config, error) {
	if c.targetPath == "" {
		return NewDefaultConfig(), nil
	}

	data, err := os.ReadFile(c.targetPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewDefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := ParseConfigTOML(data)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills zero-value fields in cfg with values from NewDefaultConfig().
// The count range is treated as one unit: it is defaulted only when both
// bounds are unset.
func applyDefaults(cfg *Config) {
	defaults := NewDefaultConfig()

	if cfg.API.Listen == "" {
		cfg.API.Listen = defaults.API.Listen
	}

	if cfg.Greeting.DefaultName == "" {
		cfg.Greeting.DefaultName = defaults.Greeting.DefaultName
	}
	if cfg.Greeting.MinCount == 0 && cfg.Greeting.MaxCount == 0 {
		cfg.Greeting.MinCount = defaults.Greeting.MinCount
		cfg.Greeting.MaxCount = defaults.Greeting.MaxCount
	}

	if len(cfg.Emoji.Glyphs) == 0 {
		cfg.Emoji.Glyphs = defaults.Emoji.Glyphs
	}

	if cfg.Events.Provider == "" {
		cfg.Events.Provider = defaults.Events.Provider
	}
	if cfg.Events.Topic == "" {
		cfg.Events.Topic = defaults.Events.Topic
	}

	if cfg.Client.APITarget == "" {
		cfg.Client.APITarget = defaults.Client.APITarget
	}
}

// SaveConfig persists the configuration to config.toml, creating ~/.oasis/
// when no directory has been resolved yet.
func (c *Configer) SaveConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("cannot save nil config")
	}

	if c.targetPath == "" {
		dir, err := c.ddm.Ensure("")
		if err != nil {
			return err
		}
		c.targetPath = filepath.Join(dir, configFile)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(c.targetPath, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// SetConfigValue loads the config, sets the given key to the given value, and saves it.
// Returns an error if the key is not a valid config key.
func (c *Configer) SetConfigValue(key string, value string) error {
	info, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unknown config key: %q", key)
	}

	cfg, err := c.LoadConfig()
	if err != nil {
		return err
	}

	if err := info.set(cfg, value); err != nil {
		return err
	}

	return c.SaveConfig(cfg)
}

// GetConfigValue loads the config and returns the string representation of the given key.
// Returns an error if the key is not a valid config key.
func (c *Configer) GetConfigValue(key string) (string, error) {
	info, ok := configKeys[key]
	if !ok {
		return "", fmt.Errorf("unknown config key: %q", key)
	}

	cfg, err := c.LoadConfig()
	if err != nil {
		return "", err
	}

	return info.get(cfg), nil
}

// ParseConfigTOML parses raw TOML bytes into a Config.
// Returns an error if the version field is present and not equal to CurrentV.
func ParseConfigTOML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config TOML: %w", err)
	}

	if cfg.Version != 0 && cfg.Version != CurrentV {
		return nil, fmt.Errorf("unsupported config version %d (expected %d)", cfg.Version, CurrentV)
	}

	return cfg, nil
}
