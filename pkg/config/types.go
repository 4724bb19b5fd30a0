package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Config represents the persistent oasis configuration stored as config.toml
// in the .oasis/ directory. The TOML layout uses sections for logical grouping.
type Config struct {
	Version  int            `toml:"version"`
	API      APIConfig      `toml:"api"`
	Greeting GreetingConfig `toml:"greeting"`
	Emoji    EmojiConfig    `toml:"emoji"`
	MCP      MCPConfig      `toml:"mcp"`
	Events   EventsConfig   `toml:"events"`
	Client   ClientConfig   `toml:"client"`
	Log      LogConfig      `toml:"log"`
}

// APIConfig holds API server settings.
type APIConfig struct {
	Listen string `toml:"listen,omitempty"`
}

// GreetingConfig holds the name default and the inclusive size range for
// list responses (greetings and emojis).
type GreetingConfig struct {
	DefaultName string `toml:"default_name,omitempty"`
	MinCount    int    `toml:"min_count,omitempty"`
	MaxCount    int    `toml:"max_count,omitempty"`
}

// EmojiConfig holds the candidate glyph set.
type EmojiConfig struct {
	Glyphs []string `toml:"glyphs,omitempty"`
}

// MCPConfig toggles the MCP endpoint on the API server.
type MCPConfig struct {
	Enabled bool `toml:"enabled,omitempty"`
}

// EventsConfig selects the served-event publisher.
type EventsConfig struct {
	Provider string   `toml:"provider,omitempty"`
	Brokers  []string `toml:"brokers,omitempty"`
	Topic    string   `toml:"topic,omitempty"`
}

// ClientConfig holds settings for CLI commands that talk to a running
// server (oasis greet, oasis emoji). Values are full URLs.
type ClientConfig struct {
	APITarget string `toml:"api_target,omitempty"`
}

// LogConfig holds logging settings for the serve command.
type LogConfig struct {
	// File, when set, receives JSON logs in addition to stdout.
	File string `toml:"file,omitempty"`
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

// configKeys is the authoritative map of all supported config keys.
// Keys use dotted notation matching the TOML section structure.
var configKeys = map[string]configKeyInfo{
	"api.listen": {
		get: func(c *Config) string { return c.API.Listen },
		set: func(c *Config, v string) error { c.API.Listen = v; return nil },
	},
	"greeting.default_name": {
		get: func(c *Config) string { return c.Greeting.DefaultName },
		set: func(c *Config, v string) error { c.Greeting.DefaultName = v; return nil },
	},
	"greeting.min_count": {
		get: func(c *Config) string { return strconv.Itoa(c.Greeting.MinCount) },
		set: func(c *Config, v string) error { return setInt(&c.Greeting.MinCount, "greeting.min_count", v) },
	},
	"greeting.max_count": {
		get: func(c *Config) string { return strconv.Itoa(c.Greeting.MaxCount) },
		set: func(c *Config, v string) error { return setInt(&c.Greeting.MaxCount, "greeting.max_count", v) },
	},
	"emoji.glyphs": {
		get: func(c *Config) string { return strings.Join(c.Emoji.Glyphs, ",") },
		set: func(c *Config, v string) error { c.Emoji.Glyphs = splitList(v); return nil },
	},
	"mcp.enabled": {
		get: func(c *Config) string { return strconv.FormatBool(c.MCP.Enabled) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid value for mcp.enabled: %w", err)
			}
			c.MCP.Enabled = b
			return nil
		},
	},
	"events.provider": {
		get: func(c *Config) string { return c.Events.Provider },
		set: func(c *Config, v string) error { c.Events.Provider = v; return nil },
	},
	"events.brokers": {
		get: func(c *Config) string { return strings.Join(c.Events.Brokers, ",") },
		set: func(c *Config, v string) error { c.Events.Brokers = splitList(v); return nil },
	},
	"events.topic": {
		get: func(c *Config) string { return c.Events.Topic },
		set: func(c *Config, v string) error { c.Events.Topic = v; return nil },
	},
	"client.api_target": {
		get: func(c *Config) string { return c.Client.APITarget },
		set: func(c *Config, v string) error { c.Client.APITarget = v; return nil },
	},
	"log.file": {
		get: func(c *Config) string { return c.Log.File },
		set: func(c *Config, v string) error { c.Log.File = v; return nil },
	},
}

func setInt(dst *int, key, v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*dst = n
	return nil
}

// splitList parses a comma-separated list, dropping blank entries.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
