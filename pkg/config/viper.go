package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/papercomputeco/oasis/pkg/dotdir"
)

// EnvPrefix prefixes every environment variable viper reads
// (OASIS_API_LISTEN, OASIS_GREETING_DEFAULT_NAME, ...).
const EnvPrefix = "OASIS"

// InitViper creates and returns a configured *viper.Viper.
// It sets defaults from NewDefaultConfig(), reads the config.toml file
// (if found via dotdir resolution), and binds environment variables
// with the OASIS_ prefix.
//
// Config precedence (highest to lowest):
//  1. CLI flags (once bound via BindRegisteredFlags)
//  2. Environment variables
//  3. config.toml file values
//  4. Defaults from NewDefaultConfig()
func InitViper(configDir string) (*viper.Viper, error) {
	v := viper.New()

	setViperDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("toml")

	target, err := dotdir.NewManager().Target(configDir)
	if err != nil {
		return nil, fmt.Errorf("resolving config dir: %w", err)
	}
	if target != "" {
		v.AddConfigPath(target)
	}

	if err := v.ReadInConfig(); err != nil {
		// Config file not found errors are fine, defaults will apply.
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v, nil
}

// setViperDefaults registers defaults from NewDefaultConfig() into viper
// using dotted-key notation. This keeps defaults.go as the single source of truth.
func setViperDefaults(v *viper.Viper) {
	d := NewDefaultConfig()

	v.SetDefault("version", d.Version)

	v.SetDefault("api.listen", d.API.Listen)

	v.SetDefault("greeting.default_name", d.Greeting.DefaultName)
	v.SetDefault("greeting.min_count", d.Greeting.MinCount)
	v.SetDefault("greeting.max_count", d.Greeting.MaxCount)

	v.SetDefault("emoji.glyphs", d.Emoji.Glyphs)

	v.SetDefault("mcp.enabled", d.MCP.Enabled)

	v.SetDefault("events.provider", d.Events.Provider)
	v.SetDefault("events.brokers", d.Events.Brokers)
	v.SetDefault("events.topic", d.Events.Topic)

	v.SetDefault("client.api_target", d.Client.APITarget)

	v.SetDefault("log.file", d.Log.File)
}

// FromViper materializes the effective configuration after flags, env,
// file and defaults have been merged.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		Version: v.GetInt("version"),
		API: APIConfig{
			Listen: v.GetString("api.listen"),
		},
		Greeting: GreetingConfig{
			DefaultName: v.GetString("greeting.default_name"),
			MinCount:    v.GetInt("greeting.min_count"),
			MaxCount:    v.GetInt("greeting.max_count"),
		},
		Emoji: EmojiConfig{
			Glyphs: v.GetStringSlice("emoji.glyphs"),
		},
		MCP: MCPConfig{
			Enabled: v.GetBool("mcp.enabled"),
		},
		Events: EventsConfig{
			Provider: v.GetString("events.provider"),
			Brokers:  v.GetStringSlice("events.brokers"),
			Topic:    v.GetString("events.topic"),
		},
		Client: ClientConfig{
			APITarget: v.GetString("client.api_target"),
		},
		Log: LogConfig{
			File: v.GetString("log.file"),
		},
	}
}
