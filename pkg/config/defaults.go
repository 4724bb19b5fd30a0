package config

import "github.com/papercomputeco/oasis/pkg/greeter"

const (
	defaultAPIListen       = ":8080"
	defaultClientAPITarget = "http://localhost:8080"

	defaultEventsProvider = "nop"
	defaultEventsTopic    = "oasis.served"
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	glyphs := make([]string, len(greeter.DefaultGlyphs))
	copy(glyphs, greeter.DefaultGlyphs)

	return &Config{
		Version: CurrentV,
		API: APIConfig{
			Listen: defaultAPIListen,
		},
		Greeting: GreetingConfig{
			DefaultName: greeter.DefaultName,
			MinCount:    greeter.DefaultMinCount,
			MaxCount:    greeter.DefaultMaxCount,
		},
		Emoji: EmojiConfig{
			Glyphs: glyphs,
		},
		Events: EventsConfig{
			Provider: defaultEventsProvider,
			Topic:    defaultEventsTopic,
		},
		Client: ClientConfig{
			APITarget: defaultClientAPITarget,
		},
	}
}

// GreeterOptions translates the greeting and emoji sections into greeter options.
func (c *Config) GreeterOptions() []greeter.Option {
	return []greeter.Option{
		greeter.WithDefaultName(c.Greeting.DefaultName),
		greeter.WithCountRange(c.Greeting.MinCount, c.Greeting.MaxCount),
		greeter.WithGlyphs(c.Emoji.Glyphs...),
	}
}
