package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flag is the single source of truth for a CLI flag.
// Commands reference flags by registry key rather than hard-coding names,
// shorthands, defaults, and descriptions inline, so the same logical flag
// cannot drift between "oasis serve" and the standalone oasisapi binary.
type Flag struct {
	// Name is the long flag name (e.g. "listen").
	Name string

	// Shorthand is the one-letter short flag (e.g. "l"). Empty for no shorthand.
	Shorthand string

	// ViperKey is the dotted config key this flag maps to (e.g. "api.listen").
	ViperKey string

	// Description is the help text shown in --help output.
	Description string
}

// FlagSet is a mapping of registry keys to flag definitions.
type FlagSet map[string]Flag

// Flag registry keys.
const (
	FlagAPIListen      = "api-listen"
	FlagDefaultName    = "default-name"
	FlagMinCount       = "min-count"
	FlagMaxCount       = "max-count"
	FlagGlyphs         = "glyphs"
	FlagMCP            = "mcp"
	FlagEventsProvider = "events-provider"
	FlagKafkaBrokers   = "kafka-brokers"
	FlagKafkaTopic     = "kafka-topic"
	FlagAPITarget      = "api-target"
	FlagLogFile        = "log-file"
)

// Flags is the registry shared by every oasis command.
var Flags = FlagSet{
	FlagAPIListen:      {Name: "listen", Shorthand: "l", ViperKey: "api.listen", Description: "Address for API server to listen on"},
	FlagDefaultName:    {Name: "default-name", ViperKey: "greeting.default_name", Description: "Name used when a request has no name"},
	FlagMinCount:       {Name: "min-count", ViperKey: "greeting.min_count", Description: "Smallest number of items in list responses"},
	FlagMaxCount:       {Name: "max-count", ViperKey: "greeting.max_count", Description: "Largest number of items in list responses"},
	FlagGlyphs:         {Name: "glyphs", ViperKey: "emoji.glyphs", Description: "Candidate emoji glyphs (comma-separated)"},
	FlagMCP:            {Name: "mcp", ViperKey: "mcp.enabled", Description: "Serve MCP tools under /mcp"},
	FlagEventsProvider: {Name: "events-provider", ViperKey: "events.provider", Description: "Served-event publisher (nop, kafka)"},
	FlagKafkaBrokers:   {Name: "kafka-brokers", ViperKey: "events.brokers", Description: "Kafka broker addresses (comma-separated)"},
	FlagKafkaTopic:     {Name: "kafka-topic", ViperKey: "events.topic", Description: "Kafka topic for served events"},
	FlagAPITarget:      {Name: "api-target", Shorthand: "a", ViperKey: "client.api_target", Description: "oasis API server URL"},
	FlagLogFile:        {Name: "log-file", ViperKey: "log.file", Description: "Also write JSON logs to this file"},
}

// AddStringFlag registers a string flag on cmd from the given FlagSet.
func AddStringFlag(cmd *cobra.Command, fs FlagSet, key string, target *string) {
	def, ok := fs[key]
	if !ok {
		return
	}
	cmd.Flags().StringVarP(target, def.Name, def.Shorthand, defaults().GetString(def.ViperKey), def.Description)
}

// AddIntFlag registers an int flag on cmd from the given FlagSet.
func AddIntFlag(cmd *cobra.Command, fs FlagSet, key string, target *int) {
	def, ok := fs[key]
	if !ok {
		return
	}
	cmd.Flags().IntVarP(target, def.Name, def.Shorthand, defaults().GetInt(def.ViperKey), def.Description)
}

// AddBoolFlag registers a bool flag on cmd from the given FlagSet.
func AddBoolFlag(cmd *cobra.Command, fs FlagSet, key string, target *bool) {
	def, ok := fs[key]
	if !ok {
		return
	}
	cmd.Flags().BoolVarP(target, def.Name, def.Shorthand, defaults().GetBool(def.ViperKey), def.Description)
}

// AddStringSliceFlag registers a comma-separated string slice flag on cmd.
func AddStringSliceFlag(cmd *cobra.Command, fs FlagSet, key string, target *[]string) {
	def, ok := fs[key]
	if !ok {
		return
	}
	cmd.Flags().StringSliceVarP(target, def.Name, def.Shorthand, defaults().GetStringSlice(def.ViperKey), def.Description)
}

// BindRegisteredFlags binds already-registered flags to viper using definitions
// from the given FlagSet. Call this in PreRunE after InitViper to connect flags
// to the viper precedence chain (flag > env > config file > default).
func BindRegisteredFlags(v *viper.Viper, cmd *cobra.Command, fs FlagSet, registryKeys []string) {
	for _, registryKey := range registryKeys {
		def, ok := fs[registryKey]
		if !ok {
			continue
		}

		f := cmd.Flags().Lookup(def.Name)
		if f == nil {
			continue
		}

		_ = v.BindPFlag(def.ViperKey, f)
	}
}

// defaults returns a viper instance holding only NewDefaultConfig values.
func defaults() *viper.Viper {
	v := viper.New()
	setViperDefaults(v)
	return v
}
