// Package configcmder provides the config command for managing persistent
// oasis configuration stored in the .oasis/ directory.
package configcmder

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/oasis/pkg/config"
)

const configLongDesc string = `Manage persistent oasis configuration.

Configuration is stored as config.toml in the .oasis/ directory and provides
default values for command flags. CLI flags and OASIS_* environment variables
take precedence over config file values.

Keys use dotted notation matching the TOML section structure:
  api.listen,
  greeting.default_name, greeting.min_count, greeting.max_count,
  emoji.glyphs, mcp.enabled,
  events.provider, events.brokers, events.topic,
  client.api_target, log.file

Use subcommands to get, set, or list configuration values:
  oasis config set <key> <value>    Set a configuration value
  oasis config get <key>            Get a configuration value
  oasis config list                 List all configuration values

Examples:
  oasis config set greeting.default_name Friend
  oasis config set emoji.glyphs "👋,🙏"
  oasis config get api.listen
  oasis config list`

const configShortDesc string = "Manage persistent oasis configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}

func validateKey(key string) error {
	if !config.IsValidConfigKey(key) {
		return fmt.Errorf("unknown config key: %q\n\nValid keys: %s",
			key, strings.Join(config.ValidConfigKeys(), ", "))
	}
	return nil
}

func completeKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return config.ValidConfigKeys(), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}
