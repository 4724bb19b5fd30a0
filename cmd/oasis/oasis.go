// Package oasiscmder
package oasiscmder

import (
	"github.com/spf13/cobra"

	configcmder "github.com/papercomputeco/oasis/cmd/oasis/config"
	emojicmder "github.com/papercomputeco/oasis/cmd/oasis/emoji"
	greetcmder "github.com/papercomputeco/oasis/cmd/oasis/greet"
	servecmder "github.com/papercomputeco/oasis/cmd/oasis/serve"
	versioncmder "github.com/papercomputeco/oasis/cmd/version"
)

const oasisLongDesc string = `Oasis serves greetings and emoji over HTTP.

Run the server and talk to it using:
  oasis serve          Run the API server
  oasis greet [name]   Ask a running server for a greeting
  oasis emoji          Ask a running server for an emoji`

const oasisShortDesc string = "Oasis - Greetings and Emoji API"

func NewOasisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oasis",
		Short: oasisShortDesc,
		Long:  oasisLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Override the .oasis/ config directory")

	// Add subcommands
	cmd.AddCommand(servecmder.NewServeCmd())
	cmd.AddCommand(greetcmder.NewGreetCmd())
	cmd.AddCommand(emojicmder.NewEmojiCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
