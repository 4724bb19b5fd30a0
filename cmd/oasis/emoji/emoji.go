// Package emojicmder provides the emoji command, a client for the emoji
// endpoints of a running oasis API server.
package emojicmder

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/oasis/pkg/client"
	"github.com/papercomputeco/oasis/pkg/config"
)

type emojiCommander struct {
	many      bool
	apiTarget string

	out io.Writer
}

const emojiLongDesc string = `Ask a running oasis API server for an emoji.

Prints a single emoji, or with --many a randomly sized, space separated
list of emoji. Output is unstyled so it can be piped.

Examples:
  oasis emoji
  oasis emoji --many
  oasis emoji --api-target http://localhost:9000`

const emojiShortDesc string = "Get an emoji from the API server"

func NewEmojiCmd() *cobra.Command {
	cmder := &emojiCommander{}

	cmd := &cobra.Command{
		Use:   "emoji",
		Short: emojiShortDesc,
		Long:  emojiLongDesc,
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")
			v, err := config.InitViper(configDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			config.BindRegisteredFlags(v, cmd, config.Flags, []string{config.FlagAPITarget})
			cmder.apiTarget = v.GetString(config.Flags[config.FlagAPITarget].ViperKey)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmder.out = cmd.OutOrStdout()
			return cmder.run(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&cmder.many, "many", "m", false, "Request a list of emoji")
	config.AddStringFlag(cmd, config.Flags, config.FlagAPITarget, &cmder.apiTarget)

	return cmd
}

func (c *emojiCommander) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cl, err := client.New(c.apiTarget, nil)
	if err != nil {
		return err
	}

	if !c.many {
		emoji, err := cl.Emoji(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, emoji)
		return nil
	}

	emojis, err := cl.Emojis(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, strings.Join(emojis, " "))
	return nil
}
