// Package greetcmder provides the greet command, a client for the greeting
// endpoints of a running oasis API server.
package greetcmder

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/oasis/pkg/cliui"
	"github.com/papercomputeco/oasis/pkg/client"
	"github.com/papercomputeco/oasis/pkg/config"
	"github.com/papercomputeco/oasis/pkg/greeter"
)

type greetCommander struct {
	name      string
	many      bool
	apiTarget string

	out io.Writer
}

const greetLongDesc string = `Ask a running oasis API server for a greeting.

Without a name the server greets a stranger. Use --many to request a
randomly sized list of numbered greetings instead of a single one.

Examples:
  oasis greet
  oasis greet Ada
  oasis greet "Grace Hopper" --many
  oasis greet Ada --api-target http://localhost:9000`

const greetShortDesc string = "Get a greeting from the API server"

func NewGreetCmd() *cobra.Command {
	cmder := &greetCommander{}

	cmd := &cobra.Command{
		Use:   "greet [name]",
		Short: greetShortDesc,
		Long:  greetLongDesc,
		Args:  cobra.MaximumNArgs(1),
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
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cmder.name = args[0]
			}
			cmder.out = cmd.OutOrStdout()
			return cmder.run(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&cmder.many, "many", "m", false, "Request a list of greetings")
	config.AddStringFlag(cmd, config.Flags, config.FlagAPITarget, &cmder.apiTarget)

	return cmd
}

func (c *greetCommander) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cl, err := client.New(c.apiTarget, nil)
	if err != nil {
		return err
	}

	if !c.many {
		greeting, err := cl.Greeting(ctx, c.name)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "\n  %s %s\n\n", cliui.SuccessMark, cliui.ValueStyle.Render(greeting.Message))
		return nil
	}

	greetings, err := cl.Greetings(ctx, c.name)
	if err != nil {
		return err
	}
	c.printGreetings(greetings)
	return nil
}

func (c *greetCommander) printGreetings(greetings []greeter.Greeting) {
	fmt.Fprintf(c.out, "\n%s %s\n\n",
		cliui.HeaderStyle.Render("Greetings:"),
		cliui.DimStyle.Render(fmt.Sprintf("(%d)", len(greetings))),
	)
	for i, g := range greetings {
		fmt.Fprintf(c.out, "  %s  %s\n",
			cliui.IndexStyle.Render(fmt.Sprintf("#%d", i+1)),
			cliui.ValueStyle.Render(g.Message),
		)
	}
	fmt.Fprintln(c.out)
}
