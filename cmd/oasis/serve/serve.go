// Package servecmder provides the serve command that runs the oasis API server.
package servecmder

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/oasis/api"
	"github.com/papercomputeco/oasis/pkg/config"
	"github.com/papercomputeco/oasis/pkg/eventstream"
	eventstreamutils "github.com/papercomputeco/oasis/pkg/eventstream/utils"
	"github.com/papercomputeco/oasis/pkg/eventstream/worker"
	"github.com/papercomputeco/oasis/pkg/greeter"
	"github.com/papercomputeco/oasis/pkg/logger"
)

// serveFlags lists the registry keys the serve command binds to viper.
var serveFlags = []string{
	config.FlagAPIListen,
	config.FlagDefaultName,
	config.FlagMinCount,
	config.FlagMaxCount,
	config.FlagGlyphs,
	config.FlagMCP,
	config.FlagEventsProvider,
	config.FlagKafkaBrokers,
	config.FlagKafkaTopic,
	config.FlagLogFile,
}

type serveCommander struct {
	// flag targets; effective values are read back from viper into cfg
	listen         string
	defaultName    string
	minCount       int
	maxCount       int
	glyphs         []string
	enableMCP      bool
	eventsProvider string
	kafkaBrokers   []string
	kafkaTopic     string
	logFile        string

	cfg    *config.Config
	debug  bool
	out    io.Writer
	logger *slog.Logger
}

const serveLongDesc string = `Run the oasis API server.

The server answers:
  GET /greeting?name=    a single greeting
  GET /greetings?name=   two to five numbered greetings
  GET /emoji             one emoji as plain text
  GET /emojis            two to five emoji

Settings come from flags, OASIS_* environment variables, and
.oasis/config.toml, in that order of precedence.

Examples:
  oasis serve
  oasis serve --listen :9000 --default-name Friend
  oasis serve --mcp
  oasis serve --events-provider kafka --kafka-brokers localhost:9092`

const serveShortDesc string = "Run the oasis API server"

func NewServeCmd() *cobra.Command {
	return newServeCmd(&serveCommander{})
}

func newServeCmd(cmder *serveCommander) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")
			v, err := config.InitViper(configDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			config.BindRegisteredFlags(v, cmd, config.Flags, serveFlags)
			cmder.cfg = config.FromViper(v)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %w", err)
			}
			cmder.out = cmd.OutOrStdout()

			return cmder.run()
		},
	}

	config.AddStringFlag(cmd, config.Flags, config.FlagAPIListen, &cmder.listen)
	config.AddStringFlag(cmd, config.Flags, config.FlagDefaultName, &cmder.defaultName)
	config.AddIntFlag(cmd, config.Flags, config.FlagMinCount, &cmder.minCount)
	config.AddIntFlag(cmd, config.Flags, config.FlagMaxCount, &cmder.maxCount)
	config.AddStringSliceFlag(cmd, config.Flags, config.FlagGlyphs, &cmder.glyphs)
	config.AddBoolFlag(cmd, config.Flags, config.FlagMCP, &cmder.enableMCP)
	config.AddStringFlag(cmd, config.Flags, config.FlagEventsProvider, &cmder.eventsProvider)
	config.AddStringSliceFlag(cmd, config.Flags, config.FlagKafkaBrokers, &cmder.kafkaBrokers)
	config.AddStringFlag(cmd, config.Flags, config.FlagKafkaTopic, &cmder.kafkaTopic)
	config.AddStringFlag(cmd, config.Flags, config.FlagLogFile, &cmder.logFile)

	return cmd
}

func (c *serveCommander) run() error {
	closeLog, err := c.initLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	server, publisher, err := c.newServer()
	if err != nil {
		return err
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			c.logger.Warn("closing event publisher", "error", err)
		}
	}()

	// Channel to capture errors from the server goroutine
	errChan := make(chan error, 1)

	go func() {
		if err := server.Run(); err != nil {
			errChan <- fmt.Errorf("API server error: %w", err)
		}
	}()

	// Wait for interrupt signal or error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		c.logger.Info("received signal, shutting down", "signal", sig.String())
		return server.Shutdown()
	}
}

// initLogger builds the pretty terminal logger and, when log.file is set,
// tees records as JSON into that file.
func (c *serveCommander) initLogger() (func(), error) {
	out := c.out
	if out == nil {
		out = os.Stdout
	}
	pretty := logger.New(
		logger.WithDebug(c.debug),
		logger.WithPretty(true),
		logger.WithWriter(out),
	)

	if c.cfg.Log.File == "" {
		c.logger = pretty
		return func() {}, nil
	}

	f, err := os.OpenFile(c.cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	file := logger.New(
		logger.WithDebug(c.debug),
		logger.WithJSON(true),
		logger.WithWriter(f),
	)
	c.logger = logger.Multi(pretty, file)
	return func() { _ = f.Close() }, nil
}

// newServer wires the greeter and event publisher into an API server.
func (c *serveCommander) newServer() (*api.Server, eventstream.Publisher, error) {
	g, err := greeter.New(c.cfg.GreeterOptions()...)
	if err != nil {
		return nil, nil, fmt.Errorf("configuring greeter: %w", err)
	}

	base, err := eventstreamutils.NewPublisher(&eventstreamutils.NewPublisherOpts{
		ProviderType: c.cfg.Events.Provider,
		Brokers:      c.cfg.Events.Brokers,
		Topic:        c.cfg.Events.Topic,
		Logger:       c.logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating event publisher: %w", err)
	}

	publisher, err := worker.NewPool(&worker.Config{
		Publisher: base,
		Logger:    c.logger,
	})
	if err != nil {
		_ = base.Close()
		return nil, nil, fmt.Errorf("creating event worker pool: %w", err)
	}
	c.logger.Info("using event publisher", "provider", c.cfg.Events.Provider)

	server, err := api.NewServer(api.Config{
		ListenAddr: c.cfg.API.Listen,
		EnableMCP:  c.cfg.MCP.Enabled,
		Publisher:  publisher,
	}, g, c.logger)
	if err != nil {
		_ = publisher.Close()
		return nil, nil, fmt.Errorf("creating API server: %w", err)
	}

	return server, publisher, nil
}
