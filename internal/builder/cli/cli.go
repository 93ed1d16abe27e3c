package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/glentner/1trc/internal/builder/cli/commands"
	"github.com/glentner/1trc/internal/builder/cli/commands/onetrc"
	clierrors "github.com/glentner/1trc/internal/builder/cli/errors"
	"github.com/glentner/1trc/internal/builder/cli/options"
	"github.com/glentner/1trc/internal/builder/cli/render/prompt"
	"github.com/glentner/1trc/internal/builder/logger/handlers"
)

// Cli type is used to describe 1trc CLI.
type Cli struct {
	opts *options.CliOptions
	cmd  *cobra.Command
}

func NewCli(opts *options.CliOptions) *Cli {
	return &Cli{
		opts: opts,
		cmd:  onetrc.NewOneTRCCommand(opts),
	}
}

func (cli *Cli) MustSetup() {
	err := cli.handleAppFlags()
	if err != nil {
		_, _ = fmt.Fprintln(cli.cmd.OutOrStdout(), err.Error())

		os.Exit(1)
	}

	err = cli.initialize()
	if err != nil {
		_, _ = fmt.Fprintln(cli.cmd.OutOrStdout(), err.Error())

		os.Exit(1)
	}
}

func (cli *Cli) Run(ctx context.Context) error {
	var usageErr *clierrors.UsageError

	err := cli.cmd.ExecuteContext(ctx)
	if err != nil && errors.As(err, &usageErr) {
		_, _ = fmt.Fprintln(cli.cmd.OutOrStdout(), err.Error())

		os.Exit(1)
	}

	return err //nolint:wrapcheck
}

func (cli *Cli) Options() *options.CliOptions {
	return cli.opts
}

// handleAppFlags parses flags of root command before executing it.
func (cli *Cli) handleAppFlags() error {
	cmd := cli.cmd

	flags := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	flags.SetInterspersed(false)

	flags.AddFlagSet(cmd.Flags())
	flags.AddFlagSet(cmd.PersistentFlags())

	if err := flags.Parse(os.Args[1:]); err != nil {
		return commands.FlagErrorFunc(cmd, err)
	}

	return nil
}

// initialize initializes the 1trc CLI, configuring it using config and flags.
func (cli *Cli) initialize() error {
	cliOpts := cli.opts

	appConfig := cliOpts.AppConfig()
	rootOpts := cliOpts.RootOpts()

	// set tty mode
	if !*rootOpts.NoTTY.Changed && !*rootOpts.TTY.Changed {
		cliOpts.SetUseTTY(rootOpts.TTY.Value)
	} else {
		cliOpts.SetUseTTY(*rootOpts.TTY.Changed)
	}

	// merge values from config and flags
	configPath := rootOpts.ConfigPath

	err := appConfig.ParseFromFile(configPath)
	if err != nil {
		return errors.WithMessage(err, "error during initializing cli")
	}

	// setup logger
	logLevel := slog.LevelInfo
	if rootOpts.DebugMode {
		logLevel = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var logHandler slog.Handler

	if appConfig.LogFormat == "json" {
		logHandler = slog.NewJSONHandler(cliOpts.Out(), handlerOpts)
	} else {
		logHandler = handlers.NewTextHandler(cliOpts.Out(), handlerOpts)
	}

	slog.SetDefault(slog.New(logHandler))

	// setup renderer
	renderer := prompt.NewRenderer(cliOpts.In(), cliOpts.Out(), cliOpts.UseTTY())
	cliOpts.SetRenderer(renderer)

	return nil
}
