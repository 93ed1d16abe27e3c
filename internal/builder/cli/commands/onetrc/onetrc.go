package onetrc

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/glentner/1trc/internal/builder/cli/commands"
	"github.com/glentner/1trc/internal/builder/cli/commands/build"
	"github.com/glentner/1trc/internal/builder/cli/commands/serve"
	"github.com/glentner/1trc/internal/builder/cli/commands/version"
	"github.com/glentner/1trc/internal/builder/cli/options"
	"github.com/glentner/1trc/internal/builder/cli/streams"
	"github.com/glentner/1trc/internal/builder/cli/utils"
)

// NewOneTRCCommand creates '1trc' command for CLI.
func NewOneTRCCommand(cliOpts *options.CliOptions) *cobra.Command {
	cobra.EnableCommandSorting = false

	opts := cliOpts.RootOpts()

	cmd := &cobra.Command{
		Use:                   "1trc [FLAGS] [COMMAND]",
		Short:                 "CLI for building trillion row challenge benchmark datasets",
		Args:                  commands.NoArgs,
		SilenceUsage:          true,
		SilenceErrors:         true,
		TraverseChildren:      true,
		DisableFlagsInUseLine: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
			HiddenDefaultCmd:  true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer := cliOpts.Renderer()
			renderer.Logo()

			return utils.ChooseCommand(cmd, args, renderer)
		},
	}

	cmd.SetOut(cliOpts.Out())

	cmd.SetFlagErrorFunc(commands.FlagErrorFunc)

	setupFlags(cmd.Flags(), opts, cliOpts.In())

	cmd.PersistentFlags().BoolP("help", "h", false, "Print usage")

	cmd.PersistentFlags().Lookup("help").Hidden = true

	cmd.MarkFlagsMutuallyExclusive(commands.TTYFlag, commands.NoTTYFlag)
	cmd.SetUsageTemplate(usageTemplate)

	cmd.AddCommand(
		build.NewBuildCommand(cliOpts),
		serve.NewServeCommand(cliOpts),
		version.NewVersionCommand(cliOpts),
	)

	return cmd
}

// setupFlags sets flags for '1trc' command and bind them to rootOptions fields.
func setupFlags(flags *pflag.FlagSet, opts *options.RootOptions, in *streams.In) {
	flags.StringVarP(
		&opts.ConfigPath,
		commands.ConfigPathFlag,
		commands.ConfigPathShortFlag,
		commands.ConfigPathDefaultValue,
		commands.ConfigPathUsage,
	)

	flags.BoolVarP(
		&opts.TTY.Value,
		commands.TTYFlag,
		commands.TTYShortFlag,
		in.IsTerminal(),
		commands.TTYUsage,
	)

	opts.TTY.Changed = &flags.Lookup(commands.TTYFlag).Changed

	flags.BoolVarP(
		&opts.NoTTY.Value,
		commands.NoTTYFlag,
		commands.NoTTYShortFlag,
		commands.NoTTYDefaultValue,
		commands.NoTTYUsage,
	)

	opts.NoTTY.Changed = &flags.Lookup(commands.NoTTYFlag).Changed

	flags.BoolVarP(
		&opts.DebugMode,
		commands.DebugModeFlag,
		commands.DebugModeShortFlag,
		commands.DebugModeDefaultValue,
		commands.DebugModeUsage,
	)

	flags.StringVarP(
		&opts.CPUProfile,
		commands.CPUProfileFlag,
		commands.CPUProfileShortFlag,
		commands.CPUProfileDefaultValue,
		commands.CPUProfileUsage,
	)

	flags.StringVarP(
		&opts.MemoryProfile,
		commands.MemoryProfileFlag,
		commands.MemoryProfileShortFlag,
		commands.MemoryProfileDefaultValue,
		commands.MemoryProfileUsage,
	)
}

const usageTemplate = `Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

Available Commands:{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{.Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

Additional Commands:{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
