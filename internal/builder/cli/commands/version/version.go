package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glentner/1trc/internal/builder/cli/commands"
	"github.com/glentner/1trc/internal/builder/cli/options"
)

// NewVersionCommand creates 'version' command for CLI.
func NewVersionCommand(cliOpts *options.CliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "version",
		Short:                 "Show 1trc version",
		Args:                  commands.NoArgs,
		DisableFlagsInUseLine: true,
		Run: func(cmd *cobra.Command, _ []string) {
			versionPrompt := "1trc version " + cliOpts.Version()

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), versionPrompt)
		},
	}

	cmd.SetOut(cliOpts.Out())

	return cmd
}
