package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/build"
)

// versionLine is shared by the version subcommand and the --version flag.
func versionLine() string {
	return fmt.Sprintf("kiln version %s (commit: %s, date: %s)", build.Version, build.Commit, build.Date)
}

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), versionLine())
			return err
		},
	}
}
