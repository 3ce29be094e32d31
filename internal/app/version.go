package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"dbgraph/internal/cmdutil"
	"dbgraph/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// Skip config loading so version works with a broken config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "dbgraph version %s\n", version.Version)
			return cmdutil.Output(err)
		},
	}
}
