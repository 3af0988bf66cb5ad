package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const modulePath = "github.com/olirobz31/dashboard-analytics-pro"

// Version is the CLI version, overridden at build time with -ldflags.
var Version = "1.0.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dashboard version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "dashboard v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
