package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/olirobz31/dashboard-analytics-pro/internal/records"
)

func newInitCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration and demo data",
		Long: `Init writes a default config.yaml when none exists and seeds the demo
orders, users, products, notifications, and settings into every empty
collection. With --force the demo data replaces existing collections.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seeded, err := records.Seed(a.store, force)
			if err != nil {
				return sysError("seed: %w", err)
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), map[string]any{"seeded": seeded})
			}
			if len(seeded) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Dashboard already initialized")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dashboard initialized (seeded: %s)\n", strings.Join(seeded, ", "))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "replace existing collections with the demo data")
	return cmd
}
