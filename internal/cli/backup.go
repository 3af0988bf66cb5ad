package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/olirobz31/dashboard-analytics-pro/internal/records"
)

func newBackupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or import all dashboard data",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "export [file]",
		Short: "Write every collection and the settings as one JSON document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := records.ExportBackup(a.store)
			if err != nil {
				return sysError("export: %w", err)
			}
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(args[0], append(data, '\n'), 0o644); err != nil {
				return sysError("write %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "import <file>",
		Short: "Replace collections from a backup document",
		Long: `Import validates the whole document first and writes nothing if any part is
invalid. Collections absent from the document are left as they are.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return userError("read %s: %w", args[0], err)
			}
			imported, err := records.ImportBackup(a.store, data)
			if err != nil {
				return err
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), map[string]any{"imported": imported})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported: %s\n", strings.Join(imported, ", "))
			return nil
		},
	})
	return cmd
}
