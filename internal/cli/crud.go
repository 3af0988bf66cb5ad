package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <collection> <id>",
		Short: "Show one record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, _, err := a.repository(args[0])
			if err != nil {
				return err
			}
			rec, err := repo.Get(args[1])
			if err != nil {
				return err
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), rec)
			}
			printRecord(cmd.OutOrStdout(), rec)
			return nil
		},
	}
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <collection> <json>",
		Short: "Add a record at the top of a collection",
		Long: `Add inserts a record given as a JSON object. Missing ids are generated
(orders "#<n>", users and notifications numeric, products UUID) and missing
statuses and dates get their defaults.

Example:
  dashboard add orders '{"client":"Ana Lima","product":"Dashboard Pro","amount":149}'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, _, err := a.repository(args[0])
			if err != nil {
				return err
			}
			rec, err := parseRecord(args[1])
			if err != nil {
				return err
			}
			id, err := repo.Add(rec)
			if err != nil {
				return err
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), map[string]string{"id": id})
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func newUpdateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "update <collection> <id> <json>",
		Short:   "Merge fields into a record",
		Example: `  dashboard update orders '#1230' '{"status":"completed"}'`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, _, err := a.repository(args[0])
			if err != nil {
				return err
			}
			changes, err := parseRecord(args[2])
			if err != nil {
				return err
			}
			rec, err := repo.Update(args[1], changes)
			if err != nil {
				return err
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), rec)
			}
			printRecord(cmd.OutOrStdout(), rec)
			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <collection> <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, _, err := a.repository(args[0])
			if err != nil {
				return err
			}
			if err := repo.Delete(args[1]); err != nil {
				return err
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), map[string]string{"deleted": args[1]})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", args[0], args[1])
			return nil
		},
	}
}
