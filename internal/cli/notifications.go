package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/olirobz31/dashboard-analytics-pro/internal/notify"
	"github.com/olirobz31/dashboard-analytics-pro/internal/view"
)

func newNotificationsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notif"},
		Short:   "Read and manage notifications",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.listNotifications(cmd)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List notifications, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.listNotifications(cmd)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "read <id>",
		Short: "Mark a notification read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := notify.New(a.store)
			if err != nil {
				return err
			}
			if err := p.MarkRead(args[0]); err != nil {
				return err
			}
			return a.printUnread(cmd, p)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := notify.New(a.store)
			if err != nil {
				return err
			}
			changed, err := p.MarkAllRead()
			if err != nil {
				return err
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), map[string]int{"marked": changed})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d notifications marked read\n", changed)
			return nil
		},
	})

	var kind string
	push := &cobra.Command{
		Use:   "push <text>",
		Short: "Add a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := notify.New(a.store)
			if err != nil {
				return err
			}
			id, err := p.Push(kind, args[0])
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
	push.Flags().StringVar(&kind, "type", "", "notification type: order, user, alert, review, info")
	cmd.AddCommand(push)

	return cmd
}

func (a *app) listNotifications(cmd *cobra.Command) error {
	p, err := notify.New(a.store)
	if err != nil {
		return err
	}
	recs, err := p.List()
	if err != nil {
		return err
	}
	unread, err := p.Unread()
	if err != nil {
		return err
	}
	if a.flags.jsonMode {
		return printJSON(cmd.OutOrStdout(), map[string]any{"unread": unread, "notifications": recs})
	}
	printRecords(cmd.OutOrStdout(), view.NotificationsSchema, recs)
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d non lues\n", unread)
	return nil
}

func (a *app) printUnread(cmd *cobra.Command, p *notify.Panel) error {
	unread, err := p.Unread()
	if err != nil {
		return err
	}
	if a.flags.jsonMode {
		return printJSON(cmd.OutOrStdout(), map[string]int{"unread": unread})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d non lues\n", unread)
	return nil
}
