package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/olirobz31/dashboard-analytics-pro/internal/records"
	"github.com/olirobz31/dashboard-analytics-pro/pkg/types"
)

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change dashboard settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.showSettings(cmd)
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.showSettings(cmd)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting (theme, page_size, accent)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := records.LoadSettings(a.store)
			if err != nil {
				return err
			}
			key, value := args[0], args[1]
			switch key {
			case "theme":
				s.Theme = value
			case "accent":
				s.Accent = value
			case "page_size":
				n, err := strconv.Atoi(value)
				if err != nil {
					return userError("page_size must be a number, got %q", value)
				}
				s.PageSize = n
			default:
				return userError("unknown setting %q (valid: theme, page_size, accent)", key)
			}
			if err := records.SaveSettings(a.store, s); err != nil {
				return err
			}
			return a.showSettings(cmd)
		},
	})
	return cmd
}

func (a *app) showSettings(cmd *cobra.Command) error {
	s, err := records.LoadSettings(a.store)
	if err != nil {
		return err
	}
	if a.flags.jsonMode {
		return printJSON(cmd.OutOrStdout(), s)
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "theme:\t%s\n", s.Theme)
	fmt.Fprintf(tw, "page_size:\t%d\n", s.PageSize)
	fmt.Fprintf(tw, "accent:\t%s\n", s.Accent)
	fmt.Fprintf(tw, "layout:\t%s\n", strings.Join(s.Layout, ", "))
	return tw.Flush()
}

func newLayoutCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Show or change the widget order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := records.LoadSettings(a.store)
			if err != nil {
				return err
			}
			return a.printLayout(cmd, s.Layout)
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the widget order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := records.LoadSettings(a.store)
			if err != nil {
				return err
			}
			return a.printLayout(cmd, s.Layout)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set <widget>...",
		Short: "Move widgets to the front in the given order",
		Long: "Set stores a new widget order. Widgets not named keep their default\n" +
			"relative order after the named ones.\n\nWidgets: " + strings.Join(types.DefaultLayout, ", "),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := records.SetLayout(a.store, args)
			if err != nil {
				return err
			}
			return a.printLayout(cmd, layout)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Restore the default widget order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := records.ResetLayout(a.store)
			if err != nil {
				return err
			}
			return a.printLayout(cmd, layout)
		},
	})
	return cmd
}

func (a *app) printLayout(cmd *cobra.Command, layout []string) error {
	if a.flags.jsonMode {
		return printJSON(cmd.OutOrStdout(), layout)
	}
	for i, id := range layout {
		fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, id)
	}
	return nil
}
