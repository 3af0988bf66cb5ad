package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/olirobz31/dashboard-analytics-pro/internal/stats"
	"github.com/olirobz31/dashboard-analytics-pro/internal/view"
	"github.com/olirobz31/dashboard-analytics-pro/pkg/types"
)

// monthLabels label the monthly revenue buckets.
var monthLabels = [12]string{
	"Jan", "Fév", "Mar", "Avr", "Mai", "Juin",
	"Juil", "Août", "Sep", "Oct", "Nov", "Déc",
}

func newStatsCmd(a *app) *cobra.Command {
	var ref string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard summary",
		Long: `Stats prints revenue, orders, users, and average order value with their
month-over-month trends, the orders per status, revenue per calendar month,
and the top clients and products.

Trends compare the month containing --ref (default today) with the month
before it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			refDate := time.Now()
			if ref != "" {
				d, err := time.Parse("2006-01-02", ref)
				if err != nil {
					return userError("invalid --ref %q (expected YYYY-MM-DD)", ref)
				}
				refDate = d
			}
			orders, err := a.store.Load(types.OrdersCollection)
			if err != nil {
				return sysError("load orders: %w", err)
			}
			users, err := a.store.Load(types.UsersCollection)
			if err != nil {
				return sysError("load users: %w", err)
			}

			summary := stats.Summarize(orders, users, refDate)
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), summary)
			}
			printSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}
	cmd.Flags().StringVar(&ref, "ref", "", "reference date for trends (YYYY-MM-DD)")
	return cmd
}

func printSummary(w io.Writer, s stats.Summary) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Période\t%s\t\n", s.Reference)
	fmt.Fprintf(tw, "Revenus\t%s\t%s\n", view.FormatAmount(s.Revenue.Value), s.Revenue.Trend)
	fmt.Fprintf(tw, "Commandes\t%s\t%s\n", types.Text(s.Orders.Value), s.Orders.Trend)
	fmt.Fprintf(tw, "Utilisateurs\t%s\t%s\n", types.Text(s.Users.Value), s.Users.Trend)
	fmt.Fprintf(tw, "Panier moyen\t%s\t%s\n", view.FormatAmount(round2(s.AverageOrderValue.Value)), s.AverageOrderValue.Trend)
	tw.Flush()

	fmt.Fprintln(w, "\nCommandes par statut")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, status := range types.OrderStatuses {
		fmt.Fprintf(tw, "  %s\t%d\n", types.OrderStatusLabel(status), s.StatusCounts[status])
	}
	tw.Flush()

	fmt.Fprintln(w, "\nRevenus par mois")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, v := range s.MonthlyRevenue {
		if v != 0 {
			fmt.Fprintf(tw, "  %s\t%s\n", monthLabels[i], view.FormatAmount(v))
		}
	}
	tw.Flush()

	printEntities(w, "Meilleurs clients", s.TopClients)
	printEntities(w, "Meilleurs produits", s.TopProducts)
}

func printEntities(w io.Writer, title string, entities []stats.Entity) {
	fmt.Fprintf(w, "\n%s\n", title)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, e := range entities {
		fmt.Fprintf(tw, "  %d.\t%s\t%s\n", i+1, e.Key, view.FormatAmount(e.Total))
	}
	tw.Flush()
}

func round2(v float64) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return f
}
