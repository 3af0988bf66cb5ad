package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/olirobz31/dashboard-analytics-pro/internal/records"
	"github.com/olirobz31/dashboard-analytics-pro/internal/view"
	"github.com/olirobz31/dashboard-analytics-pro/pkg/types"
)

// userPresets are the filters of the users table dropdown.
var userPresets = map[string]map[string]any{
	"all":     nil,
	"active":  {types.FieldStatus: types.UserActive},
	"pending": {types.FieldStatus: types.UserPending},
	"premium": {types.FieldPlan: map[string]any{"$in": []any{types.PlanPro, types.PlanBusiness}}},
}

// queryFlags are the view-state flags shared by list and export.
type queryFlags struct {
	search string
	sort   string
	desc   bool
	where  string
	preset string
}

func (q *queryFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&q.search, "search", "s", "", "case-insensitive search text")
	f.StringVar(&q.sort, "sort", "", "sort key")
	f.BoolVar(&q.desc, "desc", false, "sort descending")
	f.StringVar(&q.where, "where", "", `structured filter as JSON, e.g. '{"status":"pending"}'`)
	f.StringVar(&q.preset, "preset", "", "users filter preset: all, active, pending, premium")
}

// engine loads the collection and applies the query flags to a new engine.
func (a *app) engine(collection string, q queryFlags, pageSize int) (*view.Engine, error) {
	repo, schema, err := a.repository(collection)
	if err != nil {
		return nil, err
	}
	recs, err := repo.List()
	if err != nil {
		return nil, sysError("load %s: %w", collection, err)
	}
	e := view.New(schema, recs, pageSize)

	cond, err := q.filter(collection)
	if err != nil {
		return nil, err
	}
	if cond != nil {
		if _, err := e.SetFilter(cond); err != nil {
			return nil, userError("%v", err)
		}
	}
	if q.search != "" {
		e.SetSearchQuery(q.search)
	}
	if q.sort != "" {
		dir := view.Ascending
		if q.desc {
			dir = view.Descending
		}
		if _, ok := e.SortBy(q.sort, dir); !ok {
			return nil, userError("cannot sort %s by %q", collection, q.sort)
		}
	}
	return e, nil
}

func (q queryFlags) filter(collection string) (map[string]any, error) {
	if q.preset != "" && q.where != "" {
		return nil, userError("--preset and --where cannot be combined")
	}
	if q.preset != "" {
		if collection != types.UsersCollection {
			return nil, userError("--preset applies to users only")
		}
		cond, ok := userPresets[q.preset]
		if !ok {
			return nil, userError("unknown preset %q (valid: all, active, pending, premium)", q.preset)
		}
		return cond, nil
	}
	if q.where == "" {
		return nil, nil
	}
	var cond map[string]any
	if err := json.Unmarshal([]byte(q.where), &cond); err != nil {
		return nil, userError("invalid --where filter: %v", err)
	}
	return cond, nil
}

// pageSize picks the page size: the flag, then the saved settings, then
// page_size from config.yaml.
func (a *app) pageSize(flag int) (int, error) {
	if flag > 0 {
		return flag, nil
	}
	stored, err := a.store.Load(types.SettingsCollection)
	if err != nil {
		return 0, sysError("load settings: %w", err)
	}
	if len(stored) > 0 {
		s, err := records.LoadSettings(a.store)
		if err != nil {
			return 0, err
		}
		return s.PageSize, nil
	}
	return a.cfg.GetInt(cfgKeyPageSize), nil
}

func newListCmd(a *app) *cobra.Command {
	var (
		q        queryFlags
		page     int
		pageSize int
	)
	cmd := &cobra.Command{
		Use:   "list <collection>",
		Short: "Show one page of a collection",
		Long: `List renders one page of a collection through the table view: structured
filter, then search, then sort, then pagination.

Collections: orders, users, products, notifications

Examples:
  dashboard list orders --search "dashboard pro"
  dashboard list orders --sort amount --desc --page 2
  dashboard list users --preset premium`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := a.pageSize(pageSize)
			if err != nil {
				return err
			}
			e, err := a.engine(args[0], q, size)
			if err != nil {
				return err
			}
			result := e.Page()
			if page > 1 {
				var ok bool
				if result, ok = e.GoToPage(page); !ok {
					return userError("page %d out of range (1-%d)", page, result.PageInfo.TotalPages)
				}
			}

			w := cmd.OutOrStdout()
			if a.flags.jsonMode {
				return printJSON(w, result)
			}
			if result.TotalFiltered == 0 {
				fmt.Fprintln(w, "Aucun résultat")
				return nil
			}
			schema, _ := view.SchemaFor(args[0])
			printRecords(w, schema, result.Rows)
			start, end := result.Range()
			numbers := make([]string, len(result.PageInfo.PageNumbers))
			for i, n := range result.PageInfo.PageNumbers {
				numbers[i] = n.String()
				if !n.Ellipsis && n.Page == result.PageInfo.CurrentPage {
					numbers[i] = "[" + numbers[i] + "]"
				}
			}
			fmt.Fprintf(w, "\nAffichage %d-%d sur %d  %s\n", start, end, result.TotalFiltered, strings.Join(numbers, " "))
			return nil
		},
	}
	q.register(cmd)
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "rows per page (default: settings page_size)")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var (
		q      queryFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "export <collection>",
		Short: "Export the filtered collection as CSV",
		Long: `Export writes every row matching the filter and search (all pages) as
";"-separated CSV with a header row.

Example:
  dashboard export orders --search pro -o commandes.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine(args[0], q, 0)
			if err != nil {
				return err
			}
			data := e.ExportCSV()
			if output == "" {
				w := cmd.OutOrStdout()
				w.Write(data)
				fmt.Fprintln(w)
				return nil
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return sysError("write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to %s\n", len(e.Projection()), output)
			return nil
		},
	}
	q.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write CSV to this file instead of stdout")
	return cmd
}
