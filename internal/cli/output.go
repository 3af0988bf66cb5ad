package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/olirobz31/dashboard-analytics-pro/internal/records"
	"github.com/olirobz31/dashboard-analytics-pro/internal/view"
	"github.com/olirobz31/dashboard-analytics-pro/pkg/types"
)

// validCollectionsStr lists the collection names for error output.
var validCollectionsStr = strings.Join(types.StandardCollections, ", ")

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError("marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(out))
	return nil
}

// printRecords writes recs as an aligned table using the schema's columns.
func printRecords(w io.Writer, schema view.Schema, recs []types.Record) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	headers := make([]string, len(schema.Columns))
	for i, c := range schema.Columns {
		headers[i] = strings.ToUpper(c.Header)
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, r := range recs {
		cells := make([]string, len(schema.Columns))
		for i, c := range schema.Columns {
			cells[i] = c.Render(r)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
}

// printRecord writes one record as sorted "key: value" lines.
func printRecord(w io.Writer, rec types.Record) {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, k := range keys {
		fmt.Fprintf(tw, "%s:\t%s\n", k, types.Text(rec[k]))
	}
	tw.Flush()
}

// parseRecord decodes a JSON object given on the command line.
func parseRecord(arg string) (types.Record, error) {
	var rec types.Record
	if err := json.Unmarshal([]byte(arg), &rec); err != nil {
		return nil, userError("invalid JSON record: %v", err)
	}
	if rec == nil {
		return nil, userError("invalid JSON record: expected an object")
	}
	return rec, nil
}

// repository opens the repository of a standard collection for cmd.
func (a *app) repository(collection string) (*records.Repository, view.Schema, error) {
	schema, ok := view.SchemaFor(collection)
	if !ok {
		return nil, view.Schema{}, userError("unknown collection %q (valid: %s)", collection, validCollectionsStr)
	}
	repo, err := records.New(a.store, collection)
	if err != nil {
		return nil, schema, err
	}
	return repo, schema, nil
}
