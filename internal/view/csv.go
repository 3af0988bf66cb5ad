package view

import "strings"

const (
	csvSeparator = ";"
	csvNewline   = "\n"
)

// ExportCSV serializes the filtered (not paginated) rows with the schema's
// columns. Fields are joined with ";" and rows with "\n", without quoting and
// without a trailing newline, so an empty result is the header row alone.
func (e *Engine) ExportCSV() []byte {
	lines := make([]string, 0, len(e.projection)+1)
	header := make([]string, len(e.schema.Columns))
	for i, c := range e.schema.Columns {
		header[i] = c.Header
	}
	lines = append(lines, strings.Join(header, csvSeparator))
	for _, r := range e.projection {
		fields := make([]string, len(e.schema.Columns))
		for i, c := range e.schema.Columns {
			fields[i] = c.Render(r)
		}
		lines = append(lines, strings.Join(fields, csvSeparator))
	}
	return []byte(strings.Join(lines, csvNewline))
}
