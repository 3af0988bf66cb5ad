// Package view maintains the filtered, sorted, and paginated projection of one
// record collection for table display.
//
// An Engine owns its view state: search query, structured filter, sort key and
// direction, current page, and page size. Every command recomputes the
// projection from the full collection (filter, then search, then stable sort)
// and returns the resulting Page. An Engine is not safe for concurrent use.
package view

import (
	"fmt"
	"slices"
	"strings"

	"github.com/SierraSoftworks/connor"
	"github.com/bdlm/log"

	"github.com/olirobz31/dashboard-analytics-pro/pkg/types"
)

// Direction is the sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// PageInfo is the pagination metadata of a Page.
type PageInfo struct {
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
	PageNumbers []PageNumber `json:"pageNumbersToRender"`
	PageSize    int          `json:"pageSize"`
}

// Page is one rendered page of the projection.
type Page struct {
	Rows          []types.Record `json:"rows"`
	PageInfo      PageInfo       `json:"pageInfo"`
	TotalFiltered int            `json:"totalFiltered"`
}

// Range returns the 1-based positions of the first and last row of the page
// within the projection, or (0, 0) when the page is empty.
func (p Page) Range() (start, end int) {
	if len(p.Rows) == 0 {
		return 0, 0
	}
	start = (p.PageInfo.CurrentPage-1)*p.PageInfo.PageSize + 1
	return start, start + len(p.Rows) - 1
}

// Engine is the view state of one table.
type Engine struct {
	schema   Schema
	rows     []types.Record
	query    string
	filter   map[string]any
	sortKey  string
	sortDir  Direction
	page     int
	pageSize int

	projection []types.Record
}

// New returns an Engine over rows in insertion order. A pageSize below 1 uses
// the default page size.
func New(schema Schema, rows []types.Record, pageSize int) *Engine {
	if pageSize < 1 {
		pageSize = types.DefaultPageSize
	}
	e := &Engine{schema: schema, rows: rows, page: 1, pageSize: pageSize}
	e.recompute()
	return e
}

// Query returns the current search query.
func (e *Engine) Query() string { return e.query }

// Sort returns the current sort key ("" for insertion order) and direction.
func (e *Engine) Sort() (string, Direction) { return e.sortKey, e.sortDir }

// SetSearchQuery filters by case-insensitive substring over the schema's
// searchable fields and returns to page 1.
func (e *Engine) SetSearchQuery(q string) Page {
	e.query = q
	e.page = 1
	e.recompute()
	return e.Page()
}

// SetFilter applies a structured condition to every record before the search
// query. A nil or empty condition clears the filter. If the condition cannot
// be evaluated the view state is left unchanged and the error is returned.
func (e *Engine) SetFilter(cond map[string]any) (Page, error) {
	if len(cond) > 0 {
		for _, r := range e.rows {
			if _, err := connor.Match(cond, map[string]interface{}(r)); err != nil {
				return e.Page(), fmt.Errorf("filter %v: %w", cond, err)
			}
		}
	}
	e.filter = cond
	e.page = 1
	e.recompute()
	return e.Page(), nil
}

// SetSort sorts by key. When toggle is set and key is already the sort key
// the direction flips; otherwise key becomes the sort key, ascending.
// An unknown key is a no-op and reports false.
func (e *Engine) SetSort(key string, toggle bool) (Page, bool) {
	if _, ok := e.schema.Sortable[key]; !ok {
		return e.Page(), false
	}
	dir := Ascending
	if toggle && key == e.sortKey && e.sortDir == Ascending {
		dir = Descending
	}
	return e.SortBy(key, dir)
}

// SortBy sorts by key in the given direction. An empty key restores insertion
// order. An unknown key is a no-op and reports false.
func (e *Engine) SortBy(key string, dir Direction) (Page, bool) {
	if key != "" {
		if _, ok := e.schema.Sortable[key]; !ok {
			return e.Page(), false
		}
	}
	e.sortKey = key
	e.sortDir = dir
	e.page = 1
	e.recompute()
	return e.Page(), true
}

// GoToPage moves to page n when 1 <= n <= TotalPages; otherwise nothing
// changes and it reports false.
func (e *Engine) GoToPage(n int) (Page, bool) {
	if n < 1 || n > e.totalPages() {
		return e.Page(), false
	}
	e.page = n
	return e.Page(), true
}

// SetPageSize changes the page size and clamps the current page. Sizes below
// 1 are ignored.
func (e *Engine) SetPageSize(n int) (Page, bool) {
	if n < 1 {
		return e.Page(), false
	}
	e.pageSize = n
	e.clamp()
	return e.Page(), true
}

// Reload replaces the collection after a mutation, keeping the query, filter,
// and sort, and clamping the current page.
func (e *Engine) Reload(rows []types.Record) Page {
	e.rows = rows
	e.recompute()
	return e.Page()
}

// Page returns the current page. It does not change any state.
func (e *Engine) Page() Page {
	total := e.totalPages()
	n := len(e.projection)
	from := n
	if n > 0 && e.page-1 <= (n-1)/e.pageSize {
		from = (e.page - 1) * e.pageSize
	}
	to := from + min(e.pageSize, n-from)
	rows := make([]types.Record, 0, to-from)
	rows = append(rows, e.projection[from:to]...)
	return Page{
		Rows: rows,
		PageInfo: PageInfo{
			CurrentPage: e.page,
			TotalPages:  total,
			PageNumbers: pageNumbers(e.page, total),
			PageSize:    e.pageSize,
		},
		TotalFiltered: len(e.projection),
	}
}

// Projection returns the filtered and sorted rows across all pages.
func (e *Engine) Projection() []types.Record {
	return slices.Clone(e.projection)
}

func (e *Engine) totalPages() int {
	return totalPages(len(e.projection), e.pageSize)
}

func (e *Engine) clamp() {
	e.page = min(max(e.page, 1), e.totalPages())
}

func (e *Engine) recompute() {
	out := make([]types.Record, 0, len(e.rows))
	needle := strings.ToLower(e.query)
	for _, r := range e.rows {
		if !e.matchFilter(r) || !e.matchSearch(r, needle) {
			continue
		}
		out = append(out, r)
	}
	if e.sortKey != "" {
		cmp := compareNatural
		if e.schema.Sortable[e.sortKey] {
			cmp = compareNumeric
		}
		key, desc := e.sortKey, e.sortDir == Descending
		slices.SortStableFunc(out, func(a, b types.Record) int {
			c := cmp(a[key], b[key])
			if desc {
				return -c
			}
			return c
		})
	}
	e.projection = out
	e.clamp()
	log.WithFields(log.Fields{
		"collection": e.schema.Name,
		"query":      e.query,
		"sort":       e.sortKey,
		"dir":        e.sortDir.String(),
		"filtered":   len(out),
	}).Debug("view recomputed")
}

func (e *Engine) matchFilter(r types.Record) bool {
	if len(e.filter) == 0 {
		return true
	}
	ok, err := connor.Match(e.filter, map[string]interface{}(r))
	return err == nil && ok
}

func (e *Engine) matchSearch(r types.Record, needle string) bool {
	if needle == "" {
		return true
	}
	for _, text := range e.schema.Search {
		if strings.Contains(strings.ToLower(text(r)), needle) {
			return true
		}
	}
	return false
}
