package view

import (
	"encoding/json"
	"strconv"
)

// ellipsisMarker is how an ellipsis entry is written in JSON.
const ellipsisMarker = "ellipsis"

// PageNumber is one entry of the pagination bar: a page number, or an
// ellipsis standing for a run of hidden pages.
type PageNumber struct {
	Page     int
	Ellipsis bool
}

// Ellipsis is the page-number entry that collapses hidden pages.
var Ellipsis = PageNumber{Ellipsis: true}

// String returns the page number, or "…" for an ellipsis.
func (p PageNumber) String() string {
	if p.Ellipsis {
		return "…"
	}
	return strconv.Itoa(p.Page)
}

// MarshalJSON writes a page as a number and an ellipsis as "ellipsis".
func (p PageNumber) MarshalJSON() ([]byte, error) {
	if p.Ellipsis {
		return json.Marshal(ellipsisMarker)
	}
	return json.Marshal(p.Page)
}

// UnmarshalJSON accepts what MarshalJSON writes.
func (p *PageNumber) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != ellipsisMarker {
			return &json.UnsupportedValueError{Str: s}
		}
		*p = Ellipsis
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = PageNumber{Page: n}
	return nil
}

// totalPages returns ceil(count/size), and 1 for an empty result.
func totalPages(count, size int) int {
	if count <= 0 {
		return 1
	}
	return (count-1)/size + 1
}

// pageNumbers lists the entries of the pagination bar: the first and last
// pages, the current page and its immediate neighbours. Every run of hidden
// pages between them becomes a single ellipsis.
func pageNumbers(current, total int) []PageNumber {
	out := make([]PageNumber, 0, 7)
	gap := false
	for i := 1; i <= total; i++ {
		if i == 1 || i == total || (i >= current-1 && i <= current+1) {
			out = append(out, PageNumber{Page: i})
			gap = false
			continue
		}
		if !gap {
			out = append(out, Ellipsis)
			gap = true
		}
	}
	return out
}
