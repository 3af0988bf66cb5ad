package view

import (
	"fmt"
	"time"

	"github.com/olirobz31/dashboard-analytics-pro/pkg/types"
)

// frenchMonths are the abbreviated month names of the fr-FR locale.
var frenchMonths = [12]string{
	"janv.", "févr.", "mars", "avr.", "mai", "juin",
	"juil.", "août", "sept.", "oct.", "nov.", "déc.",
}

// FormatAmount renders an amount with the euro suffix, e.g. "149 €".
// The value is printed as stored, so malformed amounts stay visible.
func FormatAmount(v any) string {
	return types.Text(v) + " €"
}

// FormatDate renders a YYYY-MM-DD date as "15 janv. 2024". Dates that do not
// parse are returned unchanged.
func FormatDate(s string) string {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%02d %s %d", d.Day(), frenchMonths[d.Month()-1], d.Year())
}
