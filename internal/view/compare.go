package view

import (
	"encoding/json"
	"strings"

	"github.com/olirobz31/dashboard-analytics-pro/pkg/types"
)

// compareNumeric orders two values after coercing both to float64.
// Malformed values coerce to NaN, and any comparison involving NaN is false
// both ways, so the pair reports 0 and the stable sort leaves them where
// they were. A NaN therefore neither precedes nor follows valid values.
func compareNumeric(a, b any) int {
	x, y := types.ToNumber(a), types.ToNumber(b)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// compareNatural orders two values by their native representation: numbers
// numerically, everything else by its text.
func compareNatural(a, b any) int {
	if isNumber(a) && isNumber(b) {
		return compareNumeric(a, b)
	}
	return strings.Compare(types.Text(a), types.Text(b))
}

func isNumber(v any) bool {
	switch v.(type) {
	case float64, float32, int, int64, json.Number:
		return true
	}
	return false
}
