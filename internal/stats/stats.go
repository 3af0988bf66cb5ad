// Package stats computes the dashboard's derived statistics from record
// collections. Every function is pure: inputs are never modified and the
// result depends only on the records passed in.
package stats

import (
	"math"
	"time"

	"github.com/google/btree"

	"github.com/olirobz31/dashboard-analytics-pro/pkg/types"
)

const dateLayout = "2006-01-02"

func completed(r types.Record) bool {
	return r.Str(types.FieldStatus) == types.OrderCompleted
}

// TotalRevenue sums the amounts of completed orders. Malformed amounts count
// as 0.
func TotalRevenue(orders []types.Record) float64 {
	var total float64
	for _, o := range orders {
		if completed(o) {
			total += types.Amount(o[types.FieldAmount])
		}
	}
	return total
}

// AverageOrderValue is TotalRevenue divided by the number of completed
// orders, or 0 when there are none.
func AverageOrderValue(orders []types.Record) float64 {
	n := CountByStatus(orders, types.OrderCompleted)
	if n == 0 {
		return 0
	}
	return TotalRevenue(orders) / float64(n)
}

// CountByStatus counts the records whose status equals status.
func CountByStatus(recs []types.Record, status string) int {
	n := 0
	for _, r := range recs {
		if r.Str(types.FieldStatus) == status {
			n++
		}
	}
	return n
}

// MonthlyRevenue buckets completed-order revenue by calendar month, January
// first. Years are not distinguished: January 2023 and January 2024 land in
// the same bucket. Orders with an unparsable date are skipped.
func MonthlyRevenue(orders []types.Record) [12]float64 {
	var buckets [12]float64
	for _, o := range orders {
		if !completed(o) {
			continue
		}
		d, err := time.Parse(dateLayout, o.Str(types.FieldDate))
		if err != nil {
			continue
		}
		buckets[d.Month()-1] += types.Amount(o[types.FieldAmount])
	}
	return buckets
}

// Direction tags a trend for display.
type Direction string

const (
	Positive Direction = "positive"
	Negative Direction = "negative"
	Neutral  Direction = "neutral"
)

// Trend is the change between two period aggregates.
type Trend struct {
	Percent   float64   `json:"percent"`
	Direction Direction `json:"direction"`
}

// String renders the trend as on a stat card, e.g. "+12.5%".
func (t Trend) String() string {
	s := formatPercent(t.Percent)
	if t.Percent > 0 {
		s = "+" + s
	}
	return s + "%"
}

// PeriodTrend returns the percentage change from previous to current,
// rounded to one decimal. A zero previous period reads as +100% when current
// is positive and 0% otherwise.
func PeriodTrend(current, previous float64) Trend {
	if previous == 0 {
		if current > 0 {
			return Trend{Percent: 100, Direction: Positive}
		}
		return Trend{Percent: 0, Direction: Neutral}
	}
	p := math.Round((current-previous)/previous*100*10) / 10
	switch {
	case p > 0:
		return Trend{Percent: p, Direction: Positive}
	case p < 0:
		return Trend{Percent: p, Direction: Negative}
	default:
		return Trend{Percent: 0, Direction: Neutral}
	}
}

// Entity is one group of TopEntities.
type Entity struct {
	Key   string  `json:"key"`
	Total float64 `json:"total"`
}

type rankedEntity struct {
	Entity
	seen int
}

// TopEntities groups completed-order amounts by key, sums each group, and
// returns the n largest groups, largest first. Equal totals keep the order in
// which their keys first appear in orders.
func TopEntities(orders []types.Record, key func(types.Record) string, n int) []Entity {
	if n <= 0 {
		return []Entity{}
	}
	groups := map[string]*rankedEntity{}
	var order []*rankedEntity
	for _, o := range orders {
		if !completed(o) {
			continue
		}
		k := key(o)
		g, ok := groups[k]
		if !ok {
			g = &rankedEntity{Entity: Entity{Key: k}, seen: len(order)}
			groups[k] = g
			order = append(order, g)
		}
		g.Total += types.Amount(o[types.FieldAmount])
	}

	ranking := btree.NewG(32, func(a, b *rankedEntity) bool {
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.seen < b.seen
	})
	for _, g := range order {
		ranking.ReplaceOrInsert(g)
	}

	out := make([]Entity, 0, min(n, len(order)))
	ranking.Ascend(func(g *rankedEntity) bool {
		out = append(out, g.Entity)
		return len(out) < n
	})
	return out
}

// ByClient groups orders by client name.
func ByClient(r types.Record) string { return r.Str(types.FieldClient) }

// ByProduct groups orders by product name.
func ByProduct(r types.Record) string { return r.Str(types.FieldProduct) }
