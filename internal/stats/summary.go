package stats

import (
	"strconv"
	"time"

	"github.com/olirobz31/dashboard-analytics-pro/pkg/types"
)

// topCount is how many clients and products a Summary ranks.
const topCount = 5

// Stat is one stat card: an all-time value and its month-over-month trend.
type Stat struct {
	Value float64 `json:"value"`
	Trend Trend   `json:"trend"`
}

// Summary holds everything the overview page shows.
type Summary struct {
	Reference         string         `json:"reference"`
	Revenue           Stat           `json:"revenue"`
	Orders            Stat           `json:"orders"`
	Users             Stat           `json:"users"`
	AverageOrderValue Stat           `json:"average_order_value"`
	StatusCounts      map[string]int `json:"status_counts"`
	MonthlyRevenue    [12]float64    `json:"monthly_revenue"`
	TopClients        []Entity       `json:"top_clients"`
	TopProducts       []Entity       `json:"top_products"`
}

// Summarize builds the overview from orders and users. Trends compare the
// calendar month containing ref with the month before it; unlike
// MonthlyRevenue, these periods do distinguish years.
func Summarize(orders, users []types.Record, ref time.Time) Summary {
	cur := monthOf(ref)
	prev := cur.AddDate(0, -1, 0)
	curOrders, prevOrders := inMonth(orders, cur), inMonth(orders, prev)

	s := Summary{
		Reference: cur.Format("2006-01"),
		Revenue: Stat{
			Value: TotalRevenue(orders),
			Trend: PeriodTrend(TotalRevenue(curOrders), TotalRevenue(prevOrders)),
		},
		Orders: Stat{
			Value: float64(len(orders)),
			Trend: PeriodTrend(float64(len(curOrders)), float64(len(prevOrders))),
		},
		Users: Stat{
			Value: float64(len(users)),
			Trend: PeriodTrend(float64(len(inMonth(users, cur))), float64(len(inMonth(users, prev)))),
		},
		AverageOrderValue: Stat{
			Value: AverageOrderValue(orders),
			Trend: PeriodTrend(AverageOrderValue(curOrders), AverageOrderValue(prevOrders)),
		},
		StatusCounts:   make(map[string]int, len(types.OrderStatuses)),
		MonthlyRevenue: MonthlyRevenue(orders),
		TopClients:     TopEntities(orders, ByClient, topCount),
		TopProducts:    TopEntities(orders, ByProduct, topCount),
	}
	for _, status := range types.OrderStatuses {
		s.StatusCounts[status] = CountByStatus(orders, status)
	}
	return s
}

func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// inMonth returns the records dated within the month starting at m.
func inMonth(recs []types.Record, m time.Time) []types.Record {
	var out []types.Record
	for _, r := range recs {
		d, err := time.Parse(dateLayout, r.Str(types.FieldDate))
		if err != nil {
			continue
		}
		if d.Year() == m.Year() && d.Month() == m.Month() {
			out = append(out, r)
		}
	}
	return out
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64)
}
