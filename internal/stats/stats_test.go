package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olirobz31/dashboard-analytics-pro/internal/records"
	"github.com/olirobz31/dashboard-analytics-pro/pkg/types"
)

func o(client, product string, amount any, status, date string) types.Record {
	return types.Record{
		"client": client, "product": product,
		"amount": amount, "status": status, "date": date,
	}
}

func TestTotalsOnDemoOrders(t *testing.T) {
	orders := records.DemoOrders()

	assert.InDelta(t, 1190.0, TotalRevenue(orders), 1e-9)
	assert.InDelta(t, 119.0, AverageOrderValue(orders), 1e-9)
	assert.Equal(t, 10, CountByStatus(orders, types.OrderCompleted))
	assert.Equal(t, 2, CountByStatus(orders, types.OrderPending))
	assert.Equal(t, 2, CountByStatus(orders, types.OrderProcessing))
	assert.Equal(t, 1, CountByStatus(orders, types.OrderCancelled))
	assert.Equal(t, 0, CountByStatus(orders, "refunded"))
}

func TestMalformedAmountsCountAsZero(t *testing.T) {
	orders := []types.Record{
		o("A", "P", 100.0, types.OrderCompleted, "2024-01-01"),
		o("B", "P", "abc", types.OrderCompleted, "2024-01-02"),
		o("C", "P", nil, types.OrderCompleted, "2024-01-03"),
		o("D", "P", "50", types.OrderCompleted, "2024-01-04"),
		o("E", "P", 1000.0, types.OrderPending, "2024-01-05"),
	}

	assert.InDelta(t, 150.0, TotalRevenue(orders), 1e-9)
	assert.InDelta(t, 37.5, AverageOrderValue(orders), 1e-9)
}

func TestAverageOrderValueWithoutCompletedOrders(t *testing.T) {
	assert.Equal(t, 0.0, AverageOrderValue(nil))
	assert.Equal(t, 0.0, AverageOrderValue([]types.Record{
		o("A", "P", 100.0, types.OrderPending, "2024-01-01"),
	}))
}

func TestMonthlyRevenueIgnoresYear(t *testing.T) {
	orders := []types.Record{
		o("A", "P", 100.0, types.OrderCompleted, "2023-01-10"),
		o("B", "P", 50.0, types.OrderCompleted, "2024-01-20"),
		o("C", "P", 30.0, types.OrderCompleted, "2024-12-31"),
		o("D", "P", 999.0, types.OrderCancelled, "2024-03-01"),
		o("E", "P", 999.0, types.OrderCompleted, "not a date"),
	}

	got := MonthlyRevenue(orders)

	var want [12]float64
	want[0] = 150
	want[11] = 30
	assert.Equal(t, want, got)
}

func TestPeriodTrend(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     Trend
	}{
		{"both zero", 0, 0, Trend{0, Neutral}},
		{"from zero", 50, 0, Trend{100, Positive}},
		{"negative from zero", -5, 0, Trend{0, Neutral}},
		{"increase", 150, 100, Trend{50, Positive}},
		{"decrease", 80, 100, Trend{-20, Negative}},
		{"rounded", 1123, 1000, Trend{12.3, Positive}},
		{"rounds to zero", 10000.4, 10000, Trend{0, Neutral}},
		{"to zero", 0, 40, Trend{-100, Negative}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PeriodTrend(tt.current, tt.previous))
		})
	}
}

func TestPeriodTrendSymmetry(t *testing.T) {
	for _, x := range []float64{0.001, 1, 49, 149.99, 1e9} {
		assert.Equal(t, Trend{0, Neutral}, PeriodTrend(x, x), x)
	}
}

func TestTrendString(t *testing.T) {
	assert.Equal(t, "+12.5%", Trend{12.5, Positive}.String())
	assert.Equal(t, "-5.3%", Trend{-5.3, Negative}.String())
	assert.Equal(t, "0.0%", Trend{0, Neutral}.String())
}

func TestTopEntities(t *testing.T) {
	orders := records.DemoOrders()

	products := TopEntities(orders, ByProduct, 10)
	assert.Equal(t, []Entity{
		{"Dashboard Pro", 745},
		{"Dashboard Business", 249},
		{"Dashboard Starter", 196},
	}, products)

	clients := TopEntities(orders, ByClient, 5)
	assert.Equal(t, []Entity{
		{"Lucas Petit", 249},
		{"Marie Dupont", 149},
		{"Pierre Dubois", 149},
		{"Léa Simon", 149},
		{"Théo Martinez", 149},
	}, clients)
}

func TestTopEntitiesTiesKeepFirstSeen(t *testing.T) {
	orders := []types.Record{
		o("C", "P", 10.0, types.OrderCompleted, "2024-01-01"),
		o("A", "P", 5.0, types.OrderCompleted, "2024-01-01"),
		o("B", "P", 10.0, types.OrderCompleted, "2024-01-01"),
		o("A", "P", 5.0, types.OrderCompleted, "2024-01-01"),
		o("Z", "P", 500.0, types.OrderCancelled, "2024-01-01"),
	}

	got := TopEntities(orders, ByClient, 3)

	assert.Equal(t, []Entity{{"C", 10}, {"A", 10}, {"B", 10}}, got)
}

func TestTopEntitiesEdgeCases(t *testing.T) {
	assert.Empty(t, TopEntities(records.DemoOrders(), ByClient, 0))
	assert.Empty(t, TopEntities(nil, ByClient, 3))
}

func TestAggregationDoesNotMutate(t *testing.T) {
	orders := records.DemoOrders()
	before := types.CloneRecords(orders)

	TotalRevenue(orders)
	MonthlyRevenue(orders)
	TopEntities(orders, ByProduct, 2)
	Summarize(orders, records.DemoUsers(), time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, before, orders)
}

func TestSummarize(t *testing.T) {
	orders := records.DemoOrders()
	users := records.DemoUsers()

	s := Summarize(orders, users, time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, "2024-01", s.Reference)
	assert.InDelta(t, 1190.0, s.Revenue.Value, 1e-9)
	assert.Equal(t, Trend{100, Positive}, s.Revenue.Trend)
	assert.Equal(t, 15.0, s.Orders.Value)
	assert.Equal(t, 10.0, s.Users.Value)
	assert.InDelta(t, 119.0, s.AverageOrderValue.Value, 1e-9)
	assert.Equal(t, map[string]int{
		types.OrderCompleted:  10,
		types.OrderPending:    2,
		types.OrderProcessing: 2,
		types.OrderCancelled:  1,
	}, s.StatusCounts)
	assert.InDelta(t, 1190.0, s.MonthlyRevenue[0], 1e-9)
	require.Len(t, s.TopClients, 5)
	assert.Equal(t, "Lucas Petit", s.TopClients[0].Key)
	require.Len(t, s.TopProducts, 3)
}

func TestSummarizeDistinguishesYears(t *testing.T) {
	orders := []types.Record{
		o("A", "P", 100.0, types.OrderCompleted, "2023-12-15"),
		o("B", "P", 150.0, types.OrderCompleted, "2024-01-15"),
		o("C", "P", 900.0, types.OrderCompleted, "2023-01-15"),
	}

	s := Summarize(orders, nil, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, Trend{50, Positive}, s.Revenue.Trend)
	assert.Equal(t, Trend{0, Neutral}, s.Orders.Trend)
	assert.Equal(t, Trend{0, Neutral}, s.Users.Trend)
}

func TestSummarizeFollowingMonth(t *testing.T) {
	s := Summarize(records.DemoOrders(), records.DemoUsers(), time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, Trend{-100, Negative}, s.Revenue.Trend)
	assert.Equal(t, Trend{-100, Negative}, s.Users.Trend)
}
