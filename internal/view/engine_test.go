package view

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olirobz31/dashboard-analytics-pro/internal/records"
	"github.com/olirobz31/dashboard-analytics-pro/pkg/types"
)

func ids(recs []types.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID()
	}
	return out
}

func amountOrders(amounts ...any) []types.Record {
	out := make([]types.Record, len(amounts))
	for i, a := range amounts {
		out[i] = types.Record{"id": fmt.Sprintf("#%d", i+1), "amount": a, "status": "completed"}
	}
	return out
}

func TestPageIsIdempotent(t *testing.T) {
	e := New(OrdersSchema, records.DemoOrders(), 10)
	e.SetSearchQuery("dashboard")
	e.SetSort(types.FieldAmount, false)
	e.GoToPage(2)

	first, err := json.Marshal(e.Page())
	require.NoError(t, err)
	second, err := json.Marshal(e.Page())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSearchSoundness(t *testing.T) {
	orders := records.DemoOrders()
	for _, q := range []string{"pro", "MARIE", "#123", "terminé", "en cours", "zzz", ""} {
		t.Run(q, func(t *testing.T) {
			e := New(OrdersSchema, orders, 100)
			page := e.SetSearchQuery(q)

			matched := map[string]bool{}
			for _, r := range page.Rows {
				matched[r.ID()] = true
			}
			needle := strings.ToLower(q)
			for _, r := range orders {
				hit := false
				for _, text := range OrdersSchema.Search {
					if strings.Contains(strings.ToLower(text(r)), needle) {
						hit = true
					}
				}
				assert.Equal(t, hit, matched[r.ID()], r.ID())
			}
		})
	}
}

func TestSearchUsesStatusLabel(t *testing.T) {
	e := New(OrdersSchema, records.DemoOrders(), 100)

	page := e.SetSearchQuery("annulé")
	assert.Equal(t, []string{"#1228"}, ids(page.Rows))

	page = e.SetSearchQuery("cancelled")
	assert.Empty(t, page.Rows, "raw status codes are not searchable")
}

func TestSearchResetsPage(t *testing.T) {
	e := New(OrdersSchema, records.DemoOrders(), 10)
	_, ok := e.GoToPage(2)
	require.True(t, ok)

	page := e.SetSearchQuery("dashboard")
	assert.Equal(t, 1, page.PageInfo.CurrentPage)
}

func TestSearchDashboardProAcrossOnePage(t *testing.T) {
	e := New(OrdersSchema, records.DemoOrders(), 10)

	page := e.SetSearchQuery("dashboard pro")

	assert.Equal(t, []string{"#1234", "#1231", "#1228", "#1226", "#1223", "#1220"}, ids(page.Rows))
	assert.Equal(t, 6, page.TotalFiltered)
	assert.Equal(t, 1, page.PageInfo.TotalPages)
}

func TestAmountSortKeepsEqualOrder(t *testing.T) {
	e := New(OrdersSchema, amountOrders(49.0, 149.0, 249.0, 49.0, 149.0), 10)

	page, ok := e.SetSort(types.FieldAmount, false)
	require.True(t, ok)

	assert.Equal(t, []string{"#1", "#4", "#2", "#5", "#3"}, ids(page.Rows))
}

func TestSortStability(t *testing.T) {
	orders := records.DemoOrders()
	for _, key := range []string{types.FieldAmount, types.FieldStatus, types.FieldProduct, types.FieldDate} {
		for _, dir := range []Direction{Ascending, Descending} {
			t.Run(key+"/"+dir.String(), func(t *testing.T) {
				e := New(OrdersSchema, orders, 100)
				page, ok := e.SortBy(key, dir)
				require.True(t, ok)

				pos := map[string]int{}
				for i, r := range orders {
					pos[r.ID()] = i
				}
				for i := 1; i < len(page.Rows); i++ {
					a, b := page.Rows[i-1], page.Rows[i]
					if types.Text(a[key]) == types.Text(b[key]) {
						assert.Less(t, pos[a.ID()], pos[b.ID()], "%s before %s", a.ID(), b.ID())
					}
				}
			})
		}
	}
}

func TestSortTogglesDirection(t *testing.T) {
	e := New(OrdersSchema, amountOrders(149.0, 49.0, 249.0), 10)

	page, _ := e.SetSort(types.FieldAmount, true)
	assert.Equal(t, []string{"#2", "#1", "#3"}, ids(page.Rows))

	page, _ = e.SetSort(types.FieldAmount, true)
	assert.Equal(t, []string{"#3", "#1", "#2"}, ids(page.Rows))
	_, dir := e.Sort()
	assert.Equal(t, Descending, dir)

	page, _ = e.SetSort(types.FieldAmount, true)
	assert.Equal(t, []string{"#2", "#1", "#3"}, ids(page.Rows))

	e.SetSort(types.FieldAmount, true)
	page, _ = e.SetSort(types.FieldAmount, false)
	assert.Equal(t, []string{"#2", "#1", "#3"}, ids(page.Rows), "no toggle sets ascending")
}

func TestSortNewKeyStartsAscending(t *testing.T) {
	e := New(OrdersSchema, records.DemoOrders(), 10)
	e.SetSort(types.FieldAmount, true)
	e.SetSort(types.FieldAmount, true)

	e.SetSort(types.FieldClient, true)
	key, dir := e.Sort()
	assert.Equal(t, types.FieldClient, key)
	assert.Equal(t, Ascending, dir)
}

func TestSortNumericCoercion(t *testing.T) {
	e := New(OrdersSchema, amountOrders("100", 9.0, " 20 "), 10)

	page, _ := e.SetSort(types.FieldAmount, false)

	assert.Equal(t, []string{"#2", "#3", "#1"}, ids(page.Rows))
}

func TestSortMalformedAmountKeepsPosition(t *testing.T) {
	// NaN compares neither less nor greater than anything, so the stable
	// sort treats it as equal to both neighbours and nothing moves.
	e := New(OrdersSchema, amountOrders(49.0, "abc", 10.0), 10)

	page, _ := e.SetSort(types.FieldAmount, false)

	assert.Equal(t, []string{"#1", "#2", "#3"}, ids(page.Rows))
}

func TestSortReadsLeadingNumber(t *testing.T) {
	e := New(OrdersSchema, amountOrders("249 €", 49.0, "149abc"), 10)

	page, _ := e.SetSort(types.FieldAmount, false)

	assert.Equal(t, []string{"#2", "#3", "#1"}, ids(page.Rows))
}

func TestSortUnknownKeyIsNoop(t *testing.T) {
	e := New(OrdersSchema, records.DemoOrders(), 10)
	e.SetSort(types.FieldAmount, false)
	e.GoToPage(2)
	before, err := json.Marshal(e.Page())
	require.NoError(t, err)

	_, ok := e.SetSort("color", true)
	assert.False(t, ok)
	_, ok = e.SortBy("color", Descending)
	assert.False(t, ok)

	after, err := json.Marshal(e.Page())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSortByEmptyKeyRestoresInsertionOrder(t *testing.T) {
	orders := records.DemoOrders()
	e := New(OrdersSchema, orders, 100)
	e.SortBy(types.FieldClient, Descending)

	page, ok := e.SortBy("", Ascending)

	require.True(t, ok)
	assert.Equal(t, ids(orders), ids(page.Rows))
}

func TestPaginationCoverage(t *testing.T) {
	orders := records.DemoOrders()
	for _, size := range []int{1, 3, 4, 7, 10, 15, 20} {
		t.Run(fmt.Sprint(size), func(t *testing.T) {
			e := New(OrdersSchema, orders, size)
			e.SortBy(types.FieldClient, Ascending)
			want := ids(e.Projection())

			var got []string
			total := e.Page().PageInfo.TotalPages
			for p := 1; p <= total; p++ {
				page, ok := e.GoToPage(p)
				require.True(t, ok)
				got = append(got, ids(page.Rows)...)
			}
			assert.Equal(t, want, got)
			assert.Len(t, got, len(orders))
		})
	}
}

func TestGoToPageOutOfRangeIsNoop(t *testing.T) {
	e := New(OrdersSchema, records.DemoOrders(), 10)
	require.Equal(t, 2, e.Page().PageInfo.TotalPages)
	_, ok := e.GoToPage(2)
	require.True(t, ok)

	for _, n := range []int{999, 3, 0, -1} {
		page, ok := e.GoToPage(n)
		assert.False(t, ok, n)
		assert.Equal(t, 2, page.PageInfo.CurrentPage, n)
	}
}

func TestEmptyCollection(t *testing.T) {
	e := New(OrdersSchema, nil, 10)

	page := e.Page()

	assert.Empty(t, page.Rows)
	assert.NotNil(t, page.Rows)
	assert.Equal(t, 0, page.TotalFiltered)
	assert.Equal(t, 1, page.PageInfo.CurrentPage)
	assert.Equal(t, 1, page.PageInfo.TotalPages)
	assert.Equal(t, []PageNumber{{Page: 1}}, page.PageInfo.PageNumbers)
	start, end := page.Range()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestPageSizeClampsPage(t *testing.T) {
	e := New(OrdersSchema, records.DemoOrders(), 3)
	_, ok := e.GoToPage(5)
	require.True(t, ok)

	page, ok := e.SetPageSize(10)
	require.True(t, ok)
	assert.Equal(t, 2, page.PageInfo.CurrentPage)
	assert.Equal(t, 2, page.PageInfo.TotalPages)

	_, ok = e.SetPageSize(0)
	assert.False(t, ok)
	assert.Equal(t, 10, e.Page().PageInfo.PageSize)
}

func TestHugePageSizeFitsOnePage(t *testing.T) {
	e := New(OrdersSchema, records.DemoOrders(), math.MaxInt)

	page := e.Page()
	assert.Len(t, page.Rows, 15)
	assert.Equal(t, 1, page.PageInfo.CurrentPage)
	assert.Equal(t, 1, page.PageInfo.TotalPages)
	start, end := page.Range()
	assert.Equal(t, 1, start)
	assert.Equal(t, 15, end)

	e = New(OrdersSchema, records.DemoOrders(), 5)
	_, ok := e.GoToPage(3)
	require.True(t, ok)
	page, ok = e.SetPageSize(math.MaxInt)
	require.True(t, ok)
	assert.Len(t, page.Rows, 15)
	assert.Equal(t, 1, page.PageInfo.CurrentPage)

	page = e.SetSearchQuery("no such order")
	assert.Empty(t, page.Rows)
	assert.Equal(t, 1, page.PageInfo.TotalPages)
}

func TestNewDefaultsPageSize(t *testing.T) {
	e := New(OrdersSchema, records.DemoOrders(), 0)
	assert.Equal(t, types.DefaultPageSize, e.Page().PageInfo.PageSize)
}

func TestReloadKeepsStateAndClamps(t *testing.T) {
	orders := records.DemoOrders()
	e := New(OrdersSchema, orders, 5)
	e.SetSearchQuery("dashboard")
	e.SortBy(types.FieldAmount, Descending)
	e.GoToPage(3)

	page := e.Reload(orders[:7])

	assert.Equal(t, 2, page.PageInfo.CurrentPage)
	assert.Equal(t, 7, page.TotalFiltered)
	assert.Equal(t, "dashboard", e.Query())
	key, dir := e.Sort()
	assert.Equal(t, types.FieldAmount, key)
	assert.Equal(t, Descending, dir)
}

func TestPageRange(t *testing.T) {
	e := New(OrdersSchema, records.DemoOrders(), 10)

	start, end := e.Page().Range()
	assert.Equal(t, 1, start)
	assert.Equal(t, 10, end)

	page, _ := e.GoToPage(2)
	start, end = page.Range()
	assert.Equal(t, 11, start)
	assert.Equal(t, 15, end)
}

func TestSetFilter(t *testing.T) {
	e := New(UsersSchema, records.DemoUsers(), 10)

	page, err := e.SetFilter(map[string]any{types.FieldStatus: "pending"})
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "7"}, ids(page.Rows))

	page = e.SetSearchQuery("emma")
	assert.Equal(t, []string{"7"}, ids(page.Rows), "search applies on top of the filter")

	e.SetSearchQuery("")
	page, err = e.SetFilter(nil)
	require.NoError(t, err)
	assert.Equal(t, 10, page.TotalFiltered)
}

func TestSetFilterInvalidLeavesState(t *testing.T) {
	e := New(UsersSchema, records.DemoUsers(), 10)
	_, err := e.SetFilter(map[string]any{types.FieldPlan: "pro"})
	require.NoError(t, err)
	before := ids(e.Page().Rows)

	_, err = e.SetFilter(map[string]any{types.FieldPlan: map[string]any{"$nope": 1}})

	assert.Error(t, err)
	assert.Equal(t, before, ids(e.Page().Rows))
}

func TestEnginesAreIndependent(t *testing.T) {
	orders := New(OrdersSchema, records.DemoOrders(), 10)
	users := New(UsersSchema, records.DemoUsers(), 10)

	orders.SetSearchQuery("marie")
	orders.SetSort(types.FieldAmount, false)

	assert.Equal(t, 10, users.Page().TotalFiltered)
	key, _ := users.Sort()
	assert.Empty(t, key)
}

func TestPropertiesOnShuffledAmounts(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	amounts := make([]any, 60)
	for i := range amounts {
		amounts[i] = float64(rng.Intn(5) * 50)
	}
	e := New(OrdersSchema, amountOrders(amounts...), 7)
	e.SetSort(types.FieldAmount, false)
	sorted := e.Projection()

	for i := 1; i < len(sorted); i++ {
		a, b := sorted[i-1], sorted[i]
		require.LessOrEqual(t, a.Number(types.FieldAmount), b.Number(types.FieldAmount))
		if a.Number(types.FieldAmount) == b.Number(types.FieldAmount) {
			var ai, bi int
			fmt.Sscanf(a.ID(), "#%d", &ai)
			fmt.Sscanf(b.ID(), "#%d", &bi)
			assert.Less(t, ai, bi)
		}
	}
}
