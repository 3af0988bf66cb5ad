package types

// Themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Dashboard widget identifiers, in default layout order.
const (
	WidgetStats        = "stats"
	WidgetRevenueChart = "revenue-chart"
	WidgetTraffic      = "traffic-chart"
	WidgetActivity     = "activity"
	WidgetOrdersTable  = "orders-table"
)

// DefaultLayout is the widget order used until the user rearranges it.
var DefaultLayout = []string{
	WidgetStats,
	WidgetRevenueChart,
	WidgetTraffic,
	WidgetActivity,
	WidgetOrdersTable,
}

// DefaultPageSize is the number of rows per table page.
const DefaultPageSize = 10

// MaxPageSize bounds the saved page_size so it survives a JSON number
// round trip exactly.
const MaxPageSize = 1 << 20

// Settings is the single record stored under SettingsCollection.
type Settings struct {
	Theme    string   `json:"theme"`
	Layout   []string `json:"layout"`
	PageSize int      `json:"page_size"`
	Accent   string   `json:"accent"`
}

// DefaultSettings returns the settings used when none have been saved.
func DefaultSettings() Settings {
	layout := make([]string, len(DefaultLayout))
	copy(layout, DefaultLayout)
	return Settings{
		Theme:    ThemeLight,
		Layout:   layout,
		PageSize: DefaultPageSize,
		Accent:   "blue",
	}
}

// IsWidget reports whether id names a dashboard widget.
func IsWidget(id string) bool {
	for _, w := range DefaultLayout {
		if w == id {
			return true
		}
	}
	return false
}
