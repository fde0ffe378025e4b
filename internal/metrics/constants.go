package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Shop metric names
const (
	MetricNameDaysAdvanced   = "shop_days_advanced_total"
	MetricNameTickFailures   = "shop_tick_failures_total"
	MetricNameTickDuration   = "shop_tick_duration_seconds"
	MetricNameItemsUpdated   = "shop_items_updated_total"
	MetricNameItemsInStock   = "shop_items_in_stock"
	MetricNameCurrentDay     = "shop_current_day"
	MetricNameItemsAdded     = "shop_items_added_total"
	MetricNameExpiredItems   = "shop_items_past_sell_by"
	MetricNameAverageQuality = "shop_average_quality"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Shop metric help text
const (
	HelpTextDaysAdvanced   = "Total number of simulated days the shop has advanced"
	HelpTextTickFailures   = "Total number of day ticks rejected by item preconditions"
	HelpTextTickDuration   = "Time spent applying one day's update to the stock"
	HelpTextItemsUpdated   = "Total number of item updates applied, by category"
	HelpTextItemsInStock   = "Number of items currently stocked, by category"
	HelpTextCurrentDay     = "Current simulated day"
	HelpTextItemsAdded     = "Total number of items added to the stock, by category"
	HelpTextExpiredItems   = "Number of stocked items past their sell-by date, by category"
	HelpTextAverageQuality = "Average quality of stocked items, by category"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelCategory = "category"
	LabelReason   = "reason"
)

// ============================================================================
// Buckets
// ============================================================================

var (
	HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
	TickLatencyBuckets = []float64{.00001, .0001, .001, .01, .1}
)
