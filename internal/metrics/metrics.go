package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Shop Metrics
var (
	DaysAdvanced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDaysAdvanced,
			Help: HelpTextDaysAdvanced,
		},
	)

	TickFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTickFailures,
			Help: HelpTextTickFailures,
		},
		[]string{LabelReason},
	)

	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameTickDuration,
			Help:    HelpTextTickDuration,
			Buckets: TickLatencyBuckets,
		},
	)

	ItemsUpdated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsUpdated,
			Help: HelpTextItemsUpdated,
		},
		[]string{LabelCategory},
	)

	ItemsAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsAdded,
			Help: HelpTextItemsAdded,
		},
		[]string{LabelCategory},
	)

	ItemsInStock = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameItemsInStock,
			Help: HelpTextItemsInStock,
		},
		[]string{LabelCategory},
	)

	ExpiredItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameExpiredItems,
			Help: HelpTextExpiredItems,
		},
		[]string{LabelCategory},
	)

	AverageQuality = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameAverageQuality,
			Help: HelpTextAverageQuality,
		},
		[]string{LabelCategory},
	)

	CurrentDay = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCurrentDay,
			Help: HelpTextCurrentDay,
		},
	)
)
