package metrics

import (
	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/shop"
)

// ObserveStock refreshes the per-category stock gauges from the current items
func ObserveStock(items []domain.Item) {
	counts := make(map[domain.Category]int, len(domain.Categories))
	expired := make(map[domain.Category]int, len(domain.Categories))
	quality := make(map[domain.Category]int, len(domain.Categories))

	for _, item := range items {
		c := shop.Classify(item.Name).Category
		counts[c]++
		quality[c] += item.Quality
		if item.SellIn < 0 {
			expired[c]++
		}
	}

	for _, c := range domain.Categories {
		label := string(c)
		ItemsInStock.WithLabelValues(label).Set(float64(counts[c]))
		ExpiredItems.WithLabelValues(label).Set(float64(expired[c]))

		avg := 0.0
		if counts[c] > 0 {
			avg = float64(quality[c]) / float64(counts[c])
		}
		AverageQuality.WithLabelValues(label).Set(avg)
	}
}

// RecordTick records a completed day
func RecordTick(report *domain.DayReport, seconds float64) {
	DaysAdvanced.Inc()
	TickDuration.Observe(seconds)
	CurrentDay.Set(float64(report.Day))
	for c, n := range report.Categories {
		ItemsUpdated.WithLabelValues(string(c)).Add(float64(n))
	}
	ObserveStock(report.Items)
}
