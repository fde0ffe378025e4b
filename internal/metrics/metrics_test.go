package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

func TestObserveStock(t *testing.T) {
	ObserveStock([]domain.Item{
		{Name: "foo", SellIn: 3, Quality: 10},
		{Name: "Conjured bar", SellIn: -1, Quality: 20},
		{Name: "Aged Brie", SellIn: -2, Quality: 50},
		{Name: "Sulfuras, Hand of Ragnaros", SellIn: 0, Quality: 80},
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(ItemsInStock.WithLabelValues("ordinary")))
	assert.Equal(t, 1.0, testutil.ToFloat64(ExpiredItems.WithLabelValues("ordinary")))
	assert.Equal(t, 15.0, testutil.ToFloat64(AverageQuality.WithLabelValues("ordinary")))
	assert.Equal(t, 1.0, testutil.ToFloat64(ItemsInStock.WithLabelValues("aged")))
	assert.Equal(t, 80.0, testutil.ToFloat64(AverageQuality.WithLabelValues("legendary")))
	assert.Equal(t, 0.0, testutil.ToFloat64(ItemsInStock.WithLabelValues("admission")))
	assert.Equal(t, 0.0, testutil.ToFloat64(AverageQuality.WithLabelValues("admission")))
}

func TestRecordTick(t *testing.T) {
	before := testutil.ToFloat64(DaysAdvanced)
	updatedBefore := testutil.ToFloat64(ItemsUpdated.WithLabelValues("aged"))

	RecordTick(&domain.DayReport{
		Day:        4,
		Categories: map[domain.Category]int{domain.CategoryAged: 2},
		Items:      []domain.Item{{Name: "Aged Brie", SellIn: 1, Quality: 3}},
	}, 0.001)

	assert.Equal(t, before+1, testutil.ToFloat64(DaysAdvanced))
	assert.Equal(t, updatedBefore+2, testutil.ToFloat64(ItemsUpdated.WithLabelValues("aged")))
	assert.Equal(t, 4.0, testutil.ToFloat64(CurrentDay))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/history/{day}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/history/{day}", "418"))

	req := httptest.NewRequest(http.MethodGet, "/history/12", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/history/{day}", "418")))
}
