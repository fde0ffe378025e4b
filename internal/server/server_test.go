package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/handler"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/item"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	svc, err := inventory.NewService(context.Background(), item.DefaultConfig().Stock(), 5)
	require.NoError(t, err)

	ts := httptest.NewServer(NewServer(":0", svc).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestServer_InventoryLifecycle(t *testing.T) {
	ts := newTestServer(t)

	// Opening stock
	resp, err := http.Get(ts.URL + "/api/v1/inventory")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(HeaderRequestID))

	var inv handler.InventoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&inv))
	assert.Equal(t, 0, inv.Day)
	require.Len(t, inv.Items, 9)

	// Stock a conjured item
	resp, err = http.Post(ts.URL+"/api/v1/inventory/items", "application/json",
		strings.NewReader(`{"name":"Conjured Aged Brie","sell_in":1,"quality":10}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Advance one day
	resp, err = http.Post(ts.URL+"/api/v1/inventory/tick", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report domain.DayReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 1, report.Day)
	require.Len(t, report.Items, 10)
	assert.Equal(t, domain.Item{Name: "Conjured Aged Brie", SellIn: 0, Quality: 12}, report.Items[9])
	assert.Equal(t, 2, report.Categories[domain.CategoryLegendary])

	// The recorded day can be fetched again
	resp, err = http.Get(ts.URL + "/api/v1/inventory/history/1")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var again domain.DayReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&again))
	assert.Equal(t, report.TickID, again.TickID)
}

func TestServer_Errors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"unknown day", http.MethodGet, "/api/v1/inventory/history/42", "", http.StatusNotFound},
		{"malformed day", http.MethodGet, "/api/v1/inventory/history/soon", "", http.StatusBadRequest},
		{"legendary with wrong quality", http.MethodPost, "/api/v1/inventory/items",
			`{"name":"Sulfuras, Hand of Ragnaros","sell_in":0,"quality":40}`, http.StatusUnprocessableEntity},
		{"ordinary above max quality", http.MethodPost, "/api/v1/inventory/items",
			`{"name":"foo","sell_in":5,"quality":80}`, http.StatusBadRequest},
		{"oversized body", http.MethodPost, "/api/v1/inventory/items",
			`{"name":"` + strings.Repeat("x", MaxRequestBodyBytes) + `"}`, http.StatusBadRequest},
		{"unknown route", http.MethodGet, "/api/v1/prices", "", http.StatusNotFound},
		{"wrong method", http.MethodGet, "/api/v1/inventory/tick", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, ts.URL+tt.path, strings.NewReader(tt.body))
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestServer_PublicEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(HeaderRequestID))

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/api/v1/classify?name=Backstage+passes+to+a+TAFKAL80ETC+concert")
	require.NoError(t, err)
	defer resp.Body.Close()
	var cls handler.ClassifyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cls))
	assert.Equal(t, domain.CategoryAdmission, cls.Category)
	assert.False(t, cls.Conjured)
}
