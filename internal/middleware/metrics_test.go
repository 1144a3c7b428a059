package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusRecordsRequests(t *testing.T) {
	registry := prometheus.NewRegistry()
	handler := Prometheus(WithRegistry(registry))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/catalogue/search/", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want 418", rec.Code)
	}

	count, err := testutil.GatherAndCount(registry,
		"catsearch_http_requests_total",
		"catsearch_http_request_duration_seconds",
		"catsearch_http_requests_active",
	)
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("gathered %d metric families, want 3", count)
	}
}

func TestPrometheusCustomNamespace(t *testing.T) {
	registry := prometheus.NewRegistry()
	handler := Prometheus(WithRegistry(registry), WithNamespace("custom"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	count, err := testutil.GatherAndCount(registry, "custom_http_requests_total")
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("gathered %d metric families, want 1", count)
	}
}

func TestStatusRecorderDefaultsToOK(t *testing.T) {
	registry := prometheus.NewRegistry()
	handler := Prometheus(WithRegistry(registry))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok")) // implicit 200
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
