package views

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nationalarchives/catalogue-search/internal/rosetta"
	"github.com/nationalarchives/catalogue-search/internal/search"
	"github.com/nationalarchives/catalogue-search/pkg/forms"
)

// stubSearcher records the last request and returns a canned
// response or error.
type stubSearcher struct {
	lastReq  rosetta.SearchRequest
	response *rosetta.SearchResponse
	err      error
}

func (s *stubSearcher) Search(ctx context.Context, req rosetta.SearchRequest) (*rosetta.SearchResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okResponse() *rosetta.SearchResponse {
	return &rosetta.SearchResponse{
		Data: []rosetta.Record{{}},
		Aggregations: []rosetta.Aggregation{
			{Name: "subject", Entries: []forms.AggregationEntry{{Value: "Army", Count: 150}}},
		},
		Buckets: []rosetta.BucketGroup{
			{Name: "group", Entries: []rosetta.BucketEntry{{Value: "tna", Count: 100}}},
		},
		Stats: rosetta.Stats{Total: 100, Results: 20},
	}
}

func doSearch(t *testing.T, stub *stubSearcher, target string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewSearchHandler(stub, testLogger())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	return body
}

func TestSearchDefaultsToTNABucket(t *testing.T) {
	stub := &stubSearcher{response: okResponse()}
	rec := doSearch(t, stub, "/catalogue/search/")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	found := false
	for _, f := range stub.lastReq.Filter {
		if f == "group:tna" {
			found = true
		}
	}
	if !found {
		t.Errorf("filters = %v, missing group:tna", stub.lastReq.Filter)
	}
	if stub.lastReq.Query != "" {
		t.Errorf("query = %q, want empty", stub.lastReq.Query)
	}
	if stub.lastReq.ResultsPerPage != search.ResultsPerPage {
		t.Errorf("size = %d, want %d", stub.lastReq.ResultsPerPage, search.ResultsPerPage)
	}
}

func TestSearchEmptyGroupGetsDefault(t *testing.T) {
	stub := &stubSearcher{response: okResponse()}
	rec := doSearch(t, stub, "/catalogue/search/?group=")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	found := false
	for _, f := range stub.lastReq.Filter {
		if f == "group:tna" {
			found = true
		}
	}
	if !found {
		t.Errorf("filters = %v, missing group:tna", stub.lastReq.Filter)
	}
}

func TestSearchInvalidPage(t *testing.T) {
	for _, page := range []string{"abc", "0", "-1"} {
		stub := &stubSearcher{response: okResponse()}
		rec := doSearch(t, stub, "/catalogue/search/?page="+page)
		if rec.Code != http.StatusNotFound {
			t.Errorf("page=%s: status = %d, want 404", page, rec.Code)
		}
	}
}

func TestSearchPageBeyondTotal(t *testing.T) {
	stub := &stubSearcher{response: okResponse()} // 100 results, 5 pages
	rec := doSearch(t, stub, "/catalogue/search/?page=6")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestSearchMultiValuedChoiceFieldRejected(t *testing.T) {
	stub := &stubSearcher{response: okResponse()}
	rec := doSearch(t, stub, "/catalogue/search/?group=tna&sort=title:asc&sort=title:desc")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSearchInvalidFormSkipsAPI(t *testing.T) {
	stub := &stubSearcher{response: okResponse()}
	rec := doSearch(t, stub, "/catalogue/search/?group=tna&level=NotALevel")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if stub.lastReq.Page != 0 {
		t.Error("API was called for an invalid form")
	}
	body := decodeBody(t, rec)
	form := body["form"].(map[string]any)
	if form["valid"] != false {
		t.Error("form reported valid")
	}
}

func TestSearchNoResults(t *testing.T) {
	stub := &stubSearcher{err: rosetta.ErrNotFound}
	rec := doSearch(t, stub, "/catalogue/search/?q=gibberish")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if results := body["results"].([]any); len(results) != 0 {
		t.Errorf("results = %v, want empty", results)
	}
	if _, ok := body["stats"]; ok {
		t.Error("stats present in no-results response")
	}
}

func TestSearchUpstreamError(t *testing.T) {
	stub := &stubSearcher{err: &rosetta.StatusError{StatusCode: 500, URL: "http://api"}}
	rec := doSearch(t, stub, "/catalogue/search/")

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}

func TestSearchResponseBody(t *testing.T) {
	stub := &stubSearcher{response: okResponse()}
	rec := doSearch(t, stub, "/catalogue/search/?q=ufo&subject=Army")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)

	stats := body["stats"].(map[string]any)
	if stats["total"].(float64) != 100 {
		t.Errorf("stats.total = %v, want 100", stats["total"])
	}

	rr := body["results_range"].(map[string]any)
	if rr["from"].(float64) != 1 || rr["to"].(float64) != 20 {
		t.Errorf("results_range = %v", rr)
	}

	selected := body["selected_filters"].([]any)
	if len(selected) != 1 {
		t.Fatalf("selected_filters = %v, want one entry", selected)
	}
	first := selected[0].(map[string]any)
	if first["label"] != "Subject: Army" {
		t.Errorf("selected filter label = %v", first["label"])
	}

	buckets := body["buckets"].([]any)
	if len(buckets) != 2 {
		t.Fatalf("buckets = %v, want two entries", buckets)
	}
	tna := buckets[0].(map[string]any)
	if tna["name"] != "Records at the National Archives (100)" {
		t.Errorf("tna bucket name = %v", tna["name"])
	}
	if tna["current"] != true {
		t.Error("tna bucket not current")
	}
}

func TestSearchNonTNABucket(t *testing.T) {
	stub := &stubSearcher{response: okResponse()}
	rec := doSearch(t, stub, "/catalogue/search/?group=nonTna&held_by=London+Metropolitan+Archives")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	wantFilters := map[string]bool{
		"group:nonTna":                        false,
		"datatype:record":                     false,
		"heldBy:London Metropolitan Archives": false,
	}
	for _, f := range stub.lastReq.Filter {
		if _, ok := wantFilters[f]; ok {
			wantFilters[f] = true
		}
	}
	for f, seen := range wantFilters {
		if !seen {
			t.Errorf("filters = %v, missing %q", stub.lastReq.Filter, f)
		}
	}
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != `{"status":"ok"}` {
		t.Errorf("body = %q", got)
	}
}
