package rosetta

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const defaultTimeout = 30 * time.Second

// Client talks to the Rosetta search API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
	tracer  trace.Tracer
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// WithLogger replaces the default logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// NewClient returns a client for the API at baseURL, which should not
// carry a trailing slash.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  slog.Default(),
		tracer:  otel.Tracer("rosetta"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchRequest describes one /search call.
type SearchRequest struct {
	Query          string
	Page           int
	ResultsPerPage int
	Sort           string
	Filter         []string
	Aggs           []string
	Digitised      bool

	// KnownBuckets lists the bucket keys the caller has configured.
	// A first page with no records still counts as found when one of
	// these buckets reports hits.
	KnownBuckets []string
}

// values encodes the request as API query parameters. Empty values
// are dropped so the API applies its defaults, and "from" is only
// sent when a page of results was actually asked for.
func (r SearchRequest) values() url.Values {
	v := url.Values{}
	query := r.Query
	if query == "" {
		query = "*"
	}
	v.Set("q", query)
	v.Set("size", strconv.Itoa(r.ResultsPerPage))
	if r.Sort != "" {
		v.Set("sort", r.Sort)
	}
	if r.ResultsPerPage > 0 {
		v.Set("from", strconv.Itoa((r.Page-1)*r.ResultsPerPage))
	}
	for _, f := range r.Filter {
		v.Add("filter", f)
	}
	for _, a := range r.Aggs {
		v.Add("aggs", a)
	}
	if r.Digitised {
		v.Set("digitised", "true")
	}
	return v
}

// Search runs a catalogue search. A first page that matches nothing
// in any known bucket returns ErrNotFound.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	ctx, span := c.tracer.Start(ctx, "rosetta.search",
		trace.WithAttributes(
			attribute.String("search.query", req.Query),
			attribute.Int("search.page", req.Page),
		))
	defer span.End()

	u := c.baseURL + "/search?" + req.values().Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: c.baseURL + "/search"}
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	if data, buckets := hasEnvelope(raw); !data || !buckets {
		return nil, fmt.Errorf("search response missing data or buckets")
	}

	result, err := decodeResponse(raw)
	if err != nil {
		return nil, err
	}

	if len(result.Data) == 0 && req.Page == 1 && !hasBucketHits(result, req.KnownBuckets) {
		c.logger.Info("search returned no results", "query", req.Query)
		return nil, ErrNotFound
	}

	return result, nil
}

func decodeResponse(raw map[string]json.RawMessage) (*SearchResponse, error) {
	result := &SearchResponse{}
	fields := map[string]any{
		"data":         &result.Data,
		"aggregations": &result.Aggregations,
		"buckets":      &result.Buckets,
		"stats":        &result.Stats,
	}
	for key, dst := range fields {
		msg, ok := raw[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(msg, dst); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", key, err)
		}
	}
	return result, nil
}

// hasBucketHits reports whether the group bucket counts include a
// non-zero entry for one of the configured buckets.
func hasBucketHits(result *SearchResponse, known []string) bool {
	counts := result.BucketCounts()
	for _, key := range known {
		if counts[key] > 0 {
			return true
		}
	}
	return false
}
