package rosetta

import (
	"encoding/json"

	"github.com/nationalarchives/catalogue-search/pkg/forms"
)

// Record is a single search result. The API nests the display fields
// under a "@template.details" envelope.
type Record struct {
	Template struct {
		Details RecordDetails `json:"details"`
	} `json:"@template"`
}

// RecordDetails carries the fields shown on the results page.
type RecordDetails struct {
	IAID          string `json:"iaid"`
	Source        string `json:"source"`
	Reference     string `json:"referenceNumber"`
	Summary       string `json:"summaryTitle"`
	Description   string `json:"description"`
	CoveringDates string `json:"coveringDates"`
	HeldBy        string `json:"heldBy"`
	Level         string `json:"level"`
}

// Aggregation is one facet block of the response. Entry counts use the
// doc_count key, matching forms.AggregationEntry.
type Aggregation struct {
	Name    string                   `json:"name"`
	Entries []forms.AggregationEntry `json:"entries"`
	Total   int                      `json:"total"`
	Other   int                      `json:"other"`
}

// BucketEntry is one group count from the buckets block. Unlike facet
// entries these use a plain count key.
type BucketEntry struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// BucketGroup is one named block of bucket counts.
type BucketGroup struct {
	Name    string        `json:"name"`
	Entries []BucketEntry `json:"entries"`
}

// Stats reports the overall hit count and the number of records in
// this page of results.
type Stats struct {
	Total   int `json:"total"`
	Results int `json:"results"`
}

// SearchResponse is the decoded /search envelope.
type SearchResponse struct {
	Data         []Record      `json:"data"`
	Aggregations []Aggregation `json:"aggregations"`
	Buckets      []BucketGroup `json:"buckets"`
	Stats        Stats         `json:"stats"`
}

// BucketCounts flattens the group bucket block into a key to count
// map for display.
func (r *SearchResponse) BucketCounts() map[string]int {
	counts := map[string]int{}
	for _, group := range r.Buckets {
		if group.Name != "group" {
			continue
		}
		for _, entry := range group.Entries {
			counts[entry.Value] = entry.Count
		}
	}
	return counts
}

// hasEnvelope reports whether the raw response carried both mandatory
// top level keys. Their absence means the API contract changed or an
// intermediary served something else entirely.
func hasEnvelope(raw map[string]json.RawMessage) (data, buckets bool) {
	_, data = raw["data"]
	_, buckets = raw["buckets"]
	return data, buckets
}
