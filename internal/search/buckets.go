package search

import (
	"fmt"
	"net/url"

	"github.com/nationalarchives/catalogue-search/pkg/forms"
)

// Bucket keys recognised by the search API's group filter.
const (
	BucketTNA       = "tna"
	BucketDigitised = "digitised"
	BucketNonTNA    = "nonTna"
)

// Bucket is a named partition of the catalogue that users explore
// separately, each with its own aggregation set.
type Bucket struct {
	Key         string
	Label       string
	Description string
	Href        string
	RecordCount int
	IsCurrent   bool

	// Aggregations are the API aggregation keys requested for this
	// bucket.
	Aggregations []string
}

// LabelWithCount returns the display label with the thousands-grouped
// record count appended.
func (b Bucket) LabelWithCount() string {
	return fmt.Sprintf("%s (%s)", b.Label, forms.GroupThousands(b.RecordCount))
}

// Item returns the bucket formatted for the secondary-navigation
// front-end component.
func (b Bucket) Item() BucketItem {
	return BucketItem{
		Name:    b.LabelWithCount(),
		Href:    b.Href,
		Current: b.IsCurrent,
	}
}

// BucketItem is the display record for one bucket tab.
type BucketItem struct {
	Name    string `json:"name"`
	Href    string `json:"href"`
	Current bool   `json:"current"`
}

// BucketList holds the ordered buckets shown for a search.
type BucketList struct {
	Buckets []Bucket
}

// Get returns the bucket with the given key.
func (l *BucketList) Get(key string) (*Bucket, error) {
	for i := range l.Buckets {
		if l.Buckets[i].Key == key {
			return &l.Buckets[i], nil
		}
	}
	return nil, fmt.Errorf("bucket matching the key %q could not be found", key)
}

// UpdateForDisplay refreshes each bucket's count, href and current
// flag from the latest response data.
func (l *BucketList) UpdateForDisplay(query string, counts map[string]int, currentKey string) {
	for i := range l.Buckets {
		b := &l.Buckets[i]
		b.RecordCount = counts[b.Key]
		b.IsCurrent = b.Key == currentKey
		b.Href = "?group=" + b.Key
		if query != "" {
			b.Href += "&q=" + url.QueryEscape(query)
		}
	}
}

// AsChoices returns the buckets as input choices for the group field.
func (l *BucketList) AsChoices() []forms.Choice {
	choices := make([]forms.Choice, 0, len(l.Buckets))
	for _, b := range l.Buckets {
		choices = append(choices, forms.Choice{Value: b.Key, Label: b.Label})
	}
	return choices
}

// Items returns the display records for every bucket tab.
func (l *BucketList) Items() []BucketItem {
	items := make([]BucketItem, 0, len(l.Buckets))
	for _, b := range l.Buckets {
		items = append(items, b.Item())
	}
	return items
}

// CatalogueBuckets returns a fresh copy of the configured catalogue
// buckets. Callers get their own copy because display updates mutate
// counts and hrefs per request.
func CatalogueBuckets() *BucketList {
	return &BucketList{Buckets: []Bucket{
		{
			Key:   BucketTNA,
			Label: "Records at the National Archives",
			Description: "Results for records held at The National Archives " +
				"that match your search term.",
			Href: "#",
			Aggregations: []string{
				AggsForFieldName(FieldLevel),
				AggsForFieldName(FieldCollection),
				AggsForFieldName(FieldClosure),
				AggsForFieldName(FieldSubject),
			},
		},
		{
			Key:   BucketNonTNA,
			Label: "Records at other UK archives",
			Description: "Results for records held at other archives in the UK " +
				"(and not at The National Archives) that match your search term.",
			Href: "#",
			Aggregations: []string{
				AggsForFieldName(FieldHeldBy),
			},
		},
	}}
}
