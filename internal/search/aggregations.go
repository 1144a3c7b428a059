package search

import (
	"log/slog"

	"github.com/nationalarchives/catalogue-search/pkg/forms"
)

// Aggregation maps a form field to the keys the search API uses when
// requesting aggregated counts for it. LongAggs is the extended,
// unbounded variant used when the user asks to see more options than
// the default aggregation returns; it is empty when the field has no
// extended variant.
type Aggregation struct {
	FieldName string
	Aggs      string
	LongAggs  string
}

// aggregations is the immutable field-to-aggregation lookup table,
// built once and queried by the pure functions below.
var aggregations = []Aggregation{
	{FieldName: FieldLevel, Aggs: "level", LongAggs: ""},
	{FieldName: FieldCollection, Aggs: "collection", LongAggs: "longCollection"},
	{FieldName: FieldHeldBy, Aggs: "heldBy", LongAggs: "longHeldBy"},
	{FieldName: FieldClosure, Aggs: "closure", LongAggs: ""},
	{FieldName: FieldSubject, Aggs: "subject", LongAggs: "longSubject"},
}

// LongAggsChoices returns the input choices for the long-filter
// chooser: one entry per aggregation supporting an extended variant,
// preceded by a no-filter default.
func LongAggsChoices() []forms.Choice {
	choices := []forms.Choice{{Value: "", Label: "No filter"}}
	for _, agg := range aggregations {
		if agg.LongAggs != "" {
			choices = append(choices, forms.Choice{Value: agg.LongAggs, Label: agg.FieldName})
		}
	}
	return choices
}

// FieldNameForLongAggs returns the form field name behind a long
// aggregation key, or "" when the key is not configured.
func FieldNameForLongAggs(longAggs string) string {
	for _, agg := range aggregations {
		if longAggs != "" && agg.LongAggs == longAggs {
			return agg.FieldName
		}
	}
	return ""
}

// LongAggsForFieldName returns the long aggregation key for a form
// field, or "" when the field has no extended variant. Callers check
// the field reported more choices before asking; a miss here is
// unexpected.
func LongAggsForFieldName(fieldName string) string {
	for _, agg := range aggregations {
		if agg.FieldName == fieldName && agg.LongAggs != "" {
			return agg.LongAggs
		}
	}
	slog.Warn("long aggregation name not found for field", "field", fieldName)
	return ""
}

// AggsForFieldName returns the aggregation key for a form field, or
// "" when the field has no aggregation.
func AggsForFieldName(fieldName string) string {
	for _, agg := range aggregations {
		if agg.FieldName == fieldName {
			return agg.Aggs
		}
	}
	return ""
}

// FieldNameForAggs returns the form field name behind an aggregation
// key, or "" when the key is not configured.
func FieldNameForAggs(aggs string) string {
	for _, agg := range aggregations {
		if agg.Aggs == aggs {
			return agg.FieldName
		}
	}
	return ""
}
