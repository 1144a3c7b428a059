package search

import (
	"net/url"

	"github.com/nationalarchives/catalogue-search/internal/rosetta"
	"github.com/nationalarchives/catalogue-search/pkg/forms"
	"github.com/nationalarchives/catalogue-search/pkg/querystring"
)

// ProcessResult feeds the API's aggregation counts back into the
// form's dynamic choice fields so their checkbox items reflect the
// facets of the current result set. Fields with more entries than the
// API returned get a link to the full filter list. The request data
// is used to build that link and is never mutated.
func ProcessResult(form *forms.Form, result *rosetta.SearchResponse, data url.Values) {
	for _, agg := range result.Aggregations {
		name := FieldNameForAggs(agg.Name)
		if name == "" {
			continue
		}
		field, ok := form.Field(name).(*forms.DynamicMultiChoiceField)
		if !ok {
			continue
		}
		entries := replaceInbound(name, agg.Entries)
		field.Reconcile(entries, field.Value())
		if agg.Other > 0 {
			field.SetMoreChoices(true, moreChoicesURL(name, data))
		} else {
			field.SetMoreChoices(false, "")
		}
	}
}

// moreChoicesURL links to the long filter list for a field, keeping
// the rest of the current search in place.
func moreChoicesURL(fieldName string, data url.Values) string {
	longAggs := LongAggsForFieldName(fieldName)
	if longAggs == "" {
		return ""
	}
	qs := querystring.Clone(data)
	qs.Set(FieldFilterList, longAggs)
	return "?" + qs.Encode()
}

// replaceInbound rewrites API vocabulary into the values shown to
// users before entries reach a field.
func replaceInbound(fieldName string, entries []forms.AggregationEntry) []forms.AggregationEntry {
	// TODO: #LEVEL drop the substitution once the API serves Department
	if fieldName != FieldLevel {
		return entries
	}
	out := make([]forms.AggregationEntry, len(entries))
	for i, e := range entries {
		if e.Value == "Lettercode" {
			e.Value = "Department"
		}
		out[i] = e
	}
	return out
}
