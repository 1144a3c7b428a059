package search

import (
	"fmt"

	"github.com/nationalarchives/catalogue-search/pkg/forms"
)

// Params carries the query parameters sent to the search API beyond
// the query string itself.
type Params struct {
	Filter    []string
	Aggs      []string
	Digitised bool
}

// dateFilterFormats maps date field names to their API filter
// templates.
var dateFilterFormats = map[string]string{
	FieldCoveringDateFrom: "coveringFromDate:(>=%d-%d-%d)",
	FieldCoveringDateTo:   "coveringToDate:(<=%d-%d-%d)",
	FieldOpeningDateFrom:  "openingFromDate:(>=%d-%d-%d)",
	FieldOpeningDateTo:    "openingToDate:(<=%d-%d-%d)",
}

// BuildParams assembles the API parameters for a validated form and
// its bucket. Filters cover the bucket group, dates and every
// selected value of the dynamic choice fields; aggs asks for the
// checkbox counts the bucket displays.
func BuildParams(form *forms.Form, bucket *Bucket) Params {
	params := Params{
		Aggs:   append([]string(nil), bucket.Aggregations...),
		Filter: []string{"group:" + bucket.Key},
	}

	if bucket.Key == BucketNonTNA {
		params.Filter = append(params.Filter, filterDatatypeRecord)
	}

	params.Filter = append(params.Filter, dateFilters(form)...)

	for _, name := range form.Names() {
		field, ok := form.Field(name).(*forms.DynamicMultiChoiceField)
		if !ok {
			continue
		}
		filterName := AggsForFieldName(name)
		if filterName == "" {
			continue
		}
		for _, value := range replaceOutbound(name, field.Cleaned()) {
			params.Filter = append(params.Filter, filterName+":"+value)
		}
	}

	if bucket.Key == BucketTNA {
		if online, ok := form.Field(FieldOnline).(*forms.ChoiceField); ok && online.Cleaned() == "true" {
			params.Digitised = true
		}
	}

	return params
}

func dateFilters(form *forms.Form) []string {
	var filters []string
	for _, name := range form.Names() {
		format, ok := dateFilterFormats[name]
		if !ok {
			continue
		}
		field, ok := form.Field(name).(*forms.DateField)
		if !ok {
			continue
		}
		if date, ok := field.Cleaned(); ok {
			filters = append(filters, fmt.Sprintf(format, date.Year(), int(date.Month()), date.Day()))
		}
	}
	return filters
}

// replaceOutbound rewrites user-facing values into the vocabulary the
// API expects before they are sent as filters.
func replaceOutbound(fieldName string, values []string) []string {
	// TODO: #LEVEL drop the substitution once the API serves Department
	if fieldName != FieldLevel {
		return values
	}
	out := make([]string, len(values))
	for i, v := range values {
		if v == "Department" {
			out[i] = "Lettercode"
		} else {
			out[i] = v
		}
	}
	return out
}
