package search

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/nationalarchives/catalogue-search/pkg/forms"
	"github.com/nationalarchives/catalogue-search/pkg/querystring"
)

// SelectedFilter is one applied filter shown above the results, with
// a link that removes just that filter from the current search.
type SelectedFilter struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Title string `json:"title"`
}

// SelectedFilters builds the applied-filter list for a bound form.
// The request data supplies the query string the removal links are
// derived from and is never mutated.
func SelectedFilters(form *forms.Form, data url.Values) []SelectedFilter {
	var filters []SelectedFilter

	if online, ok := form.Field(FieldOnline).(*forms.ChoiceField); ok && online.Cleaned() != "" {
		label := online.ActiveFilterLabel()
		filters = append(filters, SelectedFilter{
			Label: label,
			Href:  "?" + querystring.Remove(data, FieldOnline).Encode(),
			Title: "Remove " + strings.ToLower(label),
		})
	}

	filters = append(filters, dynamicChoiceFilters(form, data)...)
	filters = append(filters, dateFilterLinks(form, data)...)

	return filters
}

func dynamicChoiceFilters(form *forms.Form, data url.Values) []SelectedFilter {
	var filters []SelectedFilter
	for _, name := range form.Names() {
		field, ok := form.Field(name).(*forms.DynamicMultiChoiceField)
		if !ok {
			continue
		}
		labels := field.ConfiguredLabels()
		for _, value := range field.Value() {
			label, ok := labels[value]
			if !ok {
				label = value
			}
			filters = append(filters, SelectedFilter{
				Label: fmt.Sprintf("%s: %s", field.ActiveFilterLabel(), label),
				Href:  "?" + querystring.Toggle(data, name, value).Encode(),
				Title: fmt.Sprintf("Remove %s %s", label, strings.ToLower(field.ActiveFilterLabel())),
			})
		}
	}
	return filters
}

func dateFilterLinks(form *forms.Form, data url.Values) []SelectedFilter {
	var filters []SelectedFilter
	for _, name := range form.Names() {
		field, ok := form.Field(name).(*forms.DateField)
		if !ok {
			continue
		}
		date, ok := field.Cleaned()
		if !ok {
			continue
		}
		label := date.Format(forms.DateDisplayFormat)
		filters = append(filters, SelectedFilter{
			Label: fmt.Sprintf("%s: %s", field.ActiveFilterLabel(), label),
			Href:  "?" + removeDateParts(data, field).Encode(),
			Title: fmt.Sprintf("Remove %s %s", label, strings.ToLower(field.ActiveFilterLabel())),
		})
	}
	return filters
}

// removeDateParts strips every bound part of a date field from the
// query string, so removing "date from 01-06-1970" clears the year,
// month and day parameters together.
func removeDateParts(data url.Values, field *forms.DateField) url.Values {
	qs := querystring.Clone(data)
	parts := field.Parts()
	for _, part := range []string{forms.PartYear, forms.PartMonth, forms.PartDay} {
		if parts.Get(part) == "" {
			continue
		}
		qs = querystring.Remove(qs, field.Name()+field.Separator()+part)
	}
	return qs
}
