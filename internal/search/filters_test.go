package search

import (
	"net/url"
	"strings"
	"testing"
)

func TestSelectedFiltersOnline(t *testing.T) {
	form := NewTNASearchForm()
	data := url.Values{
		FieldGroup:  {BucketTNA},
		FieldOnline: {"true"},
	}
	form.Bind(data)
	if !form.IsValid() {
		t.Fatalf("form failed validation: %v", form.Errors())
	}

	filters := SelectedFilters(form, data)
	if len(filters) != 1 {
		t.Fatalf("SelectedFilters() returned %d filters, want 1", len(filters))
	}
	f := filters[0]
	if f.Label != "Online only" {
		t.Errorf("label = %q, want Online only", f.Label)
	}
	if strings.Contains(f.Href, "online=") {
		t.Errorf("href = %q still carries the online param", f.Href)
	}
	if !strings.Contains(f.Href, "group=tna") {
		t.Errorf("href = %q lost the group param", f.Href)
	}
}

func TestSelectedFiltersDynamicChoices(t *testing.T) {
	form := NewTNASearchForm()
	data := url.Values{
		FieldGroup:      {BucketTNA},
		FieldCollection: {"WO", "ZZZ"},
	}
	form.Bind(data)
	if !form.IsValid() {
		t.Fatalf("form failed validation: %v", form.Errors())
	}

	filters := SelectedFilters(form, data)
	if len(filters) != 2 {
		t.Fatalf("SelectedFilters() returned %d filters, want 2", len(filters))
	}

	// configured values use their label, unknown values the raw value
	if want := "Collection: War Office, Armed Forces, Judge Advocate General"; filters[0].Label != want {
		t.Errorf("label = %q, want %q", filters[0].Label, want)
	}
	if want := "Collection: ZZZ"; filters[1].Label != want {
		t.Errorf("label = %q, want %q", filters[1].Label, want)
	}

	// removing one selection keeps the other
	if strings.Contains(filters[0].Href, "collection=WO") {
		t.Errorf("href = %q still carries the removed value", filters[0].Href)
	}
	if !strings.Contains(filters[0].Href, "collection=ZZZ") {
		t.Errorf("href = %q lost the other selection", filters[0].Href)
	}
}

func TestSelectedFiltersDates(t *testing.T) {
	form := NewTNASearchForm()
	data := url.Values{
		FieldGroup:                      {BucketTNA},
		FieldCoveringDateFrom + "-year": {"1970"},
	}
	form.Bind(data)
	if !form.IsValid() {
		t.Fatalf("form failed validation: %v", form.Errors())
	}

	filters := SelectedFilters(form, data)
	if len(filters) != 1 {
		t.Fatalf("SelectedFilters() returned %d filters, want 1", len(filters))
	}
	f := filters[0]
	if want := "Record date from: 01-01-1970"; f.Label != want {
		t.Errorf("label = %q, want %q", f.Label, want)
	}
	if strings.Contains(f.Href, "covering_date_from-year") {
		t.Errorf("href = %q still carries the date part", f.Href)
	}
}

func TestSelectedFiltersEmptyForm(t *testing.T) {
	form := NewTNASearchForm()
	data := url.Values{FieldGroup: {BucketTNA}}
	form.Bind(data)
	if !form.IsValid() {
		t.Fatalf("form failed validation: %v", form.Errors())
	}

	if filters := SelectedFilters(form, data); len(filters) != 0 {
		t.Errorf("SelectedFilters() returned %d filters, want none", len(filters))
	}
}
