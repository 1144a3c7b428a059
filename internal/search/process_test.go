package search

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nationalarchives/catalogue-search/internal/rosetta"
	"github.com/nationalarchives/catalogue-search/pkg/forms"
)

func TestProcessResultUpdatesDynamicFields(t *testing.T) {
	form := NewTNASearchForm()
	form.Bind(url.Values{
		FieldGroup:   {BucketTNA},
		FieldSubject: {"Army"},
	})
	if !form.IsValid() {
		t.Fatalf("form failed validation: %v", form.Errors())
	}

	result := &rosetta.SearchResponse{
		Aggregations: []rosetta.Aggregation{
			{
				Name: "subject",
				Entries: []forms.AggregationEntry{
					{Value: "Army", Count: 150},
					{Value: "Navy", Count: 75},
				},
			},
		},
	}
	ProcessResult(form, result, url.Values{FieldQ: {"ufo"}})

	field := form.Field(FieldSubject).(*forms.DynamicMultiChoiceField)
	items, err := field.Items()
	if err != nil {
		t.Fatal(err)
	}
	want := []forms.Item{
		{Text: "Army (150)", Value: "Army", Checked: true},
		{Text: "Navy (75)", Value: "Navy"},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Errorf("subject items mismatch (-want +got):\n%s", diff)
	}
	if field.MoreChoicesAvailable() {
		t.Error("MoreChoicesAvailable() = true with other=0")
	}
}

func TestProcessResultLevelSubstitution(t *testing.T) {
	form := NewTNASearchForm()
	form.Bind(url.Values{
		FieldGroup: {BucketTNA},
		FieldLevel: {"Department", "Division"},
	})
	if !form.IsValid() {
		t.Fatalf("form failed validation: %v", form.Errors())
	}

	result := &rosetta.SearchResponse{
		Aggregations: []rosetta.Aggregation{
			{
				Name: "level",
				Entries: []forms.AggregationEntry{
					{Value: "Lettercode", Count: 100},
				},
			},
		},
	}
	ProcessResult(form, result, url.Values{})

	field := form.Field(FieldLevel).(*forms.DynamicMultiChoiceField)
	items, err := field.Items()
	if err != nil {
		t.Fatal(err)
	}
	// the queried value missing from the response keeps a zero count
	want := []forms.Item{
		{Text: "Department (100)", Value: "Department", Checked: true},
		{Text: "Division (0)", Value: "Division", Checked: true},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Errorf("level items mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessResultMoreChoicesLink(t *testing.T) {
	form := NewTNASearchForm()
	form.Bind(url.Values{FieldGroup: {BucketTNA}})
	if !form.IsValid() {
		t.Fatalf("form failed validation: %v", form.Errors())
	}

	result := &rosetta.SearchResponse{
		Aggregations: []rosetta.Aggregation{
			{
				Name:    "collection",
				Entries: []forms.AggregationEntry{{Value: "WO", Count: 10}},
				Other:   42,
			},
		},
	}
	ProcessResult(form, result, url.Values{FieldQ: {"ufo"}})

	field := form.Field(FieldCollection).(*forms.DynamicMultiChoiceField)
	if !field.MoreChoicesAvailable() {
		t.Fatal("MoreChoicesAvailable() = false with other=42")
	}
	href := field.MoreChoicesURL()
	if !strings.Contains(href, "filter_list=longCollection") {
		t.Errorf("more choices url = %q, missing filter_list", href)
	}
	if !strings.Contains(href, "q=ufo") {
		t.Errorf("more choices url = %q, lost the query", href)
	}
}

func TestProcessResultIgnoresUnknownAggregations(t *testing.T) {
	form := NewNonTNASearchForm()
	form.Bind(url.Values{FieldGroup: {BucketNonTNA}})
	if !form.IsValid() {
		t.Fatalf("form failed validation: %v", form.Errors())
	}

	result := &rosetta.SearchResponse{
		Aggregations: []rosetta.Aggregation{
			{Name: "somethingElse", Entries: []forms.AggregationEntry{{Value: "x", Count: 1}}},
		},
	}
	// must not panic on aggregations without a matching field
	ProcessResult(form, result, url.Values{})
}
