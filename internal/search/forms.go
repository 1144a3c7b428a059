package search

import "github.com/nationalarchives/catalogue-search/pkg/forms"

// sortChoices lists the orderings the results page offers.
var sortChoices = []forms.Choice{
	{Value: SortRelevance, Label: "Relevance"},
	{Value: SortDateDesc, Label: "Date (newest first)"},
	{Value: SortDateAsc, Label: "Date (oldest first)"},
	{Value: SortTitleAsc, Label: "Title (A–Z)"},
	{Value: SortTitleDesc, Label: "Title (Z–A)"},
}

// onlineChoices backs the availability filter. The empty value means
// no restriction.
var onlineChoices = []forms.Choice{
	{Value: "", Label: "All records"},
	{Value: "true", Label: "Available online only"},
}

func levelChoices() []forms.Choice {
	choices := make([]forms.Choice, 0, len(tnaLevels))
	for _, level := range tnaLevels {
		choices = append(choices, forms.Choice{Value: level, Label: level})
	}
	return choices
}

// baseFieldDefs holds the fields shared by every catalogue search form.
func baseFieldDefs() []forms.FieldDef {
	return []forms.FieldDef{
		{Name: FieldGroup, Field: forms.NewChoiceField(CatalogueBuckets().AsChoices())},
		{Name: FieldSort, Field: forms.NewChoiceField(sortChoices)},
		{Name: FieldQ, Field: forms.NewTextField()},
		{Name: FieldFilterList, Field: forms.NewChoiceField(LongAggsChoices())},
	}
}

func coveringDateDefs() []forms.FieldDef {
	return []forms.FieldDef{
		{Name: FieldCoveringDateFrom, Field: forms.NewFromDateField(
			forms.WithLabel("From"),
			forms.WithActiveFilterLabel("Record date from"),
		)},
		{Name: FieldCoveringDateTo, Field: forms.NewToDateField(
			forms.WithLabel("To"),
			forms.WithActiveFilterLabel("Record date to"),
		)},
	}
}

// NewTNASearchForm builds the form used for the tna bucket. Level
// validates against the fixed catalogue hierarchy before the API is
// queried; collection accepts any lettercode, with the known ones
// given friendlier labels.
func NewTNASearchForm() *forms.Form {
	defs := baseFieldDefs()
	defs = append(defs,
		forms.FieldDef{Name: FieldLevel, Field: forms.NewDynamicMultiChoiceField(
			levelChoices(),
			forms.WithLabel("Filter by levels"),
			forms.WithValidateInput(true),
			forms.WithActiveFilterLabel("Level"),
			forms.WithMoreChoicesText("See more levels"),
		)},
		forms.FieldDef{Name: FieldCollection, Field: forms.NewDynamicMultiChoiceField(
			collectionChoices,
			forms.WithLabel("Collections"),
			forms.WithValidateInput(false),
			forms.WithActiveFilterLabel("Collection"),
			forms.WithMoreChoicesText("See more collections"),
		)},
		forms.FieldDef{Name: FieldSubject, Field: forms.NewDynamicMultiChoiceField(
			nil,
			forms.WithLabel("Subjects"),
			forms.WithActiveFilterLabel("Subject"),
			forms.WithMoreChoicesText("See more subjects"),
		)},
		forms.FieldDef{Name: FieldOnline, Field: forms.NewChoiceField(
			onlineChoices,
			forms.WithActiveFilterLabel("Online only"),
		)},
		forms.FieldDef{Name: FieldClosure, Field: forms.NewDynamicMultiChoiceField(
			nil,
			forms.WithLabel("Closure status"),
			forms.WithActiveFilterLabel("Closure status"),
		)},
	)
	defs = append(defs, coveringDateDefs()...)
	defs = append(defs,
		forms.FieldDef{Name: FieldOpeningDateFrom, Field: forms.NewFromDateField(
			forms.WithLabel("From"),
			forms.WithActiveFilterLabel("Opening date from"),
		)},
		forms.FieldDef{Name: FieldOpeningDateTo, Field: forms.NewToDateField(
			forms.WithLabel("To"),
			forms.WithActiveFilterLabel("Opening date to"),
		)},
	)
	return forms.New(defs,
		forms.DateRange(FieldCoveringDateFrom, FieldCoveringDateTo, "Record dates"),
		forms.DateRange(FieldOpeningDateFrom, FieldOpeningDateTo, "Record opening dates"),
	)
}

// NewNonTNASearchForm builds the form used for the nonTna bucket,
// where records are described by the archive that holds them.
func NewNonTNASearchForm() *forms.Form {
	defs := baseFieldDefs()
	defs = append(defs, coveringDateDefs()...)
	defs = append(defs,
		forms.FieldDef{Name: FieldHeldBy, Field: forms.NewDynamicMultiChoiceField(
			nil,
			forms.WithLabel("Held by"),
			forms.WithActiveFilterLabel("Held by"),
			forms.WithMoreChoicesText("See more held by"),
		)},
	)
	return forms.New(defs,
		forms.DateRange(FieldCoveringDateFrom, FieldCoveringDateTo, "Record dates"),
	)
}

// FormForBucket returns the form matching a bucket key. Only the tna
// bucket carries the full filter set; every other group searches with
// the holding-archive form.
func FormForBucket(key string) *forms.Form {
	if key == BucketTNA {
		return NewTNASearchForm()
	}
	return NewNonTNASearchForm()
}
