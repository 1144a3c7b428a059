package forms

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// defaultMoreChoicesText is the link text shown when the API reports
// more choices than were returned.
const defaultMoreChoicesText = "See more options"

// AggregationEntry is one aggregation bucket from the search API: a
// distinct field value and the number of matching documents.
type AggregationEntry struct {
	Value string `json:"value"`
	Count int    `json:"doc_count"`
}

// DynamicMultiChoiceField is a multi-choice input whose choice list is
// rebuilt from search API aggregation data on every request.
//
// The configured choices given at construction are kept as an
// immutable snapshot; they seed input validation and supply display
// labels. The current choice list starts as a copy of that snapshot
// and is fully replaced by Reconcile once aggregation data is
// available. Values the user selected that the API returned no bucket
// for are preserved with a forced zero count, so the UI can always
// offer a "remove this filter" affordance.
type DynamicMultiChoiceField struct {
	BaseField
	value   []string
	cleaned []string

	choices    []Choice
	configured []Choice

	validateInput bool
	validValues   []string

	labels     map[string]string // memoized configured labels
	reconciled bool

	moreChoicesText      string
	moreChoicesAvailable bool
	moreChoicesURL       string
}

// NewDynamicMultiChoiceField returns an unbound dynamic multi-choice
// field. When choices is non-empty, bound values are validated against
// it unless WithValidateInput(false) is given; when choices is empty,
// input validation is off regardless of options.
func NewDynamicMultiChoiceField(choices []Choice, opts ...Option) *DynamicMultiChoiceField {
	c := newFieldConfig(opts)

	validateInput := len(choices) > 0
	if validateInput && c.validateInput != nil {
		validateInput = *c.validateInput
	}

	moreText := c.moreChoicesText
	if moreText == "" {
		moreText = defaultMoreChoicesText
	}

	f := &DynamicMultiChoiceField{
		BaseField:       newBaseField(c),
		choices:         choices,
		configured:      choices,
		validateInput:   validateInput,
		moreChoicesText: moreText,
	}
	if f.validateInput {
		f.validValues = choiceValues(choices)
	}
	return f
}

// Bind binds every value of the input under the field's own key.
func (f *DynamicMultiChoiceField) Bind(name string, data url.Values) {
	f.bindName(name)
	f.value = data[name]
}

// IsValid cleans and validates the bound values.
func (f *DynamicMultiChoiceField) IsValid() bool {
	cleaned, err := f.clean(f.value)
	if err != nil {
		f.AddError(err.Error())
	} else {
		f.cleaned = cleaned
	}
	return f.err.IsZero()
}

func (f *DynamicMultiChoiceField) clean(value []string) ([]string, error) {
	if err := f.validate(value); err != nil {
		return nil, err
	}
	return value, nil
}

// validate applies the required check when the field is required or
// validates its input, then checks every bound value against the
// configured vocabulary when input validation is on. There is no upper
// bound on how many values may be selected.
func (f *DynamicMultiChoiceField) validate(value []string) error {
	if f.required || f.validateInput {
		if err := f.validateRequired(len(value) == 0); err != nil {
			return err
		}
		if f.validateInput && !containsAll(f.validValues, value) {
			return validationErr(KindInvalidChoices, fmt.Sprintf(
				"Enter a valid choice. Value(s) [%s] do not belong to the available choices. Valid choices are [%s]",
				strings.Join(value, ", "), strings.Join(f.validValues, ", "),
			))
		}
	}
	return nil
}

// Value returns the raw bound values, retained for redisplay.
func (f *DynamicMultiChoiceField) Value() []string { return f.value }

// Cleaned returns the cleaned values, or nil while an error is
// recorded.
func (f *DynamicMultiChoiceField) Cleaned() []string {
	if !f.err.IsZero() {
		return nil
	}
	return f.cleaned
}

// LastCleaned returns the cleaned values even when an error was added
// after cleaning succeeded.
func (f *DynamicMultiChoiceField) LastCleaned() []string { return f.cleaned }

// Choices returns the current choice list.
func (f *DynamicMultiChoiceField) Choices() []Choice { return f.choices }

// ConfiguredChoices returns the immutable construction-time snapshot.
func (f *DynamicMultiChoiceField) ConfiguredChoices() []Choice { return f.configured }

// ValidatesInput reports whether bound values are checked against the
// configured choices.
func (f *DynamicMultiChoiceField) ValidatesInput() bool { return f.validateInput }

// Reconciled reports whether Reconcile has run at least once this
// request.
func (f *DynamicMultiChoiceField) Reconciled() bool { return f.reconciled }

// MoreChoicesText returns the link text for the "see more" affordance.
func (f *DynamicMultiChoiceField) MoreChoicesText() string { return f.moreChoicesText }

// MoreChoicesAvailable reports whether the API indicated more choices
// exist beyond the returned aggregation. Set by the form-processing
// layer.
func (f *DynamicMultiChoiceField) MoreChoicesAvailable() bool { return f.moreChoicesAvailable }

// MoreChoicesURL returns the URL for the "see more" affordance. Set by
// the form-processing layer.
func (f *DynamicMultiChoiceField) MoreChoicesURL() string { return f.moreChoicesURL }

// SetMoreChoices records the availability and target of the extended
// choice list. Called by the form-processing layer from the API
// aggregation response's other-count.
func (f *DynamicMultiChoiceField) SetMoreChoices(available bool, url string) {
	f.moreChoicesAvailable = available
	f.moreChoicesURL = url
}

// ConfiguredLabels returns the label lookup built from the original
// configured choices. The map is memoized and survives later
// replacement of the current choice list.
func (f *DynamicMultiChoiceField) ConfiguredLabels() map[string]string {
	if f.labels == nil {
		f.labels = make(map[string]string, len(f.configured))
		for _, c := range f.configured {
			f.labels[c.Value] = c.Label
		}
	}
	return f.labels
}

// labelFor builds a display label for an aggregation value: the
// configured label when one exists, the raw value otherwise, with the
// thousands-grouped count appended.
func (f *DynamicMultiChoiceField) labelFor(value string, count int) string {
	base, ok := f.ConfiguredLabels()[value]
	if !ok {
		base = value
	}
	return fmt.Sprintf("%s (%s)", base, GroupThousands(count))
}

// Reconcile replaces the current choice list using aggregation data
// from the most recent API result. Every selected value missing from
// the aggregation is appended with a forced zero count so it still
// renders. Each call fully replaces the list; calls do not merge with
// a previous reconciliation.
func (f *DynamicMultiChoiceField) Reconcile(entries []AggregationEntry, selected []string) {
	choices := make([]Choice, 0, len(entries)+len(selected))
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		choices = append(choices, Choice{
			Value: entry.Value,
			Label: f.labelFor(entry.Value, entry.Count),
		})
		seen[entry.Value] = struct{}{}
	}

	for _, value := range selected {
		if _, ok := seen[value]; ok {
			continue
		}
		choices = append(choices, Choice{
			Value: value,
			Label: f.labelFor(value, 0),
		})
	}

	f.choices = choices
	f.reconciled = true
}

// Items returns one display record per current choice, marking
// selected values checked. When the field holds an error the choice
// list collapses to nothing; when no reconciliation has happened yet
// (the API was never queried this request) the field reconciles
// against its own bound values so selected-but-unknown values still
// render with a zero count.
func (f *DynamicMultiChoiceField) Items() ([]Item, error) {
	if !f.err.IsZero() {
		f.Reconcile(nil, nil)
	} else if !f.reconciled {
		f.Reconcile(nil, f.value)
	}

	items := make([]Item, 0, len(f.choices))
	for _, c := range f.choices {
		items = append(items, Item{
			Text:    c.Label,
			Value:   c.Value,
			Checked: contains(f.value, c.Value),
		})
	}
	return items, nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

func containsAll(valid, values []string) bool {
	for _, v := range values {
		if !contains(valid, v) {
			return false
		}
	}
	return true
}

// GroupThousands formats n with comma separators, e.g. 26008838 as
// "26,008,838".
func GroupThousands(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
