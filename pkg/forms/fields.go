package forms

import (
	"fmt"
	"net/url"
	"strings"
)

// Choice pairs a submittable value with its display label.
type Choice struct {
	Value string
	Label string
}

// Item is a display record for a front-end choice component, for
// example a checkbox or radio group.
type Item struct {
	Text    string `json:"text"`
	Value   string `json:"value"`
	Checked bool   `json:"checked,omitempty"`
}

// Field is the contract every field variant satisfies.
//
// Lifecycle: construct, Bind, IsValid, then read accessors. Err and
// Cleaned-style accessors on the concrete types follow one invariant:
// after IsValid a cleaned value is visible if and only if no error is
// recorded. AddError may be called later (during cross-validation) and
// retroactively hides the cleaned value; the concrete types keep the
// pre-error value reachable through a LastCleaned accessor.
type Field interface {
	// Bind assigns the field name and extracts this field's slice of
	// the raw request data. Scalar variants read only their own key;
	// the multi-part date variant reads sibling keys, which is why the
	// whole collection is passed.
	Bind(name string, data url.Values)

	// IsValid cleans and validates the bound value, converting any
	// validation failure into the field's error state. Calling it
	// again repeats the same deterministic computation.
	IsValid() bool

	// AddError records a structured error, replacing any previous one.
	AddError(message string)

	// Err returns the current error. The zero value means none.
	Err() FieldError

	// Items returns the display records for choice-backed variants and
	// ErrItemsUnsupported for everything else.
	Items() ([]Item, error)

	Name() string
	ID() string
	Label() string
	Hint() string
	ActiveFilterLabel() string
	Required() bool
}

// Option configures a field at construction time.
type Option func(*fieldConfig)

type fieldConfig struct {
	label             string
	hint              string
	activeFilterLabel string
	required          bool

	// dynamic multi-choice only
	validateInput   *bool
	moreChoicesText string

	// multi-part date only
	progressive *bool
	separator   string
}

// WithLabel sets the display label. Unset labels default to the
// capitalised field name at bind time.
func WithLabel(label string) Option {
	return func(c *fieldConfig) { c.label = label }
}

// WithHint sets the display hint shown under the label.
func WithHint(hint string) Option {
	return func(c *fieldConfig) { c.hint = hint }
}

// WithActiveFilterLabel sets the label used when the field's value is
// shown as a removable active filter.
func WithActiveFilterLabel(label string) Option {
	return func(c *fieldConfig) { c.activeFilterLabel = label }
}

// Required marks the field as required.
func Required() Option {
	return func(c *fieldConfig) { c.required = true }
}

// WithValidateInput overrides whether a dynamic multi-choice field
// validates bound values against its configured choices. Ignored, and
// forced off, when the field has no configured choices.
func WithValidateInput(validate bool) Option {
	return func(c *fieldConfig) { c.validateInput = &validate }
}

// WithMoreChoicesText sets the link text shown when the API reports
// more choices than were returned.
func WithMoreChoicesText(text string) Option {
	return func(c *fieldConfig) { c.moreChoicesText = text }
}

// Progressive controls whether a date field accepts partial input
// (year only, or year and month). Date fields are progressive unless
// this is set to false.
func Progressive(progressive bool) Option {
	return func(c *fieldConfig) { c.progressive = &progressive }
}

// WithPartSeparator sets the separator between the field name and the
// year/month/day sub-keys of a date field. The front-end component
// composes input names with the same separator.
func WithPartSeparator(sep string) Option {
	return func(c *fieldConfig) { c.separator = sep }
}

func newFieldConfig(opts []Option) fieldConfig {
	var c fieldConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// BaseField carries the state and behaviour shared by every variant.
// It is embedded, never used on its own.
type BaseField struct {
	name              string
	id                string
	label             string
	hint              string
	activeFilterLabel string
	required          bool
	err               FieldError
}

func newBaseField(c fieldConfig) BaseField {
	return BaseField{
		label:             c.label,
		hint:              c.hint,
		activeFilterLabel: c.activeFilterLabel,
		required:          c.required,
	}
}

// bindName assigns the name and derives the element id and default
// label.
func (b *BaseField) bindName(name string) {
	b.name = name
	b.id = "id_" + name
	if b.label == "" {
		b.label = capitalize(name)
	}
}

// AddError records a structured error, replacing any previous one.
func (b *BaseField) AddError(message string) {
	b.err = FieldError{Text: message}
}

// Err returns the current error. The zero value means none.
func (b *BaseField) Err() FieldError {
	return b.err
}

// Items returns ErrItemsUnsupported; choice-backed variants override.
func (b *BaseField) Items() ([]Item, error) {
	return nil, ErrItemsUnsupported
}

// Name returns the field name assigned at bind time.
func (b *BaseField) Name() string { return b.name }

// ID returns the element id derived at bind time.
func (b *BaseField) ID() string { return b.id }

// Label returns the display label.
func (b *BaseField) Label() string { return b.label }

// Hint returns the display hint.
func (b *BaseField) Hint() string { return b.hint }

// ActiveFilterLabel returns the active-filter display label.
func (b *BaseField) ActiveFilterLabel() string { return b.activeFilterLabel }

// Required reports whether the field is required.
func (b *BaseField) Required() bool { return b.required }

// validateRequired applies the base required check.
func (b *BaseField) validateRequired(empty bool) error {
	if b.required && empty {
		return validationErr(KindRequired, "Value is required.")
	}
	return nil
}

// lastValue picks the binding value from a possibly multi-valued
// input: the last element, or the empty string when none was sent.
func lastValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[len(values)-1]
}

// capitalize upper-cases the first byte and lower-cases the rest,
// matching the labels the original front end expects for unlabelled
// fields.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// TextField is a plain single-line text input, for example the search
// query box.
type TextField struct {
	BaseField
	value   string
	cleaned string
}

// NewTextField returns an unbound text field.
func NewTextField(opts ...Option) *TextField {
	c := newFieldConfig(opts)
	return &TextField{BaseField: newBaseField(c)}
}

// Bind binds the last value of the input under the field's own key.
func (f *TextField) Bind(name string, data url.Values) {
	f.bindName(name)
	f.value = lastValue(data[name])
}

// IsValid cleans and validates the bound value.
func (f *TextField) IsValid() bool {
	cleaned, err := f.clean(f.value)
	if err != nil {
		f.AddError(err.Error())
	} else {
		f.cleaned = cleaned
	}
	return f.err.IsZero()
}

func (f *TextField) clean(value string) (string, error) {
	if err := f.validateRequired(value == ""); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// Value returns the raw bound value, retained for redisplay.
func (f *TextField) Value() string { return f.value }

// Cleaned returns the cleaned value, or the empty string while an
// error is recorded.
func (f *TextField) Cleaned() string {
	if !f.err.IsZero() {
		return ""
	}
	return f.cleaned
}

// LastCleaned returns the cleaned value even when an error was added
// after cleaning succeeded.
func (f *TextField) LastCleaned() string { return f.cleaned }

// ChoiceField is a single-choice input over a fixed vocabulary, for
// example a sort order selector.
type ChoiceField struct {
	BaseField
	choices []Choice
	value   string
	cleaned string
}

// NewChoiceField returns an unbound single-choice field over the given
// ordered choices.
func NewChoiceField(choices []Choice, opts ...Option) *ChoiceField {
	c := newFieldConfig(opts)
	return &ChoiceField{
		BaseField: newBaseField(c),
		choices:   choices,
	}
}

// Bind binds the last value of the input under the field's own key.
func (f *ChoiceField) Bind(name string, data url.Values) {
	f.bindName(name)
	f.value = lastValue(data[name])
}

// IsValid cleans and validates the bound value.
func (f *ChoiceField) IsValid() bool {
	cleaned, err := f.clean(f.value)
	if err != nil {
		f.AddError(err.Error())
	} else {
		f.cleaned = cleaned
	}
	return f.err.IsZero()
}

func (f *ChoiceField) clean(value string) (string, error) {
	if err := f.validate(value); err != nil {
		return "", err
	}
	return value, nil
}

// validate requires membership of the configured choices regardless of
// the required flag: an unrequired field with an empty-value choice
// accepts the empty string through membership, not by exemption.
func (f *ChoiceField) validate(value string) error {
	if f.required {
		if err := f.validateRequired(value == ""); err != nil {
			return err
		}
	}
	values := choiceValues(f.choices)
	for _, v := range values {
		if v == value {
			return nil
		}
	}
	display := value
	if display == "" {
		display = "Empty param value"
	}
	return validationErr(KindInvalidChoice, fmt.Sprintf(
		"Enter a valid choice. [%s] is not one of the available choices. Valid choices are [%s]",
		display, strings.Join(values, ", "),
	))
}

// Value returns the raw bound value.
func (f *ChoiceField) Value() string { return f.value }

// Cleaned returns the cleaned value, or the empty string while an
// error is recorded.
func (f *ChoiceField) Cleaned() string {
	if !f.err.IsZero() {
		return ""
	}
	return f.cleaned
}

// LastCleaned returns the cleaned value even when an error was added
// after cleaning succeeded.
func (f *ChoiceField) LastCleaned() string { return f.cleaned }

// Choices returns the configured choices in order.
func (f *ChoiceField) Choices() []Choice { return f.choices }

// Items returns one display record per configured choice, marking the
// entry matching the bound value checked. The slice is rebuilt on
// every call.
func (f *ChoiceField) Items() ([]Item, error) {
	items := make([]Item, 0, len(f.choices))
	for _, c := range f.choices {
		items = append(items, Item{
			Text:    c.Label,
			Value:   c.Value,
			Checked: c.Value == f.value,
		})
	}
	return items, nil
}

func choiceValues(choices []Choice) []string {
	values := make([]string, 0, len(choices))
	for _, c := range choices {
		values = append(values, c.Value)
	}
	return values
}
