package forms

import (
	"fmt"
	"net/url"
)

// DateDisplayFormat is the layout used when cleaned dates are shown in
// active filters and error messages.
const DateDisplayFormat = "02-01-2006"

// FieldDef pairs a field with the request key it binds to. Definitions
// keep their declaration order through binding, validation and
// display.
type FieldDef struct {
	Name  string
	Field Field
}

// CrossValidator inspects cleaned values across fields after every
// per-field check has run. It returns form-level error messages and
// may additionally attach errors to individual fields.
type CrossValidator func(f *Form) []string

// Form is an ordered collection of named fields built once per
// request. It orchestrates binding from raw request data, per-field
// validation and cross-field validation, and aggregates errors.
type Form struct {
	order  []string
	fields map[string]Field

	crossValidators []CrossValidator
	formErrors      []FieldError
}

// New returns a form over the given field definitions.
func New(defs []FieldDef, crossValidators ...CrossValidator) *Form {
	f := &Form{
		fields:          make(map[string]Field, len(defs)),
		crossValidators: crossValidators,
	}
	for _, def := range defs {
		f.order = append(f.order, def.Name)
		f.fields[def.Name] = def.Field
	}
	return f
}

// Bind binds every field to its slice of the raw request data. Fields
// extract their own keys; the multi-part date variant reads its
// sibling part keys from the same collection.
func (f *Form) Bind(data url.Values) {
	if data == nil {
		data = url.Values{}
	}
	for _, name := range f.order {
		f.fields[name].Bind(name, data)
	}
}

// IsValid runs every field's own validation, then the cross-field
// validators. Per-field checks are independent and all of them run
// before any cross validator sees the form. The form is valid when no
// field error and no form-level error remains after both passes.
func (f *Form) IsValid() bool {
	for _, name := range f.order {
		f.fields[name].IsValid()
	}

	for _, validate := range f.crossValidators {
		for _, message := range validate(f) {
			f.formErrors = append(f.formErrors, FieldError{Text: message})
		}
	}

	if len(f.formErrors) > 0 {
		return false
	}
	for _, name := range f.order {
		if !f.fields[name].Err().IsZero() {
			return false
		}
	}
	return true
}

// Field returns the named field, or nil when the form has no such
// field.
func (f *Form) Field(name string) Field {
	return f.fields[name]
}

// Names returns the field names in declaration order.
func (f *Form) Names() []string {
	return f.order
}

// Errors returns the current field errors keyed by field name. Fields
// without an error are omitted.
func (f *Form) Errors() map[string]FieldError {
	errs := make(map[string]FieldError)
	for _, name := range f.order {
		if err := f.fields[name].Err(); !err.IsZero() {
			errs[name] = err
		}
	}
	return errs
}

// NonFieldErrors returns the form-level error messages in the order
// they were added. They are never deduplicated.
func (f *Form) NonFieldErrors() []FieldError {
	return f.formErrors
}

// DateRange returns a CrossValidator checking that the named from
// field's cleaned date is not after the named to field's. On
// violation it attaches an error to the from field, hiding its cleaned
// value, and returns a form-level message naming both formatted dates
// under the given prefix.
func DateRange(fromName, toName, prefix string) CrossValidator {
	return func(f *Form) []string {
		from, _ := f.Field(fromName).(*DateField)
		to, _ := f.Field(toName).(*DateField)
		if from == nil || to == nil {
			return nil
		}

		fromDate, fromOK := from.Cleaned()
		toDate, toOK := to.Cleaned()
		if !fromOK || !toOK || !fromDate.After(toDate) {
			return nil
		}

		message := fmt.Sprintf(
			"%s: 'from' date (%s) cannot be after 'to' date (%s).",
			prefix,
			fromDate.Format(DateDisplayFormat),
			toDate.Format(DateDisplayFormat),
		)

		// Build the message before attaching the field error: the
		// error hides the cleaned date it is formatted from.
		from.AddError("This date must be earlier than or equal to the 'to' date.")

		return []string{message}
	}
}
