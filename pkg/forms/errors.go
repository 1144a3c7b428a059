package forms

import "errors"

// Kind categorises a validation failure. Every kind is recoverable by
// correcting the submitted input; none is fatal to the request.
type Kind string

const (
	// KindRequired reports a required value that was not supplied.
	KindRequired Kind = "required"

	// KindInvalidChoice reports a single-choice value outside the
	// configured vocabulary.
	KindInvalidChoice Kind = "invalid_choice"

	// KindInvalidChoices reports one or more multi-choice values
	// outside the configured vocabulary.
	KindInvalidChoices Kind = "invalid_choices"

	// KindInvalidDatePart reports a date part that is not an integer
	// or is out of range for its part.
	KindInvalidDatePart Kind = "invalid_date_part"

	// KindIncompleteDate reports a non-progressive date with some but
	// not all parts supplied.
	KindIncompleteDate Kind = "incomplete_date"

	// KindInvalidDate reports three well-formed parts that do not form
	// a real calendar date.
	KindInvalidDate Kind = "invalid_date"

	// KindDateRange reports a from date later than its paired to date.
	// It is only ever attached during cross-validation.
	KindDateRange Kind = "date_range"
)

// ValidationError is the failure signal raised by Validate and Clean.
// It never escapes the field layer: IsValid converts it into the
// field's error state.
type ValidationError struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// validationErr is a convenience constructor.
func validationErr(kind Kind, message string) *ValidationError {
	return &ValidationError{Kind: kind, Message: message}
}

// ErrItemsUnsupported is returned by Items on field variants that have
// no choice list to display. Hitting it indicates a programming error
// in the caller, not invalid user input.
var ErrItemsUnsupported = errors.New("forms: items not supported for this field variant")

// FieldError is the structured per-field error in the shape expected
// by the front-end components. The zero value means "no error".
type FieldError struct {
	Text string `json:"text"`
}

// IsZero reports whether no error has been recorded.
func (e FieldError) IsZero() bool {
	return e.Text == ""
}
