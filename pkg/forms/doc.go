// Package forms implements the field binding, cleaning and validation
// engine behind the catalogue search UI.
//
// A Form is an ordered collection of named Fields built fresh for each
// request. Raw multi-valued query-string input is bound to typed
// fields, cleaned and validated field by field, then cross-validated
// at form level. Dynamic multi-choice fields additionally reconcile
// their choice lists against aggregation counts returned by the search
// API, so that displayed option counts and checked state stay
// consistent even when the API response lags the user's selection.
//
// The engine is synchronous and holds no state across requests.
package forms
