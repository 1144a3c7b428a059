// Package querystring provides pure helpers over url.Values for
// building filter-removal and filter-toggle links. Inputs are never
// mutated; every operation returns a fresh copy so link building can
// chain safely from the live request query.
package querystring

import "net/url"

// Clone returns a deep copy of values.
func Clone(values url.Values) url.Values {
	out := make(url.Values, len(values))
	for key, vs := range values {
		out[key] = append([]string(nil), vs...)
	}
	return out
}

// Remove returns a copy of values without any value of key.
func Remove(values url.Values, key string) url.Values {
	out := Clone(values)
	out.Del(key)
	return out
}

// Toggle returns a copy of values with value removed from key when
// currently present, or appended to key when absent. Other values of
// the same key are preserved, so toggling one selection of a
// multi-valued filter leaves the rest selected.
func Toggle(values url.Values, key, value string) url.Values {
	out := Clone(values)

	existing := out[key]
	kept := make([]string, 0, len(existing))
	found := false
	for _, v := range existing {
		if v == value {
			found = true
			continue
		}
		kept = append(kept, v)
	}

	if !found {
		kept = append(kept, value)
	}
	if len(kept) == 0 {
		out.Del(key)
	} else {
		out[key] = kept
	}
	return out
}
