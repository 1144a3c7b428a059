// Package rosetta is a thin HTTP client for the Rosetta search API.
// It shapes request parameters the way the API expects, decodes the
// response envelope and reports missing results as ErrNotFound so
// callers can render a no-results page instead of an error page.
package rosetta
