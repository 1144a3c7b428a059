// Package views wires the HTTP surface of the service: the catalogue
// search endpoint, health check and metrics. Responses are JSON; the
// front end renders them into the search page.
package views
