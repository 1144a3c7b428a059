package views

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/nationalarchives/catalogue-search/internal/pagination"
	"github.com/nationalarchives/catalogue-search/internal/rosetta"
	"github.com/nationalarchives/catalogue-search/internal/search"
	"github.com/nationalarchives/catalogue-search/pkg/forms"
)

// fieldState is the serialised form of one field.
type fieldState struct {
	Name     string            `json:"name"`
	ID       string            `json:"id"`
	Label    string            `json:"label"`
	Hint     string            `json:"hint,omitempty"`
	Error    *forms.FieldError `json:"error,omitempty"`
	Items    []forms.Item      `json:"items,omitempty"`
	MoreHref string            `json:"more_href,omitempty"`
	MoreText string            `json:"more_text,omitempty"`
}

// formState is the serialised form of the whole form.
type formState struct {
	Valid          bool               `json:"valid"`
	Fields         []fieldState       `json:"fields"`
	NonFieldErrors []forms.FieldError `json:"non_field_errors,omitempty"`
}

// statsState reports the result counts.
type statsState struct {
	Total   int `json:"total"`
	Results int `json:"results"`
}

// resultsRange describes which results of the total this page shows.
type resultsRange struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// searchResponse is the /catalogue/search/ response body.
type searchResponse struct {
	Form            formState               `json:"form"`
	Results         []rosetta.Record        `json:"results"`
	Stats           *statsState             `json:"stats,omitempty"`
	Buckets         []search.BucketItem     `json:"buckets"`
	SelectedFilters []search.SelectedFilter `json:"selected_filters,omitempty"`
	ResultsRange    *resultsRange           `json:"results_range,omitempty"`
	Pagination      *pagination.Pagination  `json:"pagination,omitempty"`
	Page            int                     `json:"page"`
}

// errorResponse is the body for error statuses.
type errorResponse struct {
	Error string `json:"error"`
}

func serializeForm(form *forms.Form) formState {
	state := formState{Valid: true, NonFieldErrors: form.NonFieldErrors()}
	for _, name := range form.Names() {
		field := form.Field(name)
		fs := fieldState{
			Name:  field.Name(),
			ID:    field.ID(),
			Label: field.Label(),
			Hint:  field.Hint(),
		}
		if err := field.Err(); !err.IsZero() {
			fs.Error = &err
			state.Valid = false
		}
		if items, err := field.Items(); err == nil {
			fs.Items = items
		}
		if dynamic, ok := field.(*forms.DynamicMultiChoiceField); ok && dynamic.MoreChoicesAvailable() {
			fs.MoreHref = dynamic.MoreChoicesURL()
			fs.MoreText = dynamic.MoreChoicesText()
		}
		state.Fields = append(state.Fields, fs)
	}
	if len(state.NonFieldErrors) > 0 {
		state.Valid = false
	}
	return state
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	writeJSON(w, logger, status, errorResponse{Error: message})
}
