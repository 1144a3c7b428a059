package views

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nationalarchives/catalogue-search/internal/pagination"
	"github.com/nationalarchives/catalogue-search/internal/rosetta"
	"github.com/nationalarchives/catalogue-search/internal/search"
	"github.com/nationalarchives/catalogue-search/pkg/forms"
)

// Searcher runs catalogue searches. *rosetta.Client satisfies it; the
// tests substitute a stub.
type Searcher interface {
	Search(ctx context.Context, req rosetta.SearchRequest) (*rosetta.SearchResponse, error)
}

// SearchHandler serves the catalogue search endpoint.
type SearchHandler struct {
	client Searcher
	logger *slog.Logger
}

// NewSearchHandler returns a handler backed by the given search
// client.
func NewSearchHandler(client Searcher, logger *slog.Logger) *SearchHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchHandler{client: client, logger: logger}
}

func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePage(r.URL.Query())
	if !ok {
		writeError(w, h.logger, http.StatusNotFound, "page not found")
		return
	}

	data := formData(r.URL.Query())
	group := data.Get(search.FieldGroup)
	form := search.FormForBucket(group)

	if group == search.BucketTNA {
		if name, ok := multiValuedChoiceField(form, data); ok {
			h.logger.Info("choice field bound to multiple values", "field", name)
			writeError(w, h.logger, http.StatusBadRequest,
				"field "+name+" can only bind to a single value")
			return
		}
	}

	form.Bind(data)
	bucketList := search.CatalogueBuckets()
	currentBucketKey := group

	if !form.IsValid() {
		h.respondWithoutResults(w, form, bucketList, currentBucketKey, page)
		return
	}

	query := form.Field(search.FieldQ).(*forms.TextField).Cleaned()
	sort := form.Field(search.FieldSort).(*forms.ChoiceField).Cleaned()
	bucket, err := bucketList.Get(form.Field(search.FieldGroup).(*forms.ChoiceField).Cleaned())
	if err != nil {
		h.logger.Error("resolving bucket", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "internal error")
		return
	}

	params := search.BuildParams(form, bucket)
	result, err := h.client.Search(r.Context(), rosetta.SearchRequest{
		Query:          query,
		Page:           page,
		ResultsPerPage: search.ResultsPerPage,
		Sort:           sort,
		Filter:         params.Filter,
		Aggs:           params.Aggs,
		Digitised:      params.Digitised,
		KnownBuckets:   bucketKeys(bucketList),
	})
	if err != nil {
		if errors.Is(err, rosetta.ErrNotFound) {
			h.respondWithoutResults(w, form, bucketList, currentBucketKey, page)
			return
		}
		h.logger.Error("searching catalogue", "error", err)
		writeError(w, h.logger, http.StatusBadGateway, "search service unavailable")
		return
	}

	var rangeState *resultsRange
	var pages *pagination.Pagination
	if result.Stats.Total > 0 {
		total := pagination.TotalPages(result.Stats.Total, search.ResultsPerPage, search.PageLimit)
		if page > total {
			writeError(w, h.logger, http.StatusNotFound, "page not found")
			return
		}
		rangeState = &resultsRange{
			From: (page-1)*search.ResultsPerPage + 1,
			To:   (page-1)*search.ResultsPerPage + result.Stats.Results,
		}
		p := pagination.New(page, total, r.URL.Query())
		pages = &p
	}

	search.ProcessResult(form, result, r.URL.Query())
	bucketList.UpdateForDisplay(query, result.BucketCounts(), currentBucketKey)

	writeJSON(w, h.logger, http.StatusOK, searchResponse{
		Form:            serializeForm(form),
		Results:         result.Data,
		Stats:           &statsState{Total: result.Stats.Total, Results: result.Stats.Results},
		Buckets:         bucketList.Items(),
		SelectedFilters: search.SelectedFilters(form, r.URL.Query()),
		ResultsRange:    rangeState,
		Pagination:      pages,
		Page:            page,
	})
}

// respondWithoutResults renders the form with no result data, both
// for validation failures and for searches that matched nothing. The
// current bucket stays in focus.
func (h *SearchHandler) respondWithoutResults(w http.ResponseWriter, form *forms.Form, bucketList *search.BucketList, currentBucketKey string, page int) {
	bucketList.UpdateForDisplay("", nil, currentBucketKey)
	writeJSON(w, h.logger, http.StatusOK, searchResponse{
		Form:    serializeForm(form),
		Results: []rosetta.Record{},
		Buckets: bucketList.Items(),
		Page:    page,
	})
}

// parsePage reads the page parameter, defaulting to 1. Non-numeric
// and sub-one values are rejected.
func parsePage(query url.Values) (int, bool) {
	raw := query.Get("page")
	if raw == "" {
		return 1, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}

// formData copies the request query, drops parameters whose values
// are all empty and applies the group and sort defaults. Dropping
// empty parameters first means an explicit "group=" still picks up
// the default group.
func formData(query url.Values) url.Values {
	data := url.Values{}
	for key, values := range query {
		empty := true
		for _, v := range values {
			if v != "" {
				empty = false
				break
			}
		}
		if !empty {
			data[key] = append([]string(nil), values...)
		}
	}
	if data.Get(search.FieldGroup) == "" {
		data.Set(search.FieldGroup, search.BucketTNA)
	}
	if _, ok := data[search.FieldSort]; !ok {
		data.Set(search.FieldSort, search.SortRelevance)
	}
	return data
}

// multiValuedChoiceField reports the first single-choice field bound
// to more than one value, if any.
func multiValuedChoiceField(form *forms.Form, data url.Values) (string, bool) {
	for _, name := range form.Names() {
		if _, ok := form.Field(name).(*forms.ChoiceField); !ok {
			continue
		}
		if len(data[name]) > 1 {
			return name, true
		}
	}
	return "", false
}

func bucketKeys(list *search.BucketList) []string {
	keys := make([]string, 0, len(list.Buckets))
	for _, b := range list.Buckets {
		keys = append(keys, b.Key)
	}
	return keys
}
