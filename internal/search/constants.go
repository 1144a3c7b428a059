package search

// ResultsPerPage is the number of records shown per page.
const ResultsPerPage = 20

// PageLimit caps the highest page number that can be requested,
// keeping deep pagination away from the API.
const PageLimit = 500

// filterDatatypeRecord restricts non-TNA results to record entries.
const filterDatatypeRecord = "datatype:record"

// Sort values accepted by the search API. Relevance is the API
// default and is sent as an empty value.
const (
	SortRelevance = ""
	SortTitleAsc  = "title:asc"
	SortTitleDesc = "title:desc"
	SortDateAsc   = "date:asc"
	SortDateDesc  = "date:desc"
)

// Form field names. They double as the query-string parameter names
// the front end submits.
const (
	FieldQ                = "q"
	FieldSort             = "sort"
	FieldGroup            = "group"
	FieldLevel            = "level"
	FieldCollection       = "collection"
	FieldOnline           = "online"
	FieldSubject          = "subject"
	FieldHeldBy           = "held_by"
	FieldClosure          = "closure"
	FieldFilterList       = "filter_list"
	FieldCoveringDateFrom = "covering_date_from"
	FieldCoveringDateTo   = "covering_date_to"
	FieldOpeningDateFrom  = "opening_date_from"
	FieldOpeningDateTo    = "opening_date_to"
)

// tnaLevels is the fixed catalogue hierarchy vocabulary for the level
// filter.
var tnaLevels = []string{
	"Department",
	"Division",
	"Series",
	"Sub-series",
	"Sub-sub-series",
	"Piece",
	"Item",
}
