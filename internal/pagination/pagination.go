// Package pagination builds the elided page list shown under search
// results: the first and last pages are always present, with a short
// window around the current page and ellipsis markers for the gaps.
package pagination

import (
	"net/url"
	"strconv"

	"github.com/nationalarchives/catalogue-search/pkg/querystring"
)

// window is the number of pages shown either side of the current one.
const window = 2

// PageLink is one entry in the pagination strip. Ellipsis entries
// have no number or link.
type PageLink struct {
	Number   int    `json:"number,omitempty"`
	Href     string `json:"href,omitempty"`
	Current  bool   `json:"current,omitempty"`
	Ellipsis bool   `json:"ellipsis,omitempty"`
}

// Pagination describes the full strip for one results page.
type Pagination struct {
	CurrentPage  int        `json:"current_page"`
	TotalPages   int        `json:"total_pages"`
	PreviousHref string     `json:"previous_href,omitempty"`
	NextHref     string     `json:"next_href,omitempty"`
	Pages        []PageLink `json:"pages"`
}

// TotalPages returns the page count for a result total, capped at
// limit. Zero results still occupy one page.
func TotalPages(total, perPage, limit int) int {
	if total <= 0 {
		return 1
	}
	pages := (total + perPage - 1) / perPage
	if pages > limit {
		pages = limit
	}
	return pages
}

// New builds the strip for the current page. Hrefs keep the rest of
// the query string intact; data is never mutated.
func New(current, total int, data url.Values) Pagination {
	p := Pagination{CurrentPage: current, TotalPages: total}
	if current > 1 {
		p.PreviousHref = pageHref(current-1, data)
	}
	if current < total {
		p.NextHref = pageHref(current+1, data)
	}
	for _, n := range elidedRange(current, total) {
		if n == 0 {
			p.Pages = append(p.Pages, PageLink{Ellipsis: true})
			continue
		}
		p.Pages = append(p.Pages, PageLink{
			Number:  n,
			Href:    pageHref(n, data),
			Current: n == current,
		})
	}
	return p
}

// elidedRange returns the visible page numbers with zeros marking
// ellipsis positions.
func elidedRange(current, total int) []int {
	if total <= 2*window+3 {
		pages := make([]int, 0, total)
		for n := 1; n <= total; n++ {
			pages = append(pages, n)
		}
		return pages
	}

	pages := []int{1}
	lo := current - window
	hi := current + window
	if lo < 2 {
		lo = 2
	}
	if hi > total-1 {
		hi = total - 1
	}
	if lo > 2 {
		pages = append(pages, 0)
	}
	for n := lo; n <= hi; n++ {
		pages = append(pages, n)
	}
	if hi < total-1 {
		pages = append(pages, 0)
	}
	return append(pages, total)
}

func pageHref(page int, data url.Values) string {
	qs := querystring.Remove(data, "page")
	if page > 1 {
		qs.Set("page", strconv.Itoa(page))
	}
	return "?" + qs.Encode()
}
