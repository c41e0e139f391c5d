// Package listing assembles paged/filtered/sorted queries against the
// menu-items listing endpoint and turns its pagination metadata into the
// page-number strip the menu screen renders.
package listing

import (
	"net/url"
	"strconv"

	"rms-web/internal/domain"
)

// PageSize is fixed by the remote API's pagination settings.
const PageSize = 8

// pageWindow is how many page buttons show on each side of the current page.
const pageWindow = 2

// Query is the filter state of the menu listing screen. The zero value means
// "first page, no filters".
type Query struct {
	Category      int
	CategoryTitle string
	Search        string
	PriceMin      string
	PriceMax      string
	Ordering      string
	Page          int
}

// SetCategory switches the active category by id and resets to page 1.
func (q *Query) SetCategory(id int) {
	q.Category = id
	q.CategoryTitle = ""
	q.Page = 1
}

// SetCategoryTitle switches the active category by title and resets to page 1.
func (q *Query) SetCategoryTitle(title string) {
	q.CategoryTitle = title
	q.Category = 0
	q.Page = 1
}

// SetSearch replaces the free-text search and resets to page 1.
func (q *Query) SetSearch(text string) {
	q.Search = text
	q.Page = 1
}

// SetOrdering replaces the sort key and resets to page 1.
func (q *Query) SetOrdering(key string) {
	q.Ordering = key
	q.Page = 1
}

func (q *Query) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	q.Page = page
}

// Values encodes the filter state as the listing endpoint's query parameters.
// Unset filters are omitted entirely.
func (q Query) Values() url.Values {
	values := url.Values{}
	if q.Category > 0 {
		values.Set("category", strconv.Itoa(q.Category))
	}
	if q.CategoryTitle != "" {
		values.Set("category__title", q.CategoryTitle)
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.PriceMin != "" {
		values.Set("price_min", q.PriceMin)
	}
	if q.PriceMax != "" {
		values.Set("price_max", q.PriceMax)
	}
	if q.Ordering != "" {
		values.Set("ordering", q.Ordering)
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	values.Set("page", strconv.Itoa(page))
	return values
}

// TotalPages derives the page count from the listing's result count.
func TotalPages(count int) int {
	if count <= 0 {
		return 1
	}
	return (count + PageSize - 1) / PageSize
}

// PageRef is one slot of the page-number strip: either a numbered button or
// an ellipsis collapsing a run of hidden pages.
type PageRef struct {
	Number   int  `json:"number,omitempty"`
	Current  bool `json:"current,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// PageNumbers renders the strip: first and last page always show, a window of
// pageWindow pages around the current page shows, and each hidden run
// collapses into a single ellipsis marker.
func PageNumbers(current, total int) []PageRef {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	var refs []PageRef
	for i := 1; i <= total; i++ {
		switch {
		case i == 1 || i == total:
			refs = append(refs, PageRef{Number: i, Current: i == current})
		case i >= current-pageWindow && i <= current+pageWindow:
			refs = append(refs, PageRef{Number: i, Current: i == current})
		case i == current-pageWindow-1 || i == current+pageWindow+1:
			refs = append(refs, PageRef{Ellipsis: true})
		}
	}
	return refs
}

// Pagination is the decoded navigation state handed to the menu screen.
type Pagination struct {
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
	Count      int       `json:"count"`
	HasNext    bool      `json:"has_next"`
	HasPrev    bool      `json:"has_prev"`
	Pages      []PageRef `json:"pages"`
}

// Paginate combines the current page with a listing response's metadata.
func Paginate(current int, page domain.Page) Pagination {
	if current < 1 {
		current = 1
	}
	total := TotalPages(page.Count)
	return Pagination{
		Page:       current,
		TotalPages: total,
		Count:      page.Count,
		HasNext:    page.Next != nil,
		HasPrev:    page.Previous != nil,
		Pages:      PageNumbers(current, total),
	}
}
