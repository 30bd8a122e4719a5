package ports

import "math"

// Page selects a window of an ordered listing. A zero Limit means no upper
// bound.
type Page struct {
	Offset int
	Limit  int
}

// NewPage converts 1-based page numbers into an offset window.
// Non-positive values fall back to the first page and defaultPerPage. Page
// numbers past the last representable offset are clamped, so they select an
// empty window instead of wrapping around.
func NewPage(page, perPage, defaultPerPage int) Page {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > 0 && page-1 > math.MaxInt/perPage {
		page = math.MaxInt/perPage + 1
	}

	return Page{Offset: (page - 1) * perPage, Limit: perPage}
}
