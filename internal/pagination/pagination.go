package pagination

import (
	"net/http"
	"strconv"
)

const DefaultPerPage = 10

// PageFromRequest reads the 1-indexed "page" query parameter. Missing or
// non-integer values mean page 1.
func PageFromRequest(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

// Paginate returns the window [(page-1)*perPage, (page-1)*perPage+perPage) of items.
// Pages outside the data, including page <= 0, yield an empty slice.
func Paginate[T any](items []T, page, perPage int) []T {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if page <= 0 || page-1 >= (len(items)+perPage-1)/perPage {
		return []T{}
	}

	start := (page - 1) * perPage
	end := min(start+perPage, len(items))

	return items[start:end]
}
