// Package pagination slices filtered in-memory lists into fixed-size pages.
package pagination

// DefaultPageSize matches the list screens: 10 rows per page.
const DefaultPageSize = 10

// Page describes one slice of a larger result.
type Page struct {
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Limits holds the configured page sizes. Zero fields mean "no preference".
type Limits struct {
	Default int
	Max     int
}

// Normalize clamps page to >= 1 and perPage to (0, Max]. A missing perPage takes Default,
// or DefaultPageSize when Default is unset.
func (l Limits) Normalize(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = l.Default
		if perPage <= 0 {
			perPage = DefaultPageSize
		}
	}
	if l.Max > 0 && perPage > l.Max {
		perPage = l.Max
	}
	return page, perPage
}

// Normalize applies Limits with only a maximum.
func Normalize(page, perPage, max int) (int, int) {
	return Limits{Max: max}.Normalize(page, perPage)
}

// Bounds returns the [start, end) indexes of the requested page within total items.
func Bounds(page, perPage, total int) (int, int) {
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return start, end
}

// Paginate returns the requested page of items together with its metadata.
func Paginate[T any](items []T, page, perPage int) ([]T, Page) {
	total := len(items)
	start, end := Bounds(page, perPage, total)
	totalPages := 0
	if perPage > 0 {
		totalPages = (total + perPage - 1) / perPage
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out, Page{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}
