// Package pagination implements page-number pagination over in-memory
// result sets. Lists are fetched in store order and sliced into fixed-size
// pages after filtering, mirroring how the dashboard pages through records.
package pagination

// DefaultPageSize matches the rent list page size.
const DefaultPageSize = 5

type Pagination struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"page_size"`
}

type PageInfo struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	PageCount  int `json:"page_count"`
	TotalItems int `json:"total_items"`
}

// Paginate slices items into the requested page. An out-of-range page is
// clamped rather than rejected: the filtered set may have shrunk since the
// client picked its page. An empty input yields a zero page count.
func Paginate[T any](items []T, p Pagination) ([]T, PageInfo) {
	size := p.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}

	total := len(items)
	pageCount := (total + size - 1) / size

	page := p.Page
	if page < 1 {
		page = 1
	}
	if pageCount > 0 && page > pageCount {
		page = pageCount
	}

	info := PageInfo{
		Page:       page,
		PageSize:   size,
		PageCount:  pageCount,
		TotalItems: total,
	}

	if total == 0 {
		return items[:0], info
	}

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	return items[start:end], info
}
