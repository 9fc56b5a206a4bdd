package httpx

import (
	"math"
	"net/http"
	"strconv"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PathID parses a positive integer path value, writing a 400 when it is malformed.
func PathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid "+name, nil)
		return 0, false
	}
	return id, true
}

// Page reads page and page_size query parameters with the defaults used by
// every list endpoint. page_size is clamped to MaxPageSize and page is capped
// so that (page-1)*pageSize never overflows.
func Page(r *http.Request) (page, pageSize int) {
	q := r.URL.Query()
	pageSize, _ = strconv.Atoi(q.Get("page_size"))
	switch {
	case pageSize <= 0:
		pageSize = DefaultPageSize
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	}
	page, _ = strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	if maxPage := math.MaxInt / pageSize; page > maxPage {
		page = maxPage
	}
	return page, pageSize
}

// Offset is the number of rows skipped before the given page.
func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}

func PageMeta(page, pageSize, total int) map[string]any {
	return map[string]any{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + pageSize - 1) / pageSize,
	}
}
