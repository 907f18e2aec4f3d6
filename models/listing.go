package models

import (
	"net/http"
	"strconv"
)

// ListParams carries the pagination every collection endpoint accepts.
type ListParams struct {
	Page  int
	Limit int
}

// ParseListParams reads page/limit query params with the usual defaults.
// Bad values fall back rather than erroring.
func ParseListParams(r *http.Request) ListParams {
	params := ListParams{Page: 1, Limit: 25}
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		params.Page = p
	}
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 && l <= 200 {
		params.Limit = l
	}
	return params
}

// Offset for the SQL query.
func (lp ListParams) Offset() int {
	return (lp.Page - 1) * lp.Limit
}
