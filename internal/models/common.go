package models

// Pagination describes the page window returned by list endpoints.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}

// NewPagination normalises page inputs the same way the repositories do,
// so the reported window matches the rows actually returned.
func NewPagination(page, pageSize, total int) Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 200 {
		pageSize = 50
	}
	return Pagination{Page: page, PageSize: pageSize, TotalCount: total}
}
