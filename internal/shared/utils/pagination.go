package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nhadat/marketplace/internal/shared/constants"
)

// Pagination is a 1-based page request.
type Pagination struct {
	Page     int
	PageSize int
}

// ValidatePagination fills defaults for non-positive values and caps the
// page size at constants.MaxPageSize.
func ValidatePagination(page, pageSize int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}
	switch {
	case pageSize < 1:
		pageSize = constants.DefaultPageSize
	case pageSize > constants.MaxPageSize:
		pageSize = constants.MaxPageSize
	}
	return Pagination{Page: page, PageSize: pageSize}
}

// ParsePagination reads ?page= and ?page_size=. Values that are missing or
// not positive integers fall back to the defaults.
func ParsePagination(c *gin.Context) Pagination {
	return ValidatePagination(queryInt(c, "page"), queryInt(c, "page_size"))
}

func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}

// TotalPages is never less than 1 so an empty list still reports page 1 of 1.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
