package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/constants"
)

// Pagination holds parsed skip/limit parameters.
type Pagination struct {
	Skip  int
	Limit int
}

// ValidatePagination normalizes skip/limit values.
// Skip floors at 0; limit defaults to DefaultLimit and is capped at MaxLimit.
func ValidatePagination(skip, limit int) Pagination {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 {
		limit = constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}
	return Pagination{Skip: skip, Limit: limit}
}

// ParsePagination parses skip/limit from the query string with defaults applied.
func ParsePagination(c *gin.Context) Pagination {
	skip := parseQueryInt(c, "skip", 0)
	limit := parseQueryInt(c, "limit", constants.DefaultLimit)
	return ValidatePagination(skip, limit)
}

// parseQueryInt parses a non-negative integer query parameter with a default value.
func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 0 {
			return n
		}
	}
	return defaultVal
}
