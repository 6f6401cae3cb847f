package objects

import (
	"fmt"
	"strconv"
)

// Pagination is the page metadata attached to every list response.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPosts int64 `json:"totalPosts"`
	TotalPages int64 `json:"totalPages"`
}

// ParsePageLimit parses the page and limit query values, defaulting to
// page 1 with 10 items. Non-numeric values or values below 1 are rejected;
// no clamping.
func ParsePageLimit(pageStr, limitStr string) (int, int, error) {
	page := 1
	limit := 10

	if pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil {
			return 0, 0, fmt.Errorf("page must be a number: %w", err)
		}
		page = parsed
	}
	if limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			return 0, 0, fmt.Errorf("limit must be a number: %w", err)
		}
		limit = parsed
	}

	if page < 1 || limit < 1 {
		return 0, 0, fmt.Errorf("page and limit must be at least 1")
	}
	return page, limit, nil
}

// Offset converts a 1-based page into a row offset.
func Offset(page, limit int) int {
	return (page - 1) * limit
}

// NewPagination computes the page metadata for a total row count.
// TotalPages is zero when the total is zero.
func NewPagination(page, limit int, total int64) Pagination {
	var totalPages int64
	if total > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		TotalPosts: total,
		TotalPages: totalPages,
	}
}
