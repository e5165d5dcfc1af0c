package helpers

import (
	"math"

	"github.com/coursehub/catalog/internal/app/models/dto"
)

const (
	// CoursesPageSize is the fixed number of courses per listing page
	CoursesPageSize = 12
	DefaultPage     = 1 // pages are 1-based

	// MaxCoursesPage keeps (page-1)*CoursesPageSize within a Postgres bigint OFFSET
	MaxCoursesPage = math.MaxInt64 / CoursesPageSize
)

// SanitizePage treats a missing or non-positive page as the first page and
// caps pages past MaxCoursesPage, which are empty anyway.
func SanitizePage(page *int) int {
	if page == nil || *page < 1 {
		return DefaultPage
	}
	if int64(*page) > MaxCoursesPage {
		return MaxCoursesPage
	}
	return *page
}

// CalculateOffsetLimit calculates the offset and limit for SQL queries based on 1-based page index.
func CalculateOffsetLimit(page, size int) (offset uint64, limit uint64) {
	if size <= 0 {
		size = CoursesPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	// Multiply in uint64 and saturate at MaxInt64 so a huge page never wraps to an early one
	skipped := uint64(page - 1)
	if skipped > math.MaxInt64/uint64(size) {
		return math.MaxInt64, uint64(size)
	}
	return skipped * uint64(size), uint64(size)
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
// page should be the 1-based page number.
func NewPaginationInfo(totalItems int64, page, size int) dto.PaginationInfo {
	if size <= 0 {
		size = CoursesPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(size)))
	}

	return dto.PaginationInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  totalItems,
	}
}
