package helpers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestSanitizePage(t *testing.T) {
	assert.Equal(t, 1, SanitizePage(nil))
	assert.Equal(t, 1, SanitizePage(intPtr(0)))
	assert.Equal(t, 1, SanitizePage(intPtr(-4)))
	assert.Equal(t, 3, SanitizePage(intPtr(3)))
	assert.Equal(t, MaxCoursesPage, SanitizePage(intPtr(math.MaxInt64)))
}

func TestHugePageNeverWrapsToEarlierOffset(t *testing.T) {
	for _, requested := range []int{1<<62 + 1, 1<<61 + 1, math.MaxInt64} {
		page := SanitizePage(intPtr(requested))
		offset, limit := CalculateOffsetLimit(page, CoursesPageSize)

		assert.LessOrEqual(t, offset, uint64(math.MaxInt64), "page %d", requested)
		assert.Greater(t, offset, uint64(1<<40), "page %d", requested)
		assert.Equal(t, uint64(CoursesPageSize), limit)
	}

	offset, _ := CalculateOffsetLimit(math.MaxInt64, 1<<20)
	assert.Equal(t, uint64(math.MaxInt64), offset)
}

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(1, CoursesPageSize)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, uint64(12), limit)

	offset, _ = CalculateOffsetLimit(3, CoursesPageSize)
	assert.Equal(t, uint64(24), offset)

	zeroOffset, _ := CalculateOffsetLimit(0, CoursesPageSize)
	firstOffset, _ := CalculateOffsetLimit(1, CoursesPageSize)
	assert.Equal(t, firstOffset, zeroOffset)
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(25, 2, CoursesPageSize)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 12, info.PageSize)
	assert.Equal(t, int64(25), info.TotalItems)

	empty := NewPaginationInfo(0, 1, CoursesPageSize)
	assert.Equal(t, 0, empty.TotalPages)
}
