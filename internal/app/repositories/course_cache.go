package repositories

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/coursehub/catalog/internal/app/models"
)

type courseLookup interface {
	GetByID(ctx context.Context, courseID string) (*models.Course, error)
}

// CachedCourseLookup memoizes course metadata rows. Courses are immutable
// after seeding, so entries never need invalidation. Misses and errors are
// not cached.
type CachedCourseLookup struct {
	next  courseLookup
	cache *lru.Cache[string, models.Course]
}

// NewCachedCourseLookup wraps next with an LRU cache holding up to size courses
func NewCachedCourseLookup(next courseLookup, size int) (*CachedCourseLookup, error) {
	cache, err := lru.New[string, models.Course](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create course cache: %w", err)
	}
	return &CachedCourseLookup{next: next, cache: cache}, nil
}

// GetByID serves the course from cache or falls through to the wrapped lookup
func (c *CachedCourseLookup) GetByID(ctx context.Context, courseID string) (*models.Course, error) {
	if course, ok := c.cache.Get(courseID); ok {
		return &course, nil
	}

	course, err := c.next.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	c.cache.Add(courseID, *course)
	return course, nil
}

// Len reports the number of cached courses
func (c *CachedCourseLookup) Len() int {
	return c.cache.Len()
}
