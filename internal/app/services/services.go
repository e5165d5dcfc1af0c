package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/coursehub/catalog/internal/app/models"
	"github.com/coursehub/catalog/internal/app/repositories"
)

// Services defined in this package:
// - CourseService: course listing and the course details view
// - ResourceService: validates and uploads course resources
// - LinkService: attaches external links to courses

// CourseStore lists and counts courses
type CourseStore interface {
	ListCourses(ctx context.Context, filter repositories.CourseFilter, offset, limit uint64) ([]models.Course, error)
	CountCourses(ctx context.Context, filter repositories.CourseFilter) (int64, error)
}

// CourseLookup fetches a single course by canonical id
type CourseLookup interface {
	GetByID(ctx context.Context, courseID string) (*models.Course, error)
}

// ResourceStore persists resources and their file rows
type ResourceStore interface {
	ListByCourseAndType(ctx context.Context, courseID string, resourceType models.ResourceType) ([]models.CourseResource, error)
	CountByType(ctx context.Context, courseID string) (repositories.ResourceTypeCounts, error)
	Create(ctx context.Context, resource *models.CourseResource) error
	CreateFiles(ctx context.Context, files []models.CourseResourceFile) error
	ListFiles(ctx context.Context, resourceID uuid.UUID) ([]models.CourseResourceFile, error)
}

// LinkStore persists course links
type LinkStore interface {
	ListByCourse(ctx context.Context, courseID string) ([]models.CourseResourceLink, error)
	Create(ctx context.Context, link models.CourseResourceLink) (*models.CourseResourceLink, error)
}
