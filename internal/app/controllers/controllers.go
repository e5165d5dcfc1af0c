package controllers

import (
	"context"

	"github.com/coursehub/catalog/internal/app/models"
	"github.com/coursehub/catalog/internal/app/models/dto"
)

// CourseQuerier serves the read side of the catalog
type CourseQuerier interface {
	ListCourses(ctx context.Context, req dto.CourseFilterRequest) (*dto.CourseListResponse, error)
	GetCourseDetails(ctx context.Context, courseID string, resourceType models.ResourceType) (*dto.CourseDetailsResponse, error)
}

// ResourceUploader runs the resource upload pipeline
type ResourceUploader interface {
	UploadResource(ctx context.Context, in dto.UploadResourceInput) (*models.CourseResource, error)
}

// LinkInserter attaches links to courses
type LinkInserter interface {
	InsertLink(ctx context.Context, courseID, title, url string) (*models.CourseResourceLink, error)
}
