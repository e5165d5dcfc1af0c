package services

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/coursehub/catalog/internal/app/models"
	"github.com/coursehub/catalog/internal/app/models/dto"
	"github.com/coursehub/catalog/internal/app/repositories"
	"github.com/coursehub/catalog/internal/pkg/apperrors"
	"github.com/coursehub/catalog/internal/pkg/helpers"
	"github.com/coursehub/catalog/internal/pkg/logger"
)

// CourseService handles course listing and details
type CourseService struct {
	courses   CourseStore
	lookup    CourseLookup
	resources ResourceStore
	links     LinkStore
	pageSize  int
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore, lookup CourseLookup, resources ResourceStore, links LinkStore) *CourseService {
	return &CourseService{
		courses:   courses,
		lookup:    lookup,
		resources: resources,
		links:     links,
		pageSize:  helpers.CoursesPageSize,
	}
}

// ListCourses returns one page of courses plus the size of the whole filtered set
func (s *CourseService) ListCourses(ctx context.Context, req dto.CourseFilterRequest) (*dto.CourseListResponse, error) {
	filter := repositories.CourseFilter{Faculty: req.Faculty, Search: req.Search}
	page := helpers.SanitizePage(req.Page)
	offset, limit := helpers.CalculateOffsetLimit(page, s.pageSize)

	var (
		courses []models.Course
		total   int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		courses, err = s.courses.ListCourses(gctx, filter, offset, limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.courses.CountCourses(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Ctx(ctx).Error().Err(err).Int("page", page).Msg("Failed to list courses")
		return nil, apperrors.NewStorageError("failed to list courses", err)
	}

	if courses == nil {
		courses = []models.Course{}
	}

	return &dto.CourseListResponse{
		Courses:      courses,
		TotalCourses: total,
		Pagination:   helpers.NewPaginationInfo(total, page, s.pageSize),
	}, nil
}

// GetCourseDetails assembles a course with its resources of one type, its links
// and the notes/exams tallies. The course id is matched case-insensitively.
//
// A resource whose files cannot be loaded is left out of the result instead of
// failing the request.
func (s *CourseService) GetCourseDetails(ctx context.Context, courseID string, resourceType models.ResourceType) (*dto.CourseDetailsResponse, error) {
	if !resourceType.Valid() {
		return nil, apperrors.NewValidationErrorWithCause(invalidResourceTypeMessage, apperrors.ErrInvalidResourceType)
	}

	id := models.CanonicalCourseID(courseID)
	course, err := s.lookup.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.NewCourseNotFoundError(id)
		}
		logger.Ctx(ctx).Error().Err(err).Str("courseId", id).Msg("Failed to load course")
		return nil, apperrors.NewStorageError("failed to load course", err)
	}

	var (
		resources []models.CourseResource
		links     []models.CourseResourceLink
		counts    repositories.ResourceTypeCounts
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resources, err = s.resources.ListByCourseAndType(gctx, id, resourceType)
		return err
	})
	g.Go(func() error {
		var err error
		links, err = s.links.ListByCourse(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		counts, err = s.resources.CountByType(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("courseId", id).Msg("Failed to load course details")
		return nil, apperrors.NewStorageError("failed to load course details", err)
	}

	details := &dto.CourseDetailsResponse{
		Metadata:  *course,
		Resources: make([]dto.ResourceWithFiles, 0, len(resources)),
		Links:     make([]dto.LinkResponse, 0, len(links)),
		NoNotes:   counts.Notes,
		NoExams:   counts.Exams,
	}

	for _, resource := range resources {
		files, err := s.resources.ListFiles(ctx, resource.ResourceID)
		if err != nil {
			logger.Ctx(ctx).Warn().
				Err(err).
				Str("courseId", id).
				Str("resourceId", resource.ResourceID.String()).
				Msg("Dropping resource whose files could not be loaded")
			continue
		}
		if files == nil {
			files = []models.CourseResourceFile{}
		}
		details.Resources = append(details.Resources, dto.ResourceWithFiles{ResourceInfo: resource, Files: files})
	}

	for _, link := range links {
		details.Links = append(details.Links, dto.LinkResponse{Title: link.LinkTitle, URL: link.LinkURL})
	}

	return details, nil
}
