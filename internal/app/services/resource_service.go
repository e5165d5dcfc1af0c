package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/coursehub/catalog/internal/app/models"
	"github.com/coursehub/catalog/internal/app/models/dto"
	"github.com/coursehub/catalog/internal/pkg/apperrors"
	"github.com/coursehub/catalog/internal/pkg/filestorage"
	"github.com/coursehub/catalog/internal/pkg/helpers"
	"github.com/coursehub/catalog/internal/pkg/logger"
	"github.com/coursehub/catalog/internal/pkg/validation"
)

const (
	invalidSemesterMessage     = "Invalid semester"
	emptyTitleOrCourseMessage  = "Title and course id can't be empty"
	invalidResourceTypeMessage = "Invalid resource type (Must be either 0 for Notes, or 1 for Exams)"
	yearInFutureMessage        = "Academic year can't be greater than the current year"
	noFilesMessage             = "At least one file must be uploaded"
)

var yearTooOldMessage = "Academic year can't be less than " + strconv.Itoa(validation.MinAcademicYear)

// ResourceService validates resource uploads and runs the upload pipeline:
// objects first, then the resource row, then its file rows. Nothing is rolled back
// when a later stage fails.
type ResourceService struct {
	resources   ResourceStore
	lookup      CourseLookup
	store       filestorage.ObjectStore
	maxParallel int
	now         func() time.Time
}

// NewResourceService creates a new resource service instance.
// maxParallel bounds the number of concurrent object uploads per request.
func NewResourceService(resources ResourceStore, lookup CourseLookup, store filestorage.ObjectStore, maxParallel int) *ResourceService {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &ResourceService{
		resources:   resources,
		lookup:      lookup,
		store:       store,
		maxParallel: maxParallel,
		now:         time.Now,
	}
}

// WithClock replaces the clock used for the academic year bound
func (s *ResourceService) WithClock(now func() time.Time) *ResourceService {
	s.now = now
	return s
}

// ValidateUpload checks an upload before any side effect and returns the canonical semester
func (s *ResourceService) ValidateUpload(in dto.UploadResourceInput) (models.Semester, error) {
	semester, ok := models.ParseSemester(in.Semester)
	if !ok {
		return "", apperrors.NewValidationErrorWithCause(invalidSemesterMessage, apperrors.ErrInvalidSemester)
	}

	if !validation.NewStringValidation(in.Title).IgnoringSpaces().Validate() ||
		!validation.NewStringValidation(in.CourseID).IgnoringSpaces().Validate() {
		return "", apperrors.NewValidationError(emptyTitleOrCourseMessage)
	}

	if !in.ResourceType.Valid() {
		return "", apperrors.NewValidationErrorWithCause(invalidResourceTypeMessage, apperrors.ErrInvalidResourceType)
	}

	year := validation.NewNumericValidation(int(in.AcademicYear)).
		WithMin(validation.MinAcademicYear).
		WithMax(helpers.CurrentYear(s.now()))
	if year.AboveMax() {
		return "", apperrors.NewValidationErrorWithCause(yearInFutureMessage, apperrors.ErrInvalidAcademicYear)
	}
	if year.BelowMin() {
		return "", apperrors.NewValidationErrorWithCause(yearTooOldMessage, apperrors.ErrInvalidAcademicYear)
	}

	if len(in.Files) == 0 {
		return "", apperrors.NewValidationErrorWithCause(noFilesMessage, apperrors.ErrNoFilesProvided)
	}

	if err := checkFileNames(in.Files); err != nil {
		return "", err
	}

	return semester, nil
}

// checkFileNames rejects uploads whose stored names would not map to distinct
// objects directly under the resource folder
func checkFileNames(files []models.UploadFile) error {
	seen := make(map[string]string, len(files))
	for _, f := range files {
		name := filestorage.SanitizeFileName(f.Name)
		if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
			return apperrors.NewValidationErrorWithCause(
				fmt.Sprintf("Invalid file name %q", f.Name), apperrors.ErrInvalidFileName)
		}
		if first, dup := seen[name]; dup {
			return apperrors.NewValidationErrorWithCause(
				fmt.Sprintf("Files %q and %q would both be stored as %q", first, f.Name, name), apperrors.ErrDuplicateFileName)
		}
		seen[name] = f.Name
	}
	return nil
}

// UploadResource stores every file in the object store, then records the
// resource and its files. The returned resource carries its file rows.
func (s *ResourceService) UploadResource(ctx context.Context, in dto.UploadResourceInput) (*models.CourseResource, error) {
	semester, err := s.ValidateUpload(in)
	if err != nil {
		return nil, err
	}

	courseID := models.CanonicalCourseID(in.CourseID)
	if s.lookup != nil {
		if _, err := s.lookup.GetByID(ctx, courseID); err != nil {
			if errors.Is(err, apperrors.ErrCourseNotFound) {
				return nil, apperrors.NewCourseNotFoundError(courseID)
			}
			return nil, apperrors.NewStorageError("failed to load course", err)
		}
	}

	resourceID := uuid.New()
	folder := fmt.Sprintf("course_resources/%s/%s", courseID, resourceID)
	log := logger.Ctx(ctx).With().Str("courseId", courseID).Str("resourceId", resourceID.String()).Logger()

	files, err := s.uploadFiles(ctx, resourceID, folder, in.Files)
	if err != nil {
		log.Error().Err(err).Msg("Upload aborted, objects already stored are left in place")
		return nil, err
	}

	resource := &models.CourseResource{
		ResourceID:   resourceID,
		CourseID:     courseID,
		Title:        in.Title,
		Subtitle:     in.Subtitle,
		ResourceType: in.ResourceType,
		Semester:     semester,
		AcademicYear: in.AcademicYear,
		IsSolved:     in.IsSolved,
	}
	if err := s.resources.Create(ctx, resource); err != nil {
		log.Error().Err(err).Int("objects", len(files)).Msg("Failed to save course resource after upload")
		return nil, apperrors.NewStorageError("failed to save course resource", err)
	}

	if err := s.resources.CreateFiles(ctx, files); err != nil {
		// the resource row and all objects are persisted at this point
		log.Error().Err(err).Int("objects", len(files)).Msg("Course resource saved without its file rows")
		return nil, apperrors.NewStorageError("failed to save course resource files", err)
	}

	resource.Files = files
	log.Info().Int("files", len(files)).Msg("Course resource uploaded")
	return resource, nil
}

// uploadFiles pushes every file to the object store with bounded concurrency.
// The returned rows follow input order.
func (s *ResourceService) uploadFiles(ctx context.Context, resourceID uuid.UUID, folder string, uploads []models.UploadFile) ([]models.CourseResourceFile, error) {
	files := make([]models.CourseResourceFile, len(uploads))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxParallel)
	for i, upload := range uploads {
		g.Go(func() error {
			name := filestorage.SanitizeFileName(upload.Name)
			key := filestorage.ObjectKey(folder, name)

			if err := s.store.Put(gctx, key, upload.Data, filestorage.ContentTypeFor(name)); err != nil {
				if !apperrors.Is(err, apperrors.ErrUploadFailed, apperrors.ErrAuthFailed) {
					err = apperrors.NewUploadError("failed to upload "+name, err)
				}
				return err
			}

			files[i] = models.CourseResourceFile{
				FileID:     uuid.New(),
				ResourceID: resourceID,
				FileName:   name,
				FileURL:    s.store.PublicURL(key),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}
