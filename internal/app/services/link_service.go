package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/coursehub/catalog/internal/app/models"
	"github.com/coursehub/catalog/internal/pkg/apperrors"
	"github.com/coursehub/catalog/internal/pkg/dberrors"
	"github.com/coursehub/catalog/internal/pkg/logger"
)

// LinkService handles course link operations
type LinkService struct {
	links LinkStore
}

// NewLinkService creates a new link service instance
func NewLinkService(links LinkStore) *LinkService {
	return &LinkService{links: links}
}

// InsertLink attaches a titled URL to a course. Duplicate links are allowed.
func (s *LinkService) InsertLink(ctx context.Context, courseID, title, url string) (*models.CourseResourceLink, error) {
	title = strings.TrimSpace(title)
	url = strings.TrimSpace(url)
	id := models.CanonicalCourseID(courseID)

	if title == "" || url == "" || id == "" {
		return nil, apperrors.NewValidationError("Title, url and course id can't be empty")
	}

	link, err := s.links.Create(ctx, models.CourseResourceLink{
		LinkID:    uuid.New(),
		CourseID:  id,
		LinkTitle: title,
		LinkURL:   url,
	})
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("courseId", id).Msg("Failed to insert course link")
		if dberrors.IsForeignKeyViolation(err) {
			msg := "course " + id + " does not exist"
			return nil, apperrors.NewStorageError(msg, err).
				WithDetails(map[string]interface{}{apperrors.PublicMessageKey: msg})
		}
		return nil, apperrors.NewStorageError("failed to insert course link", err)
	}

	return link, nil
}
