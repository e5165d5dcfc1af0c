package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursehub/catalog/internal/app/models"
	"github.com/coursehub/catalog/internal/app/models/dto"
	"github.com/coursehub/catalog/internal/middleware"
	"github.com/coursehub/catalog/internal/pkg/apperrors"
	"github.com/coursehub/catalog/internal/pkg/validation"
)

const invalidResourceTypeMessage = "Invalid resource type (Must be either 0 for Notes, or 1 for Exams)"

// CourseController handles course listing and details
type CourseController struct {
	courseService CourseQuerier
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService CourseQuerier) *CourseController {
	return &CourseController{courseService: courseService}
}

// ListCourses handles the paginated course listing
// @Summary List courses
// @Description Lists courses ordered by course id, 12 per page. The total reflects every course matching the filters.
// @Tags courses
// @Produce json
// @Param faculty query int false "Filter by faculty code"
// @Param search query string false "Case-insensitive substring of the course id or name"
// @Param page query int false "Page number, 1-based (default: 1)"
// @Success 200 {object} dto.CourseListResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	var req dto.CourseFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid query parameters: "+validation.BindingMessage(err)))
		return
	}

	resp, err := c.courseService.ListCourses(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetCourseDetails handles the course details view
// @Summary Get course details
// @Description Returns the course metadata, its resources of the requested type with their files, its links and the notes/exams tallies
// @Tags courses
// @Produce json
// @Param course_id path string true "Course id, case-insensitive"
// @Param resource_type query int true "0 for Notes, 1 for Exams"
// @Success 200 {object} dto.CourseDetailsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid resource type"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /course_details/{course_id} [get]
func (c *CourseController) GetCourseDetails(ctx *gin.Context) {
	var query dto.CourseDetailsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil || query.ResourceType == nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationErrorWithCause(invalidResourceTypeMessage, apperrors.ErrInvalidResourceType))
		return
	}

	details, err := c.courseService.GetCourseDetails(ctx.Request.Context(), ctx.Param("course_id"), models.ResourceType(*query.ResourceType))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, details)
}
