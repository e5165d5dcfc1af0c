package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursehub/catalog/internal/app/models/dto"
	"github.com/coursehub/catalog/internal/middleware"
	"github.com/coursehub/catalog/internal/pkg/apperrors"
	"github.com/coursehub/catalog/internal/pkg/validation"
)

// LinkController handles course link operations
type LinkController struct {
	linkService LinkInserter
}

// NewLinkController creates a new LinkController
func NewLinkController(linkService LinkInserter) *LinkController {
	return &LinkController{linkService: linkService}
}

// CreateLink handles attaching a link to a course
// @Summary Add a course link
// @Description Attaches an external URL to a course. Duplicates are allowed.
// @Tags links
// @Accept json
// @Produce json
// @Param course_id path string true "Course id, case-insensitive"
// @Param request body dto.CreateLinkRequest true "Link title and URL"
// @Success 200 {object} models.CourseResourceLink
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /course_link/{course_id} [post]
func (c *LinkController) CreateLink(ctx *gin.Context) {
	var req dto.CreateLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid request body: "+validation.BindingMessage(err)))
		return
	}

	link, err := c.linkService.InsertLink(ctx.Request.Context(), ctx.Param("course_id"), req.Title, req.URL)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, link)
}
