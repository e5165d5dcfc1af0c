package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/coursehub/catalog/internal/app/models"
	"github.com/coursehub/catalog/internal/app/models/dto"
	"github.com/coursehub/catalog/internal/middleware"
	"github.com/coursehub/catalog/internal/pkg/apperrors"
	"github.com/coursehub/catalog/internal/pkg/logger"
	"github.com/coursehub/catalog/internal/pkg/validation"
)

const (
	metadataField = "metadata"
	filesField    = "files"
)

// ResourceController handles course resource uploads
type ResourceController struct {
	resourceService ResourceUploader
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService ResourceUploader) *ResourceController {
	return &ResourceController{resourceService: resourceService}
}

// UploadResource handles a multipart resource upload
// @Summary Upload a course resource
// @Description Uploads the files to object storage and records the resource with its files. The metadata part is JSON: {"title","subtitle","course_id","resource_type","semester","academic_year","issolved"}.
// @Tags resources
// @Accept multipart/form-data
// @Produce json
// @Param course_id path string true "Course id, case-insensitive"
// @Param metadata formData string true "Resource metadata as JSON"
// @Param files formData file true "Files of the resource, repeatable"
// @Success 200 {object} models.CourseResource
// @Failure 400 {object} dto.ErrorResponse "Invalid metadata or no files"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 502 {object} dto.ErrorResponse "Object storage rejected the upload"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /course_resource/{course_id} [post]
func (c *ResourceController) UploadResource(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid multipart form: "+err.Error()))
		return
	}

	meta, err := readMetadata(form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	courseID := ctx.Param("course_id")
	if meta.CourseID != "" && !strings.EqualFold(strings.TrimSpace(meta.CourseID), strings.TrimSpace(courseID)) {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Course id in metadata does not match the path"))
		return
	}

	files, err := readFiles(form.File[filesField])
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resource, err := c.resourceService.UploadResource(ctx.Request.Context(), dto.UploadResourceInput{
		Title:        meta.Title,
		Subtitle:     meta.Subtitle,
		CourseID:     courseID,
		ResourceType: models.ResourceType(*meta.ResourceType),
		Semester:     meta.Semester,
		AcademicYear: meta.AcademicYear,
		IsSolved:     meta.IsSolved,
		Files:        files,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resource)
}

// readMetadata decodes the metadata part, sent either as a plain field or as a JSON file part
func readMetadata(form *multipart.Form) (*dto.ResourceMetadataRequest, error) {
	var raw []byte
	if values := form.Value[metadataField]; len(values) > 0 {
		raw = []byte(values[0])
	} else if parts := form.File[metadataField]; len(parts) > 0 {
		data, err := readPart(parts[0])
		if err != nil {
			return nil, apperrors.NewValidationError("Could not read metadata: " + err.Error())
		}
		raw = data
	} else {
		return nil, apperrors.NewValidationError("Missing metadata part")
	}

	var meta dto.ResourceMetadataRequest
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, apperrors.NewValidationError("Invalid metadata: " + err.Error())
	}
	if err := validation.Struct(meta); err != nil {
		return nil, apperrors.NewValidationError("Invalid metadata: " + err.Error())
	}
	return &meta, nil
}

func readFiles(headers []*multipart.FileHeader) ([]models.UploadFile, error) {
	files := make([]models.UploadFile, 0, len(headers))
	for _, header := range headers {
		data, err := readPart(header)
		if err != nil {
			logger.Warn().Err(err).Str("filename", header.Filename).Msg("Failed to read uploaded file")
			return nil, apperrors.NewValidationError(fmt.Sprintf("Could not read file %s", header.Filename))
		}
		files = append(files, models.UploadFile{Name: header.Filename, Data: data})
	}
	return files, nil
}

func readPart(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}
