package dto

import "github.com/coursehub/catalog/internal/app/models"

// ResourceMetadataRequest is the JSON carried by the "metadata" multipart part
type ResourceMetadataRequest struct {
	Title        string  `json:"title" validate:"required" example:"Midterm 1"`
	Subtitle     *string `json:"subtitle,omitempty" example:"With solutions"`
	CourseID     string  `json:"course_id,omitempty" example:"CS116"` // optional, must match the path when set
	ResourceType *int16  `json:"resource_type" validate:"required" example:"1"`
	Semester     string  `json:"semester" validate:"required" example:"First"`
	AcademicYear int32   `json:"academic_year" validate:"required" example:"2024"`
	IsSolved     bool    `json:"issolved" example:"true"`
}

// UploadResourceInput is everything the upload pipeline needs
type UploadResourceInput struct {
	Title        string
	Subtitle     *string
	CourseID     string
	ResourceType models.ResourceType
	Semester     string
	AcademicYear int32
	IsSolved     bool
	Files        []models.UploadFile
}
