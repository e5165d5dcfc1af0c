package models

import (
	"time"

	"github.com/google/uuid"
)

// CourseResource is an uploaded study material entry (notes or exam)
type CourseResource struct {
	ResourceID   uuid.UUID    `json:"resource_id" db:"resource_id"`
	CourseID     string       `json:"course_id" db:"course_id"`
	Title        string       `json:"title" db:"title"`
	Subtitle     *string      `json:"subtitle" db:"subtitle"`
	ResourceType ResourceType `json:"resource_type" db:"resource_type"`
	DateUploaded time.Time    `json:"dateuploaded" db:"dateuploaded"`
	Semester     Semester     `json:"semester" db:"semester"`
	AcademicYear int32        `json:"academic_year" db:"academic_year"`
	IsSolved     bool         `json:"issolved" db:"issolved"`

	// Files is populated by the upload flow, not stored on the row
	Files []CourseResourceFile `json:"files,omitempty"`
}

// CourseResourceFile is one object attached to a resource
type CourseResourceFile struct {
	FileID     uuid.UUID `json:"file_id" db:"file_id"`
	ResourceID uuid.UUID `json:"resource_id" db:"resource_id"`
	FileName   string    `json:"file_name" db:"file_name"`
	FileURL    string    `json:"file_url" db:"file_url"`
}

// UploadFile is a file received from the client, before it reaches the object store
type UploadFile struct {
	Name string
	Data []byte
}
