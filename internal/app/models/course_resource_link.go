package models

import "github.com/google/uuid"

// CourseResourceLink is an external URL attached to a course
type CourseResourceLink struct {
	LinkID    uuid.UUID `json:"link_id" db:"link_id"`
	CourseID  string    `json:"course_id" db:"course_id"`
	LinkTitle string    `json:"link_title" db:"link_title"`
	LinkURL   string    `json:"link_url" db:"link_url"`
}
