package dto

import "github.com/coursehub/catalog/internal/app/models"

// CourseFilterRequest holds the optional listing filters from the query string
type CourseFilterRequest struct {
	Faculty *int16  `form:"faculty"`
	Search  *string `form:"search"`
	Page    *int    `form:"page"`
}

// PaginationInfo describes the page returned by a listing
type PaginationInfo struct {
	CurrentPage int   `json:"page"`
	TotalPages  int   `json:"total_pages"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
}

// CourseListResponse is the body of GET /v1/courses
type CourseListResponse struct {
	Courses      []models.Course `json:"courses"`
	TotalCourses int64           `json:"total_courses"`
	Pagination   PaginationInfo  `json:"pagination"`
}

// CourseDetailsQuery holds the query string of GET /v1/course_details/{course_id}
type CourseDetailsQuery struct {
	ResourceType *int16 `form:"resource_type" binding:"required"`
}

// ResourceWithFiles pairs a resource row with its attached files
type ResourceWithFiles struct {
	ResourceInfo models.CourseResource       `json:"resource_info"`
	Files        []models.CourseResourceFile `json:"files"`
}

// LinkResponse is the public shape of a course link. Identifiers are left out
// because the caller already knows the course.
type LinkResponse struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// CourseDetailsResponse is the composite body of GET /v1/course_details/{course_id}
type CourseDetailsResponse struct {
	Metadata  models.Course       `json:"metadata"`
	Resources []ResourceWithFiles `json:"resources"`
	Links     []LinkResponse      `json:"links"`
	NoNotes   int64               `json:"no_notes"`
	NoExams   int64               `json:"no_exams"`
}
