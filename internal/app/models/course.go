package models

// Course represents a catalog course. Rows are seeded once and never mutated.
type Course struct {
	CourseID      string `json:"course_id" db:"course_id"`           // e.g. CS116
	CourseName    string `json:"course_name" db:"course_name"`       // e.g. Computing Fundamentals
	CourseFaculty int16  `json:"course_faculty" db:"course_faculty"` // faculty code
}
