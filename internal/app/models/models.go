package models

import "strings"

// ResourceType distinguishes notes from exams
type ResourceType int16

const (
	ResourceTypeNotes ResourceType = 0
	ResourceTypeExams ResourceType = 1
)

// Valid reports whether the type is one of the known resource types
func (t ResourceType) Valid() bool {
	return t == ResourceTypeNotes || t == ResourceTypeExams
}

// Semester represents the academic term a resource belongs to
type Semester string

// Semester constants
const (
	SemesterFirst  Semester = "First"
	SemesterSecond Semester = "Second"
	SemesterSummer Semester = "Summer"
)

// ParseSemester matches input case-insensitively and returns the canonical label.
func ParseSemester(input string) (Semester, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "first":
		return SemesterFirst, true
	case "second":
		return SemesterSecond, true
	case "summer":
		return SemesterSummer, true
	default:
		return "", false
	}
}

// CanonicalCourseID uppercases a course id for lookups and inserts
func CanonicalCourseID(courseID string) string {
	return strings.ToUpper(strings.TrimSpace(courseID))
}
