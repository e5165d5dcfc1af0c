package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursehub/catalog/internal/app/models"
	"github.com/coursehub/catalog/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func int16Ptr(v int16) *int16 { return &v }

func TestListCoursesQueryWithoutFilters(t *testing.T) {
	sql, args, err := listCoursesQuery(CourseFilter{}, 24, 12).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT course_id, course_name, course_faculty FROM courses ORDER BY course_id ASC LIMIT 12 OFFSET 24", sql)
	assert.Empty(t, args)
}

func TestListCoursesQueryAppliesSearchAndFaculty(t *testing.T) {
	filter := CourseFilter{Faculty: int16Ptr(3), Search: strPtr(" cs1 ")}

	sql, args, err := listCoursesQuery(filter, 0, 12).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT course_id, course_name, course_faculty FROM courses "+
			"WHERE (course_id ILIKE $1 OR course_name ILIKE $2) AND course_faculty = $3 "+
			"ORDER BY course_id ASC LIMIT 12 OFFSET 0",
		sql)
	assert.Equal(t, []interface{}{"%cs1%", "%cs1%", int16(3)}, args)
}

func TestCountCoursesQuerySharesPredicate(t *testing.T) {
	filter := CourseFilter{Faculty: int16Ptr(1), Search: strPtr("calc")}

	listSQL, listArgs, err := listCoursesQuery(filter, 12, 12).ToSql()
	require.NoError(t, err)
	countSQL, countArgs, err := countCoursesQuery(filter).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM courses WHERE (course_id ILIKE $1 OR course_name ILIKE $2) AND course_faculty = $3", countSQL)
	assert.Equal(t, listArgs, countArgs)
	assert.NotContains(t, countSQL, "LIMIT")
	assert.Contains(t, listSQL, "LIMIT 12 OFFSET 12")
}

func TestBlankSearchIsIgnored(t *testing.T) {
	sql, args, err := countCoursesQuery(CourseFilter{Search: strPtr("   ")}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM courses", sql)
	assert.Empty(t, args)
}

func TestEscapeLikePattern(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLikePattern("100%"))
	assert.Equal(t, `CS\_1`, escapeLikePattern("CS_1"))
	assert.Equal(t, `a\\b`, escapeLikePattern(`a\b`))
	assert.Equal(t, "plain", escapeLikePattern("plain"))
}

func TestInsertCoursesQueryCanonicalizesIDs(t *testing.T) {
	sql, args, err := insertCoursesQuery([]models.Course{
		{CourseID: "cs116", CourseName: "Computing Fundamentals", CourseFaculty: 1},
		{CourseID: "MATH101", CourseName: "Calculus I", CourseFaculty: 2},
	}).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO courses (course_id,course_name,course_faculty) VALUES ($1,$2,$3),($4,$5,$6) ON CONFLICT (course_id) DO NOTHING",
		sql)
	assert.Equal(t, []interface{}{"CS116", "Computing Fundamentals", int16(1), "MATH101", "Calculus I", int16(2)}, args)
}

type countingLookup struct {
	calls   int
	courses map[string]models.Course
	err     error
}

func (l *countingLookup) GetByID(_ context.Context, courseID string) (*models.Course, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	course, ok := l.courses[courseID]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return &course, nil
}

func TestCachedCourseLookupServesRepeatsFromCache(t *testing.T) {
	inner := &countingLookup{courses: map[string]models.Course{
		"CS116": {CourseID: "CS116", CourseName: "Computing Fundamentals", CourseFaculty: 1},
	}}
	cached, err := NewCachedCourseLookup(inner, 8)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		course, err := cached.GetByID(context.Background(), "CS116")
		require.NoError(t, err)
		assert.Equal(t, "Computing Fundamentals", course.CourseName)
	}
	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, 1, cached.Len())
}

func TestCachedCourseLookupDoesNotCacheMisses(t *testing.T) {
	inner := &countingLookup{courses: map[string]models.Course{}}
	cached, err := NewCachedCourseLookup(inner, 8)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := cached.GetByID(context.Background(), "NOPE1")
		assert.True(t, errors.Is(err, apperrors.ErrCourseNotFound))
	}
	assert.Equal(t, 2, inner.calls)
	assert.Zero(t, cached.Len())
}

func TestCachedCourseLookupRejectsInvalidSize(t *testing.T) {
	_, err := NewCachedCourseLookup(&countingLookup{}, 0)
	assert.Error(t, err)
}
