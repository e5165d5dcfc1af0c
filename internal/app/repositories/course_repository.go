package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursehub/catalog/internal/app/models"
	"github.com/coursehub/catalog/internal/pkg/apperrors"
)

// courseInsertChunk keeps a bulk insert well below the postgres bind parameter limit
const courseInsertChunk = 1000

var courseColumns = []string{"course_id", "course_name", "course_faculty"}

// CourseFilter narrows a course listing
type CourseFilter struct {
	Faculty *int16
	Search  *string
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// ListCourses returns one page of courses matching the filter, ordered by course id
func (r *CourseRepository) ListCourses(ctx context.Context, filter CourseFilter, offset, limit uint64) ([]models.Course, error) {
	sql, args, err := listCoursesQuery(filter, offset, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0, limit)
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.CourseID, &course.CourseName, &course.CourseFaculty); err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// CountCourses counts every course matching the filter, ignoring pagination
func (r *CourseRepository) CountCourses(ctx context.Context, filter CourseFilter) (int64, error) {
	sql, args, err := countCoursesQuery(filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return total, nil
}

// GetByID retrieves a course by its canonical id.
// Returns apperrors.ErrCourseNotFound when there is no such course.
func (r *CourseRepository) GetByID(ctx context.Context, courseID string) (*models.Course, error) {
	sql, args, err := squirrel.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"course_id": courseID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var course models.Course
	err = r.db.QueryRow(ctx, sql, args...).Scan(&course.CourseID, &course.CourseName, &course.CourseFaculty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// Count returns the number of rows in the courses table
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return total, nil
}

// BulkInsert inserts courses in chunks, skipping ids that already exist.
// It returns the number of rows actually inserted.
func (r *CourseRepository) BulkInsert(ctx context.Context, courses []models.Course) (int64, error) {
	var inserted int64
	for start := 0; start < len(courses); start += courseInsertChunk {
		end := min(start+courseInsertChunk, len(courses))

		sql, args, err := insertCoursesQuery(courses[start:end]).ToSql()
		if err != nil {
			return inserted, fmt.Errorf("error building SQL: %w", err)
		}

		tag, err := r.db.Exec(ctx, sql, args...)
		if err != nil {
			return inserted, fmt.Errorf("error inserting courses: %w", err)
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

func listCoursesQuery(filter CourseFilter, offset, limit uint64) squirrel.SelectBuilder {
	return applyCourseFilter(squirrel.Select(courseColumns...).From("courses"), filter).
		OrderBy("course_id ASC").
		Limit(limit).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar)
}

func countCoursesQuery(filter CourseFilter) squirrel.SelectBuilder {
	return applyCourseFilter(squirrel.Select("COUNT(*)").From("courses"), filter).
		PlaceholderFormat(squirrel.Dollar)
}

// applyCourseFilter adds the search and faculty predicates shared by the page and count queries
func applyCourseFilter(builder squirrel.SelectBuilder, filter CourseFilter) squirrel.SelectBuilder {
	if filter.Search != nil {
		if term := strings.TrimSpace(*filter.Search); term != "" {
			pattern := "%" + escapeLikePattern(term) + "%"
			builder = builder.Where(squirrel.Or{
				squirrel.ILike{"course_id": pattern},
				squirrel.ILike{"course_name": pattern},
			})
		}
	}

	if filter.Faculty != nil {
		builder = builder.Where(squirrel.Eq{"course_faculty": *filter.Faculty})
	}

	return builder
}

func insertCoursesQuery(courses []models.Course) squirrel.InsertBuilder {
	builder := squirrel.Insert("courses").
		Columns(courseColumns...).
		Suffix("ON CONFLICT (course_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)
	for _, course := range courses {
		builder = builder.Values(models.CanonicalCourseID(course.CourseID), course.CourseName, course.CourseFaculty)
	}
	return builder
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLikePattern makes user input match literally inside a LIKE pattern
func escapeLikePattern(term string) string {
	return likeEscaper.Replace(term)
}
