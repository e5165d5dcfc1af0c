package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursehub/catalog/internal/app/models"
)

var (
	resourceColumns = []string{
		"resource_id", "course_id", "title", "subtitle", "resource_type",
		"dateuploaded", "semester", "academic_year", "issolved",
	}
	resourceFileColumns = []string{"file_id", "resource_id", "file_name", "file_url"}
)

// ResourceTypeCounts holds the number of notes and exams of a course
type ResourceTypeCounts struct {
	Notes int64
	Exams int64
}

// ResourceRepository handles database operations for course resources and their files
type ResourceRepository struct {
	db *pgxpool.Pool
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// ListByCourseAndType returns the resources of a course with the given type, newest first
func (r *ResourceRepository) ListByCourseAndType(ctx context.Context, courseID string, resourceType models.ResourceType) ([]models.CourseResource, error) {
	sql, args, err := listResourcesQuery(courseID, resourceType).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing course resources: %w", err)
	}
	defer rows.Close()

	var resources []models.CourseResource
	for rows.Next() {
		var resource models.CourseResource
		if err := rows.Scan(
			&resource.ResourceID,
			&resource.CourseID,
			&resource.Title,
			&resource.Subtitle,
			&resource.ResourceType,
			&resource.DateUploaded,
			&resource.Semester,
			&resource.AcademicYear,
			&resource.IsSolved,
		); err != nil {
			return nil, fmt.Errorf("error scanning course resource row: %w", err)
		}
		resources = append(resources, resource)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course resource rows: %w", err)
	}

	return resources, nil
}

// CountByType counts notes and exams of a course in one round trip
func (r *ResourceRepository) CountByType(ctx context.Context, courseID string) (ResourceTypeCounts, error) {
	sql, args, err := countResourcesByTypeQuery(courseID).ToSql()
	if err != nil {
		return ResourceTypeCounts{}, fmt.Errorf("error building SQL: %w", err)
	}

	var counts ResourceTypeCounts
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&counts.Notes, &counts.Exams); err != nil {
		return ResourceTypeCounts{}, fmt.Errorf("error counting course resources: %w", err)
	}
	return counts, nil
}

// Create inserts a resource row. dateuploaded is set by the database and
// written back into resource.
func (r *ResourceRepository) Create(ctx context.Context, resource *models.CourseResource) error {
	sql, args, err := squirrel.Insert("course_resources").
		Columns("resource_id", "course_id", "title", "subtitle", "resource_type", "semester", "academic_year", "issolved").
		Values(
			resource.ResourceID,
			resource.CourseID,
			resource.Title,
			resource.Subtitle,
			resource.ResourceType,
			resource.Semester,
			resource.AcademicYear,
			resource.IsSolved,
		).
		Suffix("RETURNING dateuploaded").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&resource.DateUploaded); err != nil {
		return fmt.Errorf("error creating course resource: %w", err)
	}
	return nil
}

// CreateFiles inserts all file rows of a resource as a single statement
func (r *ResourceRepository) CreateFiles(ctx context.Context, files []models.CourseResourceFile) error {
	if len(files) == 0 {
		return nil
	}

	sql, args, err := insertFilesQuery(files).ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error creating course resource files: %w", err)
	}
	return nil
}

// ListFiles returns the files attached to a resource
func (r *ResourceRepository) ListFiles(ctx context.Context, resourceID uuid.UUID) ([]models.CourseResourceFile, error) {
	sql, args, err := squirrel.Select(resourceFileColumns...).
		From("course_resource_files").
		Where(squirrel.Eq{"resource_id": resourceID}).
		OrderBy("file_name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing resource files: %w", err)
	}
	defer rows.Close()

	files := []models.CourseResourceFile{}
	for rows.Next() {
		var file models.CourseResourceFile
		if err := rows.Scan(&file.FileID, &file.ResourceID, &file.FileName, &file.FileURL); err != nil {
			return nil, fmt.Errorf("error scanning resource file row: %w", err)
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating resource file rows: %w", err)
	}

	return files, nil
}

func listResourcesQuery(courseID string, resourceType models.ResourceType) squirrel.SelectBuilder {
	return squirrel.Select(resourceColumns...).
		From("course_resources").
		Where(squirrel.Eq{"course_id": courseID, "resource_type": resourceType}).
		OrderBy("dateuploaded DESC", "resource_id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func countResourcesByTypeQuery(courseID string) squirrel.SelectBuilder {
	return squirrel.Select(
		fmt.Sprintf("COUNT(*) FILTER (WHERE resource_type = %d)", models.ResourceTypeNotes),
		fmt.Sprintf("COUNT(*) FILTER (WHERE resource_type = %d)", models.ResourceTypeExams),
	).
		From("course_resources").
		Where(squirrel.Eq{"course_id": courseID}).
		PlaceholderFormat(squirrel.Dollar)
}

func insertFilesQuery(files []models.CourseResourceFile) squirrel.InsertBuilder {
	builder := squirrel.Insert("course_resource_files").
		Columns(resourceFileColumns...).
		PlaceholderFormat(squirrel.Dollar)
	for _, file := range files {
		builder = builder.Values(file.FileID, file.ResourceID, file.FileName, file.FileURL)
	}
	return builder
}
