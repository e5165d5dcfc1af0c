package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursehub/catalog/internal/app/models"
)

var linkColumns = []string{"link_id", "course_id", "link_title", "link_url"}

// LinkRepository handles database operations for course links
type LinkRepository struct {
	db *pgxpool.Pool
}

// NewLinkRepository creates a new link repository
func NewLinkRepository(db *pgxpool.Pool) *LinkRepository {
	return &LinkRepository{db: db}
}

// ListByCourse returns every link attached to a course
func (r *LinkRepository) ListByCourse(ctx context.Context, courseID string) ([]models.CourseResourceLink, error) {
	sql, args, err := squirrel.Select(linkColumns...).
		From("course_resource_links").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("link_title ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing course links: %w", err)
	}
	defer rows.Close()

	var links []models.CourseResourceLink
	for rows.Next() {
		var link models.CourseResourceLink
		if err := rows.Scan(&link.LinkID, &link.CourseID, &link.LinkTitle, &link.LinkURL); err != nil {
			return nil, fmt.Errorf("error scanning course link row: %w", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course link rows: %w", err)
	}

	return links, nil
}

// Create inserts a link and returns the stored row
func (r *LinkRepository) Create(ctx context.Context, link models.CourseResourceLink) (*models.CourseResourceLink, error) {
	sql, args, err := insertLinkQuery(link).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var created models.CourseResourceLink
	err = r.db.QueryRow(ctx, sql, args...).Scan(&created.LinkID, &created.CourseID, &created.LinkTitle, &created.LinkURL)
	if err != nil {
		return nil, fmt.Errorf("error creating course link: %w", err)
	}
	return &created, nil
}

func insertLinkQuery(link models.CourseResourceLink) squirrel.InsertBuilder {
	return squirrel.Insert("course_resource_links").
		Columns(linkColumns...).
		Values(link.LinkID, link.CourseID, link.LinkTitle, link.LinkURL).
		Suffix("RETURNING link_id, course_id, link_title, link_url").
		PlaceholderFormat(squirrel.Dollar)
}
