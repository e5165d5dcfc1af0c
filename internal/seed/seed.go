package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/coursehub/catalog/internal/app/models"
)

// CourseSeeder is the part of the course repository used for seeding
type CourseSeeder interface {
	Count(ctx context.Context) (int64, error)
	BulkInsert(ctx context.Context, courses []models.Course) (int64, error)
}

// catalogEntry is one element of the static course catalog file
type catalogEntry struct {
	Faculty int16  `json:"faculty"`
	ID      string `json:"id"`
	Name    string `json:"name"`
}

// LoadCourseCatalog decodes a JSON array of {faculty, id, name} entries.
// Entries without an id are rejected; ids are canonicalized to uppercase.
func LoadCourseCatalog(r io.Reader) ([]models.Course, error) {
	var entries []catalogEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode course catalog: %w", err)
	}

	courses := make([]models.Course, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for i, entry := range entries {
		id := models.CanonicalCourseID(entry.ID)
		if id == "" {
			return nil, fmt.Errorf("course catalog entry %d has no id", i)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		courses = append(courses, models.Course{
			CourseID:      id,
			CourseName:    strings.TrimSpace(entry.Name),
			CourseFaculty: entry.Faculty,
		})
	}
	return courses, nil
}

// SeedCoursesIfEmpty loads the catalog file into an empty courses table.
// A table that already holds rows is left untouched.
func SeedCoursesIfEmpty(ctx context.Context, store CourseSeeder, catalogPath string, lgr zerolog.Logger) (int64, error) {
	count, err := store.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		lgr.Debug().Int64("courses", count).Msg("Courses already seeded, skipping")
		return 0, nil
	}

	if catalogPath == "" {
		return 0, fmt.Errorf("course catalog path is not configured")
	}

	file, err := os.Open(catalogPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open course catalog: %w", err)
	}
	defer file.Close()

	courses, err := LoadCourseCatalog(file)
	if err != nil {
		return 0, err
	}

	lgr.Info().Int("courses", len(courses)).Str("path", catalogPath).Msg("Seeding course catalog")
	inserted, err := store.BulkInsert(ctx, courses)
	if err != nil {
		lgr.Error().Err(err).Int64("inserted", inserted).Msg("Course seeding stopped early")
		return inserted, err
	}

	lgr.Info().Int64("inserted", inserted).Msg("Course catalog seeded")
	return inserted, nil
}
