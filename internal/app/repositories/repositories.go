package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository   *CourseRepository
	ResourceRepository *ResourceRepository
	LinkRepository     *LinkRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:   NewCourseRepository(db),
		ResourceRepository: NewResourceRepository(db),
		LinkRepository:     NewLinkRepository(db),
	}
}
