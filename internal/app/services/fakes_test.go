package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/coursehub/catalog/internal/app/models"
	"github.com/coursehub/catalog/internal/app/repositories"
	"github.com/coursehub/catalog/internal/pkg/apperrors"
)

var errDown = errors.New("database is down")

// memCourses filters an in-memory catalog the way the SQL queries do
type memCourses struct {
	courses []models.Course
	err     error
}

func (m *memCourses) match(filter repositories.CourseFilter) []models.Course {
	var out []models.Course
	for _, c := range m.courses {
		if filter.Faculty != nil && c.CourseFaculty != *filter.Faculty {
			continue
		}
		if filter.Search != nil {
			term := strings.ToLower(strings.TrimSpace(*filter.Search))
			if term != "" && !strings.Contains(strings.ToLower(c.CourseID), term) &&
				!strings.Contains(strings.ToLower(c.CourseName), term) {
				continue
			}
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CourseID < out[j].CourseID })
	return out
}

func (m *memCourses) ListCourses(_ context.Context, filter repositories.CourseFilter, offset, limit uint64) ([]models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	all := m.match(filter)
	if offset >= uint64(len(all)) {
		return nil, nil
	}
	end := min(offset+limit, uint64(len(all)))
	return all[offset:end], nil
}

func (m *memCourses) CountCourses(_ context.Context, filter repositories.CourseFilter) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.match(filter))), nil
}

func (m *memCourses) GetByID(_ context.Context, courseID string) (*models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, c := range m.courses {
		if c.CourseID == courseID {
			course := c
			return &course, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

type memResources struct {
	mu             sync.Mutex
	resources      []models.CourseResource
	files          map[uuid.UUID][]models.CourseResourceFile
	failFilesFor   map[uuid.UUID]bool
	listErr        error
	createErr      error
	createFilesErr error
	created        []*models.CourseResource
	createdFiles   [][]models.CourseResourceFile
}

func newMemResources() *memResources {
	return &memResources{
		files:        map[uuid.UUID][]models.CourseResourceFile{},
		failFilesFor: map[uuid.UUID]bool{},
	}
}

func (m *memResources) ListByCourseAndType(_ context.Context, courseID string, resourceType models.ResourceType) ([]models.CourseResource, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []models.CourseResource
	for _, r := range m.resources {
		if r.CourseID == courseID && r.ResourceType == resourceType {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memResources) CountByType(_ context.Context, courseID string) (repositories.ResourceTypeCounts, error) {
	var counts repositories.ResourceTypeCounts
	for _, r := range m.resources {
		if r.CourseID != courseID {
			continue
		}
		switch r.ResourceType {
		case models.ResourceTypeNotes:
			counts.Notes++
		case models.ResourceTypeExams:
			counts.Exams++
		}
	}
	return counts, nil
}

func (m *memResources) Create(_ context.Context, resource *models.CourseResource) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	resource.DateUploaded = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m.created = append(m.created, resource)
	return nil
}

func (m *memResources) CreateFiles(_ context.Context, files []models.CourseResourceFile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createFilesErr != nil {
		return m.createFilesErr
	}
	m.createdFiles = append(m.createdFiles, files)
	return nil
}

func (m *memResources) ListFiles(_ context.Context, resourceID uuid.UUID) ([]models.CourseResourceFile, error) {
	if m.failFilesFor[resourceID] {
		return nil, errDown
	}
	return m.files[resourceID], nil
}

type memLinks struct {
	links     []models.CourseResourceLink
	createErr error
}

func (m *memLinks) ListByCourse(_ context.Context, courseID string) ([]models.CourseResourceLink, error) {
	var out []models.CourseResourceLink
	for _, l := range m.links {
		if l.CourseID == courseID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *memLinks) Create(_ context.Context, link models.CourseResourceLink) (*models.CourseResourceLink, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.links = append(m.links, link)
	return &link, nil
}

// memStore is an in-memory object store
type memStore struct {
	mu       sync.Mutex
	objects  map[string][]byte
	types    map[string]string
	failKeys map[string]bool
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}, types: map[string]string{}, failKeys: map[string]bool{}}
}

func (s *memStore) Put(_ context.Context, key string, data []byte, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for suffix := range s.failKeys {
		if strings.HasSuffix(key, suffix) {
			return apperrors.NewUploadError("failed to upload "+key, errors.New("object store responded with status 500"))
		}
	}
	s.objects[key] = data
	s.types[key] = contentType
	return nil
}

func (s *memStore) PublicURL(key string) string {
	return "https://storage.googleapis.com/gjufilesresources/" + key
}

func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
