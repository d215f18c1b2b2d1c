package application

import (
	"context"
	"errors"

	"github.com/waste3d/course-provider/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CourseRepository is the persistence the service needs. Each call is one
// unit of work and reports a missing course as domain.ErrCourseNotFound.
type CourseRepository interface {
	Create(ctx context.Context, c *domain.Course) (*domain.Course, error)
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	List(ctx context.Context) ([]domain.Course, error)
	Update(ctx context.Context, id string, mutate func(*domain.Course)) (*domain.Course, error)
	Delete(ctx context.Context, id string) error
}

type CourseService struct {
	repo CourseRepository
	log  *zap.Logger
}

func NewCourseService(repo CourseRepository, log *zap.Logger) *CourseService {
	return &CourseService{repo: repo, log: log.Named("courses")}
}

// CreateCourse persists the request as-is. An empty ID gets a fresh UUID.
func (s *CourseService) CreateCourse(ctx context.Context, req domain.CourseCreateRequest) (*domain.Course, error) {
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	course := domain.NewCourse(id, req)
	created, err := s.repo.Create(ctx, &course)
	if err != nil {
		return nil, err
	}

	s.log.Info("course created", zap.String("course_id", created.ID))
	return created, nil
}

// GetCourseByID returns nil without an error when no course has the id.
func (s *CourseService) GetCourseByID(ctx context.Context, id string) (*domain.Course, error) {
	course, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrCourseNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) ListCourses(ctx context.Context) ([]domain.Course, error) {
	return s.repo.List(ctx)
}

// UpdateCourse overwrites every mutable field of the course named by req.ID.
// It returns nil without an error when the course does not exist.
func (s *CourseService) UpdateCourse(ctx context.Context, req domain.CourseUpdateRequest) (*domain.Course, error) {
	course, err := s.repo.Update(ctx, req.ID, req.Apply)
	if errors.Is(err, domain.ErrCourseNotFound) {
		s.log.Debug("update of missing course", zap.String("course_id", req.ID))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s.log.Info("course updated", zap.String("course_id", course.ID))
	return course, nil
}

// DeleteCourse reports whether a course was removed.
func (s *CourseService) DeleteCourse(ctx context.Context, id string) (bool, error) {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, domain.ErrCourseNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	s.log.Info("course deleted", zap.String("course_id", id))
	return true, nil
}
