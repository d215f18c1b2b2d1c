package repository

import (
	"context"

	"github.com/waste3d/course-provider/internal/domain"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CourseRepository struct {
	sessions *Sessions
}

func NewCourseRepository(sessions *Sessions) *CourseRepository {
	return &CourseRepository{sessions: sessions}
}

func (r *CourseRepository) Create(ctx context.Context, c *domain.Course) (*domain.Course, error) {
	var created domain.Course
	err := r.sessions.Do(ctx, func(tx *gorm.DB) error {
		entity := toGormCourse(c)
		if err := tx.Create(entity).Error; err != nil {
			return errors.Wrap(err, "insert course")
		}
		created = toDomainCourse(entity)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	var found domain.Course
	err := r.sessions.Do(ctx, func(tx *gorm.DB) error {
		entity, err := findCourse(tx, id)
		if err != nil {
			return err
		}
		found = toDomainCourse(entity)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

// List returns every course in the order the store yields them.
func (r *CourseRepository) List(ctx context.Context) ([]domain.Course, error) {
	var courses []domain.Course
	err := r.sessions.Do(ctx, func(tx *gorm.DB) error {
		var entities []CourseGorm
		if err := withNested(tx).Find(&entities).Error; err != nil {
			return errors.Wrap(err, "list courses")
		}
		courses = make([]domain.Course, 0, len(entities))
		for i := range entities {
			courses = append(courses, toDomainCourse(&entities[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// Update locks the course row, lets mutate overwrite it and writes the result
// in the same session. Prices and Content rows are always dropped and rebuilt.
// A course deleted concurrently is reported as ErrCourseNotFound.
func (r *CourseRepository) Update(ctx context.Context, id string, mutate func(*domain.Course)) (*domain.Course, error) {
	var updated domain.Course
	err := r.sessions.Do(ctx, func(tx *gorm.DB) error {
		existing, err := findCourse(lockForUpdate(tx), id)
		if err != nil {
			return err
		}

		course := toDomainCourse(existing)
		mutate(&course)
		course.ID = existing.ID

		if err := tx.Where("course_id = ?", existing.ID).Delete(&PricesGorm{}).Error; err != nil {
			return errors.Wrap(err, "drop prices")
		}
		if err := tx.Where("course_id = ?", existing.ID).Delete(&ContentGorm{}).Error; err != nil {
			return errors.Wrap(err, "drop content")
		}

		entity := toGormCourse(&course)
		entity.CreatedAt = existing.CreatedAt
		res := tx.Model(entity).Select("*").Omit(clause.Associations).Updates(entity)
		if res.Error != nil {
			return errors.Wrap(res.Error, "save course")
		}
		if res.RowsAffected == 0 {
			return domain.ErrCourseNotFound
		}
		if entity.Prices != nil {
			if err := tx.Create(entity.Prices).Error; err != nil {
				return errors.Wrap(err, "insert prices")
			}
		}
		if entity.Content != nil {
			if err := tx.Create(entity.Content).Error; err != nil {
				return errors.Wrap(err, "insert content")
			}
		}

		updated = toDomainCourse(entity)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the course together with its Prices and Content rows.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	return r.sessions.Do(ctx, func(tx *gorm.DB) error {
		existing, err := findCourse(lockForUpdate(tx), id)
		if err != nil {
			return err
		}
		res := tx.Select(clause.Associations).Delete(existing)
		if res.Error != nil {
			return errors.Wrap(res.Error, "delete course")
		}
		if res.RowsAffected == 0 {
			return domain.ErrCourseNotFound
		}
		return nil
	})
}

// lockForUpdate makes concurrent writers to the same course queue behind each
// other. SQLite has no row locks and drops the clause.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func withNested(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Prices").Preload("Content")
}

func findCourse(tx *gorm.DB, id string) (*CourseGorm, error) {
	var entity CourseGorm
	err := withNested(tx).First(&entity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, errors.Wrap(err, "find course")
	}
	return &entity, nil
}
