package services

import (
	"github.com/Latesh-31/Adaptlearn/internal/apperr"
	"github.com/Latesh-31/Adaptlearn/internal/models"

	"gorm.io/gorm"
)

type CourseService struct {
	db *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{db: db}
}

func (s *CourseService) ListCourses(userID uint) ([]models.Course, error) {
	var courses []models.Course
	err := s.db.Where("user_id = ?", userID).
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_num ASC")
		}).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return courses, nil
}

// GetCourse returns the course with its roadmap, module statuses included.
func (s *CourseService) GetCourse(courseID, userID uint) (*models.Course, error) {
	return loadCourse(s.db, courseID, userID)
}

func (s *CourseService) DeleteCourse(courseID, userID uint) error {
	course, err := loadCourse(s.db, courseID, userID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Module{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Course{}, course.ID).Error
	})
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// loadCourse resolves a course with its ordered roadmap and enforces
// ownership. Shared by the course, progression, and tutor services.
func loadCourse(db *gorm.DB, courseID, userID uint) (*models.Course, error) {
	var course models.Course
	err := db.Preload("Modules", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_num ASC")
	}).First(&course, courseID).Error
	if err != nil {
		return nil, apperr.NotFound("course not found")
	}
	if course.UserID != userID {
		return nil, apperr.Unauthorized("access denied")
	}
	return &course, nil
}

func findModule(course *models.Course, moduleID uint) *models.Module {
	for i := range course.Modules {
		if course.Modules[i].ID == moduleID {
			return &course.Modules[i]
		}
	}
	return nil
}
