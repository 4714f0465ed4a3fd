package services

import (
	"context"
	"math"
	"time"

	"github.com/Latesh-31/Adaptlearn/internal/apperr"
	"github.com/Latesh-31/Adaptlearn/internal/models"

	"gorm.io/gorm"
)

// ProgressionService is the only code path that mutates module status.
// It enforces the gating invariant: one active module at most, completed
// before it, locked after it.
type ProgressionService struct {
	db *gorm.DB
}

func NewProgressionService(db *gorm.DB) *ProgressionService {
	return &ProgressionService{db: db}
}

// CompleteModule completes the course's active module and advances the
// pointer. The advance is a conditional update on the stored index, so
// two concurrent calls cannot both move it from the same starting state.
func (s *ProgressionService) CompleteModule(ctx context.Context, userID, courseID, moduleID uint) (*models.Course, error) {
	course, err := loadCourse(s.db, courseID, userID)
	if err != nil {
		return nil, err
	}

	if course.CurrentModuleIndex >= len(course.Modules) {
		return nil, apperr.InvalidState("course already completed")
	}

	current := &course.Modules[course.CurrentModuleIndex]
	if current.ID != moduleID {
		if findModule(course, moduleID) == nil {
			return nil, apperr.NotFound("module not found")
		}
		return nil, apperr.InvalidState("module must be active to complete")
	}
	if current.Status != models.ModuleStatusActive {
		return nil, apperr.InvalidState("module must be active to complete")
	}

	newIndex := course.CurrentModuleIndex + 1
	progress := progressFor(newIndex, len(course.Modules))
	now := time.Now()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Course{}).
			Where("id = ? AND current_module_index = ?", course.ID, course.CurrentModuleIndex).
			Updates(map[string]interface{}{
				"current_module_index": newIndex,
				"progress":             progress,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.InvalidState("module must be active to complete")
		}

		if err := tx.Model(&models.Module{}).Where("id = ?", current.ID).
			Updates(map[string]interface{}{
				"status":       models.ModuleStatusCompleted,
				"completed_at": now,
			}).Error; err != nil {
			return err
		}

		if newIndex < len(course.Modules) {
			if err := tx.Model(&models.Module{}).Where("id = ?", course.Modules[newIndex].ID).
				Update("status", models.ModuleStatusActive).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.From(err)
	}

	return loadCourse(s.db, courseID, userID)
}

func progressFor(index, count int) int {
	return int(math.Round(100 * float64(index) / float64(count)))
}
