package models

import "time"

// Module status is derived from the course's current module index: modules
// before it are completed, the one at it is active, the rest are locked.
// Only the progression service mutates Status.
type Module struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	CourseID    uint       `gorm:"not null;index" json:"course_id"`
	OrderNum    int        `gorm:"not null" json:"order_num"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Content     string     `gorm:"type:text;not null;default:''" json:"content,omitempty"`
	Status      string     `gorm:"size:20;not null;default:'locked'" json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

const (
	ModuleStatusLocked    = "locked"
	ModuleStatusActive    = "active"
	ModuleStatusCompleted = "completed"
)
