package models

import (
	"time"

	"gorm.io/datatypes"
)

type Course struct {
	ID                 uint                        `gorm:"primaryKey" json:"id"`
	UserID             uint                        `gorm:"not null;index" json:"user_id"`
	User               User                        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Topic              string                      `gorm:"size:255;not null" json:"topic"`
	Level              string                      `gorm:"size:20;not null;default:'beginner'" json:"level"`
	Modules            []Module                    `gorm:"foreignKey:CourseID" json:"modules,omitempty"`
	Progress           int                         `gorm:"not null;default:0" json:"progress"`
	Weaknesses         datatypes.JSONSlice[string] `json:"weaknesses"`
	AssessmentScore    int                         `gorm:"not null" json:"assessment_score"`
	CurrentModuleIndex int                         `gorm:"not null;default:0" json:"current_module_index"`
	CreatedAt          time.Time                   `json:"created_at"`
	UpdatedAt          time.Time                   `json:"updated_at"`
}

const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Finished reports whether every module has been completed.
func (c *Course) Finished() bool {
	return c.CurrentModuleIndex >= len(c.Modules) && len(c.Modules) > 0
}
