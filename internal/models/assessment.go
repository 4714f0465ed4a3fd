package models

import (
	"time"

	"gorm.io/datatypes"
)

// Assessment is a diagnostic quiz instance. Rows are durable; the grading
// window itself is tracked separately with a TTL (see internal/cache).
type Assessment struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	UserID      uint                        `gorm:"not null;index" json:"user_id"`
	User        User                        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Topic       string                      `gorm:"size:255;not null" json:"topic"`
	Questions   []Question                  `gorm:"foreignKey:AssessmentID" json:"questions,omitempty"`
	Score       *int                        `json:"score,omitempty"`
	Analysis    string                      `gorm:"type:text" json:"analysis,omitempty"`
	Weaknesses  datatypes.JSONSlice[string] `json:"weaknesses"`
	CompletedAt *time.Time                  `json:"completed_at,omitempty"`
	CreatedAt   time.Time                   `json:"created_at"`
}

// Graded reports whether the assessment has been scored. Score and
// Analysis are set iff CompletedAt is set.
func (a *Assessment) Graded() bool {
	return a.CompletedAt != nil
}
