package models

import "gorm.io/datatypes"

// Question stores the correct answer as the exact option text. It is
// never serialized to clients.
type Question struct {
	ID            uint                        `gorm:"primaryKey" json:"id"`
	AssessmentID  uint                        `gorm:"not null;index" json:"assessment_id"`
	OrderNum      int                         `gorm:"not null" json:"order_num"`
	Text          string                      `gorm:"type:text;not null" json:"text"`
	Options       datatypes.JSONSlice[string] `gorm:"not null" json:"options"`
	CorrectAnswer string                      `gorm:"size:500;not null" json:"-"`
	UserAnswer    string                      `gorm:"size:500" json:"user_answer,omitempty"`
	IsCorrect     *bool                       `json:"is_correct,omitempty"`
}
