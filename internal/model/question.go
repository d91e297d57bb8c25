package model

import (
	"time"

	"gorm.io/gorm"
)

// Question always belongs to exactly one Quiz and is removed with it.
// CorrectAnswer indexes into Options (0-3) and must never reach
// student-facing responses; DTO mapping is responsible for that.
type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	QuizID        uint           `json:"quiz_id" gorm:"not null;index"`
	Text          string         `json:"text" gorm:"type:text;not null"`
	Options       []string       `json:"options" gorm:"serializer:json;not null"`
	CorrectAnswer int            `json:"correct_answer" gorm:"not null"`
	Position      int            `json:"position" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
