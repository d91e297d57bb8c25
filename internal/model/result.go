package model

import (
	"time"

	"gorm.io/gorm"
)

// Result is the immutable outcome of grading one attempt. It is written
// exactly once by the grading service and never updated afterwards.
type Result struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	UserID         uint           `json:"user_id" gorm:"not null;index"`
	User           User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	QuizID         uint           `json:"quiz_id" gorm:"not null;index"`
	Quiz           Quiz           `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	Score          int            `json:"score" gorm:"not null"` // 0-100
	TotalQuestions int            `json:"total_questions" gorm:"not null"`
	CorrectAnswers int            `json:"correct_answers" gorm:"not null"`
	TimeTaken      int            `json:"time_taken"` // seconds
	CompletedAt    time.Time      `json:"completed_at" gorm:"autoCreateTime;index"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
