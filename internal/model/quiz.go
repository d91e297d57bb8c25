package model

import (
	"time"

	"gorm.io/gorm"
)

type Quiz struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Title           string         `json:"title" gorm:"not null"`
	Description     string         `json:"description,omitempty"`
	Category        string         `json:"category" gorm:"index"`
	Difficulty      string         `json:"difficulty" gorm:"index"` // "Easy", "Medium", "Hard"
	DurationMinutes int            `json:"duration_minutes"`
	IsActive        bool           `json:"is_active" gorm:"default:true"`
	Questions       []Question     `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
