package model

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleStudent UserRole = "STUDENT"
	RoleAdmin   UserRole = "ADMIN"
)

// ValidRole reports whether the given role is one of the recognized values.
func ValidRole(role UserRole) bool {
	return role == RoleStudent || role == RoleAdmin
}

type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `json:"name" gorm:"size:100;not null"`
	Email     string         `json:"email" gorm:"size:100;not null;uniqueIndex"` // Stored lowercased and trimmed
	Password  string         `json:"-" gorm:"size:100;not null"`                 // bcrypt hash, never serialized
	Role      UserRole       `json:"role" gorm:"size:20;not null;default:'STUDENT'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
