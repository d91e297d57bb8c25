package repository

import (
	"github.com/tranqh/quizhub/internal/model"
	"gorm.io/gorm"
)

// ResultRepository is append-only: there is deliberately no Update or Delete.
type ResultRepository interface {
	Create(result *model.Result) error
	FindByUserID(userID uint) ([]model.Result, error)
	FindByQuizID(quizID uint) ([]model.Result, error)
	FindAll() ([]model.Result, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(result *model.Result) error {
	return r.db.Create(result).Error
}

func (r *resultRepository) FindByUserID(userID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.db.Preload("Quiz").
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&results).Error
	return results, err
}

func (r *resultRepository) FindByQuizID(quizID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.db.Preload("Quiz").Where("quiz_id = ?", quizID).Find(&results).Error
	return results, err
}

func (r *resultRepository) FindAll() ([]model.Result, error) {
	var results []model.Result
	err := r.db.Preload("Quiz").Find(&results).Error
	return results, err
}
