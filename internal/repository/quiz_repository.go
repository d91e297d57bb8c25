package repository

import (
	"github.com/tranqh/quizhub/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	FindByID(id uint) (*model.Quiz, error)
	FindByIDWithQuestions(id uint) (*model.Quiz, error)
	FindAllWithQuestionCount(activeOnly bool) ([]QuizWithQuestionCount, error)
	FindByCategory(category string) ([]model.Quiz, error)
	FindByDifficulty(difficulty string) ([]model.Quiz, error)
	Update(quiz *model.Quiz) error
	ReplaceQuestions(quizID uint, questions []model.Question) error
	Delete(id uint) error
}

type QuizWithQuestionCount struct {
	model.Quiz
	QuestionCount int
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	// GORM creates the owned questions along with the quiz when
	// quiz.Questions is populated.
	return r.db.Create(quiz).Error
}

func (r *quizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.position ASC")
	}).First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindAllWithQuestionCount(activeOnly bool) ([]QuizWithQuestionCount, error) {
	var results []QuizWithQuestionCount
	query := r.db.Model(&model.Quiz{}).
		Select("quizzes.*, (SELECT COUNT(*) FROM questions WHERE questions.quiz_id = quizzes.id AND questions.deleted_at IS NULL) as question_count").
		Where("quizzes.deleted_at IS NULL").
		Order("quizzes.created_at DESC")
	if activeOnly {
		query = query.Where("quizzes.is_active = ?", true)
	}
	err := query.Scan(&results).Error
	return results, err
}

func (r *quizRepository) FindByCategory(category string) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.Where("category = ? AND is_active = ?", category, true).
		Order("created_at DESC").Find(&quizzes).Error
	return quizzes, err
}

func (r *quizRepository) FindByDifficulty(difficulty string) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.Where("difficulty = ? AND is_active = ?", difficulty, true).
		Order("created_at DESC").Find(&quizzes).Error
	return quizzes, err
}

func (r *quizRepository) Update(quiz *model.Quiz) error {
	return r.db.Save(quiz).Error
}

// ReplaceQuestions swaps the full owned question set of a quiz in one
// transaction. Questions cannot be shared across quizzes, so the old rows are
// simply removed.
func (r *quizRepository) ReplaceQuestions(quizID uint, questions []model.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", quizID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].QuizID = quizID
		}
		if len(questions) == 0 {
			return nil
		}
		return tx.Create(&questions).Error
	})
}

func (r *quizRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Owned questions go with the quiz.
		if err := tx.Where("quiz_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Quiz{}, id).Error
	})
}
