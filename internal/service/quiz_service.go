package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/tranqh/quizhub/internal/apperr"
	"github.com/tranqh/quizhub/internal/dto"
	"github.com/tranqh/quizhub/internal/model"
	"github.com/tranqh/quizhub/internal/repository"
	"gorm.io/gorm"
)

// QuizService is the catalog: student-facing reads that hide the answer key,
// plus admin CRUD that exposes it. Role checks happen at the route boundary.
type QuizService interface {
	GetQuizzes(activeOnly bool) ([]dto.QuizSummaryDTO, error)
	GetQuizDetails(quizID uint) (*dto.QuizResponseDTO, error)
	GetQuizzesByCategory(category string) ([]dto.QuizSummaryDTO, error)
	GetQuizzesByDifficulty(difficulty string) ([]dto.QuizSummaryDTO, error)

	CreateQuiz(req dto.QuizCreateDTO) (*dto.AdminQuizResponseDTO, error)
	GetQuizWithAnswers(quizID uint) (*dto.AdminQuizResponseDTO, error)
	UpdateQuiz(quizID uint, req dto.QuizUpdateDTO) (*dto.AdminQuizResponseDTO, error)
	DeleteQuiz(quizID uint) error
}

type quizService struct {
	quizRepo repository.QuizRepository
}

func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo}
}

func (s *quizService) GetQuizzes(activeOnly bool) ([]dto.QuizSummaryDTO, error) {
	quizzesWithCount, err := s.quizRepo.FindAllWithQuestionCount(activeOnly)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list quizzes with question count")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	var dtos []dto.QuizSummaryDTO
	for _, qwc := range quizzesWithCount {
		dtos = append(dtos, dto.QuizSummaryDTO{
			ID:              qwc.Quiz.ID,
			Title:           qwc.Quiz.Title,
			Description:     qwc.Quiz.Description,
			Category:        qwc.Quiz.Category,
			Difficulty:      qwc.Quiz.Difficulty,
			DurationMinutes: qwc.Quiz.DurationMinutes,
			IsActive:        qwc.Quiz.IsActive,
			QuestionCount:   qwc.QuestionCount,
			CreatedAt:       qwc.Quiz.CreatedAt,
		})
	}
	return dtos, nil
}

// GetQuizDetails returns the student view of a quiz. QuestionResponseDTO has
// no correct-answer field, so the answer key never leaves this layer.
func (s *quizService) GetQuizDetails(quizID uint) (*dto.QuizResponseDTO, error) {
	quiz, err := s.findQuiz(quizID)
	if err != nil {
		return nil, err
	}

	var resp dto.QuizResponseDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		log.Error().Err(err).Msg("Failed to copy Quiz model to QuizResponseDTO")
		return nil, fmt.Errorf("error preparing quiz details response: %w", err)
	}
	return &resp, nil
}

func (s *quizService) GetQuizzesByCategory(category string) ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindByCategory(category)
	if err != nil {
		log.Error().Err(err).Str("category", category).Msg("Failed to list quizzes by category")
		return nil, fmt.Errorf("error fetching quizzes by category: %w", err)
	}
	return toQuizSummaries(quizzes), nil
}

func (s *quizService) GetQuizzesByDifficulty(difficulty string) ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindByDifficulty(difficulty)
	if err != nil {
		log.Error().Err(err).Str("difficulty", difficulty).Msg("Failed to list quizzes by difficulty")
		return nil, fmt.Errorf("error fetching quizzes by difficulty: %w", err)
	}
	return toQuizSummaries(quizzes), nil
}

func (s *quizService) CreateQuiz(req dto.QuizCreateDTO) (*dto.AdminQuizResponseDTO, error) {
	quiz := model.Quiz{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Difficulty:      req.Difficulty,
		DurationMinutes: req.DurationMinutes,
		IsActive:        true,
		Questions:       toQuestionModels(req.Questions),
	}
	if req.IsActive != nil {
		quiz.IsActive = *req.IsActive
	}

	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Msg("Failed to create quiz in database")
		return nil, fmt.Errorf("database error creating quiz: %w", err)
	}

	return s.GetQuizWithAnswers(quiz.ID)
}

func (s *quizService) GetQuizWithAnswers(quizID uint) (*dto.AdminQuizResponseDTO, error) {
	quiz, err := s.findQuiz(quizID)
	if err != nil {
		return nil, err
	}

	var resp dto.AdminQuizResponseDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		log.Error().Err(err).Msg("Failed to copy Quiz model to AdminQuizResponseDTO")
		return nil, fmt.Errorf("error preparing quiz response: %w", err)
	}
	return &resp, nil
}

// UpdateQuiz copies the request fields onto the loaded record. When the
// request carries questions, the owned set is replaced wholesale.
func (s *quizService) UpdateQuiz(quizID uint, req dto.QuizUpdateDTO) (*dto.AdminQuizResponseDTO, error) {
	quiz, err := s.findQuiz(quizID)
	if err != nil {
		return nil, err
	}

	quiz.Title = req.Title
	quiz.Description = req.Description
	quiz.Category = req.Category
	quiz.Difficulty = req.Difficulty
	quiz.DurationMinutes = req.DurationMinutes
	if req.IsActive != nil {
		quiz.IsActive = *req.IsActive
	}
	quiz.Questions = nil // updated separately below

	if err := s.quizRepo.Update(quiz); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to update quiz")
		return nil, fmt.Errorf("database error updating quiz: %w", err)
	}

	if req.Questions != nil {
		if err := s.quizRepo.ReplaceQuestions(quizID, toQuestionModels(req.Questions)); err != nil {
			log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to replace quiz questions")
			return nil, fmt.Errorf("database error updating quiz questions: %w", err)
		}
	}

	return s.GetQuizWithAnswers(quizID)
}

func (s *quizService) DeleteQuiz(quizID uint) error {
	if _, err := s.findQuiz(quizID); err != nil {
		return err
	}
	if err := s.quizRepo.Delete(quizID); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to delete quiz")
		return fmt.Errorf("database error deleting quiz: %w", err)
	}
	return nil
}

func (s *quizService) findQuiz(quizID uint) (*model.Quiz, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrQuizNotFound
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to load quiz")
		return nil, err
	}
	return quiz, nil
}

func toQuestionModels(questions []dto.QuestionCreateDTO) []model.Question {
	models := make([]model.Question, 0, len(questions))
	for i, q := range questions {
		position := q.Position
		if position == 0 {
			position = i + 1
		}
		models = append(models, model.Question{
			Text:          q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Position:      position,
		})
	}
	return models
}

func toQuizSummaries(quizzes []model.Quiz) []dto.QuizSummaryDTO {
	var dtos []dto.QuizSummaryDTO
	for _, q := range quizzes {
		dtos = append(dtos, dto.QuizSummaryDTO{
			ID:              q.ID,
			Title:           q.Title,
			Description:     q.Description,
			Category:        q.Category,
			Difficulty:      q.Difficulty,
			DurationMinutes: q.DurationMinutes,
			IsActive:        q.IsActive,
			CreatedAt:       q.CreatedAt,
		})
	}
	return dtos
}
