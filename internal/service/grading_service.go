package service

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tranqh/quizhub/internal/apperr"
	"github.com/tranqh/quizhub/internal/dto"
	"github.com/tranqh/quizhub/internal/model"
	"github.com/tranqh/quizhub/internal/repository"
	"gorm.io/gorm"
)

// GradingService grades a submitted attempt against the quiz's current answer
// key and appends an immutable Result. It only reads quiz and user state, so
// concurrent grading of the same quiz by different users cannot interfere.
type GradingService interface {
	GradeAttempt(userID uint, req dto.QuizAttemptSubmitDTO) (*dto.ResultResponseDTO, error)
}

type gradingService struct {
	userRepo   repository.UserRepository
	quizRepo   repository.QuizRepository
	resultRepo repository.ResultRepository
}

func NewGradingService(
	userRepo repository.UserRepository,
	quizRepo repository.QuizRepository,
	resultRepo repository.ResultRepository,
) GradingService {
	return &gradingService{userRepo: userRepo, quizRepo: quizRepo, resultRepo: resultRepo}
}

func (s *gradingService) GradeAttempt(userID uint, req dto.QuizAttemptSubmitDTO) (*dto.ResultResponseDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Identity from the token no longer resolves. Fatal, not retried.
			return nil, apperr.ErrUserNotFound
		}
		log.Error().Err(err).Uint("userID", userID).Msg("GradeAttempt: user lookup failed")
		return nil, err
	}

	quiz, err := s.quizRepo.FindByIDWithQuestions(req.QuizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrQuizNotFound
		}
		log.Error().Err(err).Uint("quizID", req.QuizID).Msg("GradeAttempt: quiz lookup failed")
		return nil, err
	}

	// Grade against the question set as it exists now, not as it was when
	// the attempt started.
	totalQuestions := len(quiz.Questions)
	if totalQuestions == 0 {
		return nil, apperr.ErrEmptyQuiz
	}

	correctAnswers := 0
	for _, question := range quiz.Questions {
		selected, answered := req.Answers[question.ID]
		if answered && selected == question.CorrectAnswer {
			correctAnswers++
		}
	}
	// Integer truncation toward zero; totalQuestions > 0 is guaranteed above.
	score := correctAnswers * 100 / totalQuestions

	result := model.Result{
		UserID:         user.ID,
		QuizID:         quiz.ID,
		Score:          score,
		TotalQuestions: totalQuestions,
		CorrectAnswers: correctAnswers,
		TimeTaken:      req.TimeTakenSeconds,
		CompletedAt:    time.Now(),
	}
	if err := s.resultRepo.Create(&result); err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Uint("quizID", quiz.ID).Msg("GradeAttempt: failed to persist result")
		return nil, err
	}

	log.Info().
		Uint("userID", user.ID).
		Uint("quizID", quiz.ID).
		Int("score", score).
		Int("correct", correctAnswers).
		Int("total", totalQuestions).
		Msg("Attempt graded")

	return &dto.ResultResponseDTO{
		ID:             result.ID,
		UserID:         result.UserID,
		QuizID:         result.QuizID,
		QuizTitle:      quiz.Title,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		CorrectAnswers: result.CorrectAnswers,
		TimeTaken:      result.TimeTaken,
		CompletedAt:    result.CompletedAt,
	}, nil
}
