package service

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/tranqh/quizhub/internal/dto"
	"github.com/tranqh/quizhub/internal/model"
	"github.com/tranqh/quizhub/internal/repository"
)

// ResultService exposes read-only queries over the result ledger. Scoping
// (self vs admin) is enforced by the route middleware, not here.
type ResultService interface {
	GetResultsByUser(userID uint) ([]dto.ResultResponseDTO, error)
	GetResultsByQuiz(quizID uint) ([]dto.ResultResponseDTO, error)
	GetAllResults() ([]dto.ResultResponseDTO, error)
}

type resultService struct {
	resultRepo repository.ResultRepository
}

func NewResultService(resultRepo repository.ResultRepository) ResultService {
	return &resultService{resultRepo: resultRepo}
}

func (s *resultService) GetResultsByUser(userID uint) ([]dto.ResultResponseDTO, error) {
	results, err := s.resultRepo.FindByUserID(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetResultsByUser: repository error")
		return nil, fmt.Errorf("error fetching results for user %d: %w", userID, err)
	}
	return toResultDTOs(results), nil
}

func (s *resultService) GetResultsByQuiz(quizID uint) ([]dto.ResultResponseDTO, error) {
	results, err := s.resultRepo.FindByQuizID(quizID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("GetResultsByQuiz: repository error")
		return nil, fmt.Errorf("error fetching results for quiz %d: %w", quizID, err)
	}
	return toResultDTOs(results), nil
}

func (s *resultService) GetAllResults() ([]dto.ResultResponseDTO, error) {
	results, err := s.resultRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("GetAllResults: repository error")
		return nil, fmt.Errorf("error fetching results: %w", err)
	}
	return toResultDTOs(results), nil
}

func toResultDTOs(results []model.Result) []dto.ResultResponseDTO {
	dtos := make([]dto.ResultResponseDTO, 0, len(results))
	for _, r := range results {
		dtos = append(dtos, dto.ResultResponseDTO{
			ID:             r.ID,
			UserID:         r.UserID,
			QuizID:         r.QuizID,
			QuizTitle:      r.Quiz.Title,
			Score:          r.Score,
			TotalQuestions: r.TotalQuestions,
			CorrectAnswers: r.CorrectAnswers,
			TimeTaken:      r.TimeTaken,
			CompletedAt:    r.CompletedAt,
		})
	}
	return dtos
}
