package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/tranqh/quizhub/internal/apperr"
	"github.com/tranqh/quizhub/internal/dto"
	"github.com/tranqh/quizhub/internal/service"
)

type QuizController struct {
	quizService service.QuizService
}

func NewQuizController(quizService service.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

// GetQuizzes godoc
// @Summary List active quizzes
// @Description Get all active quizzes with their question counts, without question content.
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [get]
func (c *QuizController) GetQuizzes(ctx *gin.Context) {
	quizzes, err := c.quizService.GetQuizzes(true)
	if err != nil {
		log.Error().Err(err).Msg("GetQuizzes: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve quizzes"})
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuizDetails godoc
// @Summary Get a quiz with its questions
// @Description Returns full quiz details for taking an attempt. Correct answers are never included.
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz ID format"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/{quiz_id} [get]
func (c *QuizController) GetQuizDetails(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
		return
	}

	quiz, err := c.quizService.GetQuizDetails(uint(quizID))
	if err != nil {
		if errors.Is(err, apperr.ErrQuizNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: apperr.ErrQuizNotFound.Error()})
			return
		}
		log.Error().Err(err).Uint64("quizID", quizID).Msg("GetQuizDetails: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve quiz"})
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// GetQuizzesByCategory godoc
// @Summary List active quizzes in a category
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Param category path string true "Category"
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/category/{category} [get]
func (c *QuizController) GetQuizzesByCategory(ctx *gin.Context) {
	quizzes, err := c.quizService.GetQuizzesByCategory(ctx.Param("category"))
	if err != nil {
		log.Error().Err(err).Msg("GetQuizzesByCategory: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve quizzes"})
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuizzesByDifficulty godoc
// @Summary List active quizzes at a difficulty
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Param difficulty path string true "Difficulty (Easy, Medium, Hard)"
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/difficulty/{difficulty} [get]
func (c *QuizController) GetQuizzesByDifficulty(ctx *gin.Context) {
	quizzes, err := c.quizService.GetQuizzesByDifficulty(ctx.Param("difficulty"))
	if err != nil {
		log.Error().Err(err).Msg("GetQuizzesByDifficulty: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve quizzes"})
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}
