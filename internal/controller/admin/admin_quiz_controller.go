package admin

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

type AdminQuizController struct {
	quizService   service.QuizService
	resultService service.ResultService
}

func NewAdminQuizController(quizService service.QuizService, resultService service.ResultService) *AdminQuizController {
	return &AdminQuizController{quizService: quizService, resultService: resultService}
}

// CreateQuiz godoc
// @Summary (Admin) Create a quiz
// @Description Creates a quiz together with its owned questions, answer key included.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz_data body dto.QuizCreateDTO true "Quiz creation payload"
// @Success 201 {object} dto.AdminQuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/quizzes [post]
func (c *AdminQuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	quiz, err := c.quizService.CreateQuiz(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create quiz"})
		return
	}
	ctx.JSON(http.StatusCreated, quiz)
}

// GetQuizzes godoc
// @Summary (Admin) List all quizzes
// @Description Lists every quiz, active or not, with question counts.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/quizzes [get]
func (c *AdminQuizController) GetQuizzes(ctx *gin.Context) {
	quizzes, err := c.quizService.GetQuizzes(false)
	if err != nil {
		log.Error().Err(err).Msg("Admin GetQuizzes: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve quizzes"})
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuiz godoc
// @Summary (Admin) Get a quiz with its answer key
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.AdminQuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz ID format"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/quizzes/{quiz_id} [get]
func (c *AdminQuizController) GetQuiz(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
		return
	}

	quiz, err := c.quizService.GetQuizWithAnswers(uint(quizID))
	if err != nil {
		if errors.Is(err, apperr.ErrQuizNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: apperr.ErrQuizNotFound.Error()})
			return
		}
		log.Error().Err(err).Uint64("quizID", quizID).Msg("Admin GetQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve quiz"})
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// UpdateQuiz godoc
// @Summary (Admin) Update a quiz
// @Description Copies the payload fields onto the quiz; when questions are provided the owned set is replaced.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Param quiz_data body dto.QuizUpdateDTO true "Quiz update payload"
// @Success 200 {object} dto.AdminQuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or quiz ID"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/quizzes/{quiz_id} [put]
func (c *AdminQuizController) UpdateQuiz(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
		return
	}

	var req dto.QuizUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	quiz, err := c.quizService.UpdateQuiz(uint(quizID), req)
	if err != nil {
		if errors.Is(err, apperr.ErrQuizNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: apperr.ErrQuizNotFound.Error()})
			return
		}
		log.Error().Err(err).Uint64("quizID", quizID).Msg("Admin UpdateQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update quiz"})
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// DeleteQuiz godoc
// @Summary (Admin) Delete a quiz and its questions
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Success 204 "Quiz deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz ID format"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/quizzes/{quiz_id} [delete]
func (c *AdminQuizController) DeleteQuiz(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
		return
	}

	if err := c.quizService.DeleteQuiz(uint(quizID)); err != nil {
		if errors.Is(err, apperr.ErrQuizNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: apperr.ErrQuizNotFound.Error()})
			return
		}
		log.Error().Err(err).Uint64("quizID", quizID).Msg("Admin DeleteQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete quiz"})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetAllResults godoc
// @Summary (Admin) List every graded result
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ResultResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/results [get]
func (c *AdminQuizController) GetAllResults(ctx *gin.Context) {
	results, err := c.resultService.GetAllResults()
	if err != nil {
		log.Error().Err(err).Msg("Admin GetAllResults: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve results"})
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// GetResultsByQuiz godoc
// @Summary (Admin) List results for one quiz
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {array} dto.ResultResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/results/quiz/{quiz_id} [get]
func (c *AdminQuizController) GetResultsByQuiz(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
		return
	}

	results, err := c.resultService.GetResultsByQuiz(uint(quizID))
	if err != nil {
		log.Error().Err(err).Uint64("quizID", quizID).Msg("Admin GetResultsByQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve results"})
		return
	}
	ctx.JSON(http.StatusOK, results)
}
