package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/tranqh/quizhub/internal/apperr"
	"github.com/tranqh/quizhub/internal/dto"
	"github.com/tranqh/quizhub/internal/middleware"
	"github.com/tranqh/quizhub/internal/service"
)

type ResultController struct {
	gradingService service.GradingService
	resultService  service.ResultService
}

func NewResultController(gradingService service.GradingService, resultService service.ResultService) *ResultController {
	return &ResultController{gradingService: gradingService, resultService: resultService}
}

// SubmitAttempt godoc
// @Summary Submit a quiz attempt for grading
// @Description Grades the submitted answers against the quiz's answer key and persists an immutable result. Unanswered questions count as incorrect.
// @Tags Results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attempt_data body dto.QuizAttemptSubmitDTO true "Quiz ID, answers map (question id -> selected option index) and time taken"
// @Success 201 {object} dto.ResultResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or quiz has no questions"
// @Failure 404 {object} dto.ErrorResponse "Quiz or user not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results [post]
func (c *ResultController) SubmitAttempt(ctx *gin.Context) {
	claims := middleware.ClaimsFromContext(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var req dto.QuizAttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAttempt: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.gradingService.GradeAttempt(claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrQuizNotFound), errors.Is(err, apperr.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, apperr.ErrEmptyQuiz):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Uint("userID", claims.UserID).Msg("SubmitAttempt: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to grade attempt"})
		}
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// GetMyResults godoc
// @Summary List the caller's results
// @Description Returns the caller's graded attempts, most recent first.
// @Tags Results
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ResultResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results/me [get]
func (c *ResultController) GetMyResults(ctx *gin.Context) {
	claims := middleware.ClaimsFromContext(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	results, err := c.resultService.GetResultsByUser(claims.UserID)
	if err != nil {
		log.Error().Err(err).Uint("userID", claims.UserID).Msg("GetMyResults: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve results"})
		return
	}
	ctx.JSON(http.StatusOK, results)
}
