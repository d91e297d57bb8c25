package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/tranqh/quizhub/internal/apperr"
	"github.com/tranqh/quizhub/internal/dto"
	"github.com/tranqh/quizhub/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Signup godoc
// @Summary Register a new account
// @Description Creates a user with the given name, email, password and role (STUDENT or ADMIN).
// @Tags Auth
// @Accept json
// @Produce json
// @Param signup_data body dto.SignupRequestDTO true "Signup payload"
// @Success 201 {object} dto.SignupResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid payload, email already registered, or bad role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Signup: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.authService.Signup(req)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrEmailTaken), errors.Is(err, apperr.ErrInvalidRole):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Msg("Signup: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to register user"})
		}
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Authenticate and obtain a token
// @Description Verifies credentials and returns a signed token plus basic identity fields.
// @Tags Auth
// @Accept json
// @Produce json
// @Param login_data body dto.LoginRequestDTO true "Login payload"
// @Success 200 {object} dto.LoginResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid email or password"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidCredentials) {
			// Single message for both unknown email and wrong password.
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: apperr.ErrInvalidCredentials.Error()})
			return
		}
		log.Error().Err(err).Msg("Login: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to log in"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
