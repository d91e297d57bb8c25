package service

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tranqh/quizhub/internal/apperr"
	"github.com/tranqh/quizhub/internal/dto"
	"github.com/tranqh/quizhub/internal/model"
	"github.com/tranqh/quizhub/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Signup(req dto.SignupRequestDTO) (*dto.SignupResponseDTO, error)
	Login(email, password string) (*dto.LoginResponseDTO, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokenSvc TokenService
}

func NewAuthService(userRepo repository.UserRepository, tokenSvc TokenService) AuthService {
	return &authService{userRepo: userRepo, tokenSvc: tokenSvc}
}

// NormalizeEmail lowercases and trims an email so that " A@B.com " and
// "a@b.com" refer to the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Signup(req dto.SignupRequestDTO) (*dto.SignupResponseDTO, error) {
	email := NormalizeEmail(req.Email)

	role := model.UserRole(strings.ToUpper(strings.TrimSpace(req.Role)))
	if !model.ValidRole(role) {
		return nil, apperr.ErrInvalidRole
	}

	taken, err := s.userRepo.ExistsByEmail(email)
	if err != nil {
		log.Error().Err(err).Msg("Signup: email lookup failed")
		return nil, err
	}
	if taken {
		return nil, apperr.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Name:     req.Name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Msg("Signup: failed to create user")
		return nil, err
	}

	log.Info().Uint("userID", user.ID).Str("role", string(role)).Msg("User registered")
	return &dto.SignupResponseDTO{UserID: user.ID, Message: "User registered successfully"}, nil
}

func (s *authService) Login(email, password string) (*dto.LoginResponseDTO, error) {
	user, err := s.userRepo.FindByEmail(NormalizeEmail(email))
	if err != nil {
		// Unknown email and wrong password must be indistinguishable.
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("Login: user lookup failed")
			return nil, err
		}
		return nil, apperr.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	token, err := s.tokenSvc.Issue(user)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Login: failed to issue token")
		return nil, err
	}

	return &dto.LoginResponseDTO{
		Token:  token,
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   string(user.Role),
	}, nil
}
