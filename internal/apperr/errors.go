package apperr

import "errors"

// Authentication and token errors. Login failures are deliberately collapsed
// into ErrInvalidCredentials so callers cannot tell a missing account from a
// wrong password.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token expired")
)

// Signup errors.
var (
	ErrEmailTaken  = errors.New("email already registered")
	ErrInvalidRole = errors.New("invalid role, use STUDENT or ADMIN")
)

// Grading and catalog errors.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrQuizNotFound = errors.New("quiz not found")
	ErrEmptyQuiz    = errors.New("quiz has no questions to grade")
)
