package dto

// SignupRequestDTO is the payload for registering a new account.
type SignupRequestDTO struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"` // "STUDENT" or "ADMIN"
}

type SignupResponseDTO struct {
	UserID  uint   `json:"user_id"`
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponseDTO carries the issued token together with the basic
// identity fields the client needs to render the session.
type LoginResponseDTO struct {
	Token  string `json:"token"`
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
