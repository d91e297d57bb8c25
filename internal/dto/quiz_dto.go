package dto

import "time"

// QuestionCreateDTO is used within QuizCreateDTO/QuizUpdateDTO for admin quiz authoring.
type QuestionCreateDTO struct {
	Text          string   `json:"text" binding:"required"`
	Options       []string `json:"options" binding:"required,len=4"`
	CorrectAnswer int      `json:"correct_answer" binding:"min=0,max=3"`
	Position      int      `json:"position" binding:"min=0"`
}

// QuizCreateDTO is for admins to create a new quiz with all its questions.
type QuizCreateDTO struct {
	Title           string              `json:"title" binding:"required"`
	Description     string              `json:"description"`
	Category        string              `json:"category" binding:"required"`
	Difficulty      string              `json:"difficulty" binding:"required,oneof=Easy Medium Hard"`
	DurationMinutes int                 `json:"duration_minutes" binding:"min=0"`
	IsActive        *bool               `json:"is_active"`
	Questions       []QuestionCreateDTO `json:"questions" binding:"omitempty,dive"`
}

// QuizUpdateDTO mirrors QuizCreateDTO; when Questions is non-nil the owned
// question set is replaced wholesale.
type QuizUpdateDTO struct {
	Title           string              `json:"title" binding:"required"`
	Description     string              `json:"description"`
	Category        string              `json:"category" binding:"required"`
	Difficulty      string              `json:"difficulty" binding:"required,oneof=Easy Medium Hard"`
	DurationMinutes int                 `json:"duration_minutes" binding:"min=0"`
	IsActive        *bool               `json:"is_active"`
	Questions       []QuestionCreateDTO `json:"questions" binding:"omitempty,dive"`
}

// QuestionResponseDTO is the student-facing question view. It intentionally
// has no correct-answer field.
type QuestionResponseDTO struct {
	ID       uint     `json:"id"`
	QuizID   uint     `json:"quiz_id"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	Position int      `json:"position"`
}

// AdminQuestionResponseDTO includes the answer key and is only returned on
// admin routes.
type AdminQuestionResponseDTO struct {
	ID            uint     `json:"id"`
	QuizID        uint     `json:"quiz_id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Position      int      `json:"position"`
}

// QuizResponseDTO is used for displaying full quiz details to students.
type QuizResponseDTO struct {
	ID              uint                  `json:"id"`
	Title           string                `json:"title"`
	Description     string                `json:"description,omitempty"`
	Category        string                `json:"category"`
	Difficulty      string                `json:"difficulty"`
	DurationMinutes int                   `json:"duration_minutes"`
	IsActive        bool                  `json:"is_active"`
	Questions       []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
}

// AdminQuizResponseDTO is the admin view of a quiz, answer key included.
type AdminQuizResponseDTO struct {
	ID              uint                       `json:"id"`
	Title           string                     `json:"title"`
	Description     string                     `json:"description,omitempty"`
	Category        string                     `json:"category"`
	Difficulty      string                     `json:"difficulty"`
	DurationMinutes int                        `json:"duration_minutes"`
	IsActive        bool                       `json:"is_active"`
	Questions       []AdminQuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt       time.Time                  `json:"created_at"`
	UpdatedAt       time.Time                  `json:"updated_at"`
}

// QuizSummaryDTO is used for listing quizzes without their questions.
type QuizSummaryDTO struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Category        string    `json:"category"`
	Difficulty      string    `json:"difficulty"`
	DurationMinutes int       `json:"duration_minutes"`
	IsActive        bool      `json:"is_active"`
	QuestionCount   int       `json:"question_count"`
	CreatedAt       time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
