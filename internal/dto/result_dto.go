package dto

import "time"

// QuizAttemptSubmitDTO is the request DTO for submitting a graded attempt.
// Answers maps question id to the selected option index (0-3); questions may
// be left unanswered.
type QuizAttemptSubmitDTO struct {
	QuizID           uint         `json:"quiz_id" binding:"required"`
	Answers          map[uint]int `json:"answers"`
	TimeTakenSeconds int          `json:"time_taken_seconds" binding:"min=0"`
}

// ResultResponseDTO is the persisted grading outcome returned to the caller
// and listed by the result queries.
type ResultResponseDTO struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"user_id"`
	QuizID         uint      `json:"quiz_id"`
	QuizTitle      string    `json:"quiz_title,omitempty"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CorrectAnswers int       `json:"correct_answers"`
	TimeTaken      int       `json:"time_taken"`
	CompletedAt    time.Time `json:"completed_at"`
}
