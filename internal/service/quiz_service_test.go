package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tranqh/quizhub/internal/apperr"
	"github.com/tranqh/quizhub/internal/dto"
)

func newTestQuizService() (QuizService, *fakeQuizRepo) {
	quizRepo := newFakeQuizRepo()
	return NewQuizService(quizRepo), quizRepo
}

func sampleQuizCreate() dto.QuizCreateDTO {
	return dto.QuizCreateDTO{
		Title:           "Go Basics",
		Description:     "Introductory questions",
		Category:        "Programming",
		Difficulty:      "Easy",
		DurationMinutes: 15,
		Questions: []dto.QuestionCreateDTO{
			{Text: "What declares a variable?", Options: []string{"var", "def", "let", "dim"}, CorrectAnswer: 0},
			{Text: "What starts a goroutine?", Options: []string{"run", "go", "spawn", "fork"}, CorrectAnswer: 1},
		},
	}
}

func TestCreateQuizDefaults(t *testing.T) {
	svc, _ := newTestQuizService()

	created, err := svc.CreateQuiz(sampleQuizCreate())
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.True(t, created.IsActive, "quizzes default to active")
	require.Len(t, created.Questions, 2)
	// Positions default to submission order when not set explicitly.
	assert.Equal(t, 1, created.Questions[0].Position)
	assert.Equal(t, 2, created.Questions[1].Position)
	assert.Equal(t, 0, created.Questions[0].CorrectAnswer)
	assert.Equal(t, 1, created.Questions[1].CorrectAnswer)
}

func TestCreateQuizInactive(t *testing.T) {
	svc, _ := newTestQuizService()

	inactive := false
	req := sampleQuizCreate()
	req.IsActive = &inactive

	created, err := svc.CreateQuiz(req)
	require.NoError(t, err)
	assert.False(t, created.IsActive)
}

func TestGetQuizDetailsHidesAnswerKey(t *testing.T) {
	svc, _ := newTestQuizService()

	created, err := svc.CreateQuiz(sampleQuizCreate())
	require.NoError(t, err)

	details, err := svc.GetQuizDetails(created.ID)
	require.NoError(t, err)
	require.Len(t, details.Questions, 2)
	assert.Equal(t, "What declares a variable?", details.Questions[0].Text)
	assert.Equal(t, []string{"var", "def", "let", "dim"}, details.Questions[0].Options)

	// The student-facing payload must not carry the answer key anywhere.
	payload, err := json.Marshal(details)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "correct_answer")
}

func TestGetQuizWithAnswersIncludesKey(t *testing.T) {
	svc, _ := newTestQuizService()

	created, err := svc.CreateQuiz(sampleQuizCreate())
	require.NoError(t, err)

	admin, err := svc.GetQuizWithAnswers(created.ID)
	require.NoError(t, err)
	require.Len(t, admin.Questions, 2)
	assert.Equal(t, 0, admin.Questions[0].CorrectAnswer)
	assert.Equal(t, 1, admin.Questions[1].CorrectAnswer)
}

func TestGetQuizDetailsNotFound(t *testing.T) {
	svc, _ := newTestQuizService()

	details, err := svc.GetQuizDetails(404)
	assert.Nil(t, details)
	assert.ErrorIs(t, err, apperr.ErrQuizNotFound)
}

func TestGetQuizzesActiveOnly(t *testing.T) {
	svc, _ := newTestQuizService()

	_, err := svc.CreateQuiz(sampleQuizCreate())
	require.NoError(t, err)

	inactive := false
	hidden := sampleQuizCreate()
	hidden.Title = "Draft Quiz"
	hidden.IsActive = &inactive
	_, err = svc.CreateQuiz(hidden)
	require.NoError(t, err)

	visible, err := svc.GetQuizzes(true)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Go Basics", visible[0].Title)
	assert.Equal(t, 2, visible[0].QuestionCount)

	all, err := svc.GetQuizzes(false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetQuizzesByCategoryAndDifficulty(t *testing.T) {
	svc, _ := newTestQuizService()

	first := sampleQuizCreate()
	_, err := svc.CreateQuiz(first)
	require.NoError(t, err)

	second := sampleQuizCreate()
	second.Title = "World Capitals"
	second.Category = "Geography"
	second.Difficulty = "Hard"
	_, err = svc.CreateQuiz(second)
	require.NoError(t, err)

	byCategory, err := svc.GetQuizzesByCategory("Geography")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "World Capitals", byCategory[0].Title)

	byDifficulty, err := svc.GetQuizzesByDifficulty("Easy")
	require.NoError(t, err)
	require.Len(t, byDifficulty, 1)
	assert.Equal(t, "Go Basics", byDifficulty[0].Title)
}

func TestUpdateQuizReplacesQuestions(t *testing.T) {
	svc, _ := newTestQuizService()

	created, err := svc.CreateQuiz(sampleQuizCreate())
	require.NoError(t, err)

	updated, err := svc.UpdateQuiz(created.ID, dto.QuizUpdateDTO{
		Title:      "Go Basics v2",
		Category:   "Programming",
		Difficulty: "Medium",
		Questions: []dto.QuestionCreateDTO{
			{Text: "What closes a channel?", Options: []string{"close", "end", "stop", "done"}, CorrectAnswer: 0},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Go Basics v2", updated.Title)
	assert.Equal(t, "Medium", updated.Difficulty)
	require.Len(t, updated.Questions, 1)
	assert.Equal(t, "What closes a channel?", updated.Questions[0].Text)
}

func TestUpdateQuizKeepsQuestionsWhenOmitted(t *testing.T) {
	svc, _ := newTestQuizService()

	created, err := svc.CreateQuiz(sampleQuizCreate())
	require.NoError(t, err)

	updated, err := svc.UpdateQuiz(created.ID, dto.QuizUpdateDTO{
		Title:      "Renamed Only",
		Category:   "Programming",
		Difficulty: "Easy",
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed Only", updated.Title)
	assert.Len(t, updated.Questions, 2, "a nil question list leaves the owned set untouched")
}

func TestUpdateQuizNotFound(t *testing.T) {
	svc, _ := newTestQuizService()

	updated, err := svc.UpdateQuiz(404, dto.QuizUpdateDTO{Title: "X", Category: "Y", Difficulty: "Easy"})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, apperr.ErrQuizNotFound)
}

func TestDeleteQuiz(t *testing.T) {
	svc, _ := newTestQuizService()

	created, err := svc.CreateQuiz(sampleQuizCreate())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteQuiz(created.ID))

	_, err = svc.GetQuizDetails(created.ID)
	assert.ErrorIs(t, err, apperr.ErrQuizNotFound)

	assert.ErrorIs(t, svc.DeleteQuiz(created.ID), apperr.ErrQuizNotFound)
}
