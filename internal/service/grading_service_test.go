package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tranqh/quizhub/internal/apperr"
	"github.com/tranqh/quizhub/internal/dto"
	"github.com/tranqh/quizhub/internal/model"
)

type gradingFixture struct {
	svc        GradingService
	userRepo   *fakeUserRepo
	quizRepo   *fakeQuizRepo
	resultRepo *fakeResultRepo
}

func newGradingFixture() *gradingFixture {
	userRepo := newFakeUserRepo()
	quizRepo := newFakeQuizRepo()
	resultRepo := newFakeResultRepo()
	return &gradingFixture{
		svc:        NewGradingService(userRepo, quizRepo, resultRepo),
		userRepo:   userRepo,
		quizRepo:   quizRepo,
		resultRepo: resultRepo,
	}
}

func (f *gradingFixture) seedUser(t *testing.T, email string) uint {
	t.Helper()
	user := model.User{Name: "Test User", Email: email, Password: "hash", Role: model.RoleStudent}
	require.NoError(t, f.userRepo.Create(&user))
	return user.ID
}

// seedQuiz creates an active quiz whose questions have the given answer keys.
// Question IDs are assigned sequentially starting from the returned first ID.
func (f *gradingFixture) seedQuiz(t *testing.T, answerKeys []int) (quizID, firstQuestionID uint) {
	t.Helper()
	quiz := model.Quiz{Title: "Go Basics", Category: "Programming", Difficulty: "Easy", IsActive: true}
	for i, key := range answerKeys {
		quiz.Questions = append(quiz.Questions, model.Question{
			Text:          "question",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: key,
			Position:      i + 1,
		})
	}
	require.NoError(t, f.quizRepo.Create(&quiz))
	if len(quiz.Questions) > 0 {
		firstQuestionID = quiz.Questions[0].ID
	}
	return quiz.ID, firstQuestionID
}

func TestGradeAttemptScoring(t *testing.T) {
	f := newGradingFixture()
	userID := f.seedUser(t, "student@example.com")
	quizID, qid := f.seedQuiz(t, []int{1, 2, 0, 3})

	// Correct, correct, out-of-range selection, correct.
	result, err := f.svc.GradeAttempt(userID, dto.QuizAttemptSubmitDTO{
		QuizID: quizID,
		Answers: map[uint]int{
			qid:     1,
			qid + 1: 2,
			qid + 2: 9,
			qid + 3: 3,
		},
		TimeTakenSeconds: 120,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.CorrectAnswers)
	assert.Equal(t, 4, result.TotalQuestions)
	assert.Equal(t, 75, result.Score)
	assert.Equal(t, userID, result.UserID)
	assert.Equal(t, quizID, result.QuizID)
	assert.Equal(t, "Go Basics", result.QuizTitle)
	assert.Equal(t, 120, result.TimeTaken)
	assert.False(t, result.CompletedAt.IsZero())
	assert.Equal(t, 1, f.resultRepo.count())
}

func TestGradeAttemptScoreTruncation(t *testing.T) {
	tests := []struct {
		name      string
		keys      []int
		answered  int // leading questions answered correctly; rest unanswered
		wantScore int
	}{
		{"all correct", []int{0, 0, 0}, 3, 100},
		{"two of three", []int{0, 0, 0}, 2, 66},
		{"one of three", []int{0, 0, 0}, 1, 33},
		{"one of seven", []int{0, 0, 0, 0, 0, 0, 0}, 1, 14},
		{"none correct", []int{0, 0, 0}, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newGradingFixture()
			userID := f.seedUser(t, "student@example.com")
			quizID, qid := f.seedQuiz(t, tc.keys)

			answers := map[uint]int{}
			for i := 0; i < tc.answered; i++ {
				answers[qid+uint(i)] = 0
			}

			result, err := f.svc.GradeAttempt(userID, dto.QuizAttemptSubmitDTO{QuizID: quizID, Answers: answers})
			require.NoError(t, err)
			assert.Equal(t, tc.answered, result.CorrectAnswers)
			assert.Equal(t, len(tc.keys), result.TotalQuestions)
			assert.Equal(t, tc.wantScore, result.Score)
		})
	}
}

func TestGradeAttemptEmptyAnswers(t *testing.T) {
	f := newGradingFixture()
	userID := f.seedUser(t, "student@example.com")
	quizID, _ := f.seedQuiz(t, []int{0, 1, 2, 3, 0})

	// Unanswered questions count as incorrect; a nil map is a valid submission.
	result, err := f.svc.GradeAttempt(userID, dto.QuizAttemptSubmitDTO{QuizID: quizID})
	require.NoError(t, err)
	assert.Equal(t, 0, result.CorrectAnswers)
	assert.Equal(t, 5, result.TotalQuestions)
	assert.Equal(t, 0, result.Score)
}

func TestGradeAttemptIgnoresUnknownQuestionIDs(t *testing.T) {
	f := newGradingFixture()
	userID := f.seedUser(t, "student@example.com")
	quizID, qid := f.seedQuiz(t, []int{2})

	result, err := f.svc.GradeAttempt(userID, dto.QuizAttemptSubmitDTO{
		QuizID:  quizID,
		Answers: map[uint]int{qid: 2, 9999: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.CorrectAnswers)
	assert.Equal(t, 100, result.Score)
}

func TestGradeAttemptEmptyQuiz(t *testing.T) {
	f := newGradingFixture()
	userID := f.seedUser(t, "student@example.com")
	quizID, _ := f.seedQuiz(t, nil)

	result, err := f.svc.GradeAttempt(userID, dto.QuizAttemptSubmitDTO{QuizID: quizID})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperr.ErrEmptyQuiz)
	assert.Zero(t, f.resultRepo.count(), "no result may be written for an ungradable attempt")
}

func TestGradeAttemptQuizNotFound(t *testing.T) {
	f := newGradingFixture()
	userID := f.seedUser(t, "student@example.com")

	result, err := f.svc.GradeAttempt(userID, dto.QuizAttemptSubmitDTO{QuizID: 404})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperr.ErrQuizNotFound)
	assert.Zero(t, f.resultRepo.count())
}

func TestGradeAttemptUserNotFound(t *testing.T) {
	f := newGradingFixture()
	quizID, _ := f.seedQuiz(t, []int{0})

	result, err := f.svc.GradeAttempt(12345, dto.QuizAttemptSubmitDTO{QuizID: quizID})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperr.ErrUserNotFound)
	assert.Zero(t, f.resultRepo.count())
}

func TestGradeAttemptConcurrentUsersIndependent(t *testing.T) {
	f := newGradingFixture()
	aliceID := f.seedUser(t, "alice@example.com")
	bobID := f.seedUser(t, "bob@example.com")
	quizID, qid := f.seedQuiz(t, []int{1, 1})

	var wg sync.WaitGroup
	var aliceResult, bobResult *dto.ResultResponseDTO
	var aliceErr, bobErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		aliceResult, aliceErr = f.svc.GradeAttempt(aliceID, dto.QuizAttemptSubmitDTO{
			QuizID:  quizID,
			Answers: map[uint]int{qid: 1, qid + 1: 1},
		})
	}()
	go func() {
		defer wg.Done()
		bobResult, bobErr = f.svc.GradeAttempt(bobID, dto.QuizAttemptSubmitDTO{
			QuizID:  quizID,
			Answers: map[uint]int{qid: 1},
		})
	}()
	wg.Wait()

	require.NoError(t, aliceErr)
	require.NoError(t, bobErr)
	assert.Equal(t, 100, aliceResult.Score)
	assert.Equal(t, 50, bobResult.Score)
	assert.Equal(t, 2, f.resultRepo.count())

	aliceLedger, err := f.resultRepo.FindByUserID(aliceID)
	require.NoError(t, err)
	bobLedger, err := f.resultRepo.FindByUserID(bobID)
	require.NoError(t, err)
	require.Len(t, aliceLedger, 1)
	require.Len(t, bobLedger, 1)
	assert.Equal(t, 100, aliceLedger[0].Score)
	assert.Equal(t, 50, bobLedger[0].Score)
}

func TestGradeAttemptRepeatable(t *testing.T) {
	f := newGradingFixture()
	userID := f.seedUser(t, "student@example.com")
	quizID, qid := f.seedQuiz(t, []int{0, 1})

	// Same user may attempt the same quiz again; each attempt appends a new
	// result and never touches the previous one.
	first, err := f.svc.GradeAttempt(userID, dto.QuizAttemptSubmitDTO{QuizID: quizID})
	require.NoError(t, err)
	second, err := f.svc.GradeAttempt(userID, dto.QuizAttemptSubmitDTO{
		QuizID:  quizID,
		Answers: map[uint]int{qid: 0, qid + 1: 1},
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 0, first.Score)
	assert.Equal(t, 100, second.Score)
	assert.Equal(t, 2, f.resultRepo.count())
}
