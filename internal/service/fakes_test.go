package service

import (
	"sort"
	"sync"

	"github.com/tranqh/quizhub/internal/model"
	"github.com/tranqh/quizhub/internal/repository"
	"gorm.io/gorm"
)

// In-memory repository fakes shared by the service tests. They mirror the
// error contract of the real repositories: gorm.ErrRecordNotFound on misses.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]model.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[uint]model.User{}}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) ExistsByEmail(email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeQuizRepo struct {
	mu         sync.Mutex
	nextQuizID uint
	nextQnID   uint
	quizzes    map[uint]model.Quiz
}

var _ repository.QuizRepository = (*fakeQuizRepo)(nil)

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{nextQuizID: 1, nextQnID: 1, quizzes: map[uint]model.Quiz{}}
}

func (r *fakeQuizRepo) Create(quiz *model.Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	quiz.ID = r.nextQuizID
	r.nextQuizID++
	for i := range quiz.Questions {
		quiz.Questions[i].ID = r.nextQnID
		quiz.Questions[i].QuizID = quiz.ID
		r.nextQnID++
	}
	r.quizzes[quiz.ID] = *quiz
	return nil
}

func (r *fakeQuizRepo) FindByID(id uint) (*model.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	quiz, ok := r.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	quiz.Questions = nil
	return &quiz, nil
}

func (r *fakeQuizRepo) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	quiz, ok := r.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	questions := make([]model.Question, len(quiz.Questions))
	copy(questions, quiz.Questions)
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].Position < questions[j].Position
	})
	quiz.Questions = questions
	return &quiz, nil
}

func (r *fakeQuizRepo) FindAllWithQuestionCount(activeOnly bool) ([]repository.QuizWithQuestionCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []repository.QuizWithQuestionCount
	for _, quiz := range r.quizzes {
		if activeOnly && !quiz.IsActive {
			continue
		}
		count := len(quiz.Questions)
		quiz.Questions = nil
		out = append(out, repository.QuizWithQuestionCount{Quiz: quiz, QuestionCount: count})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Quiz.ID < out[j].Quiz.ID })
	return out, nil
}

func (r *fakeQuizRepo) FindByCategory(category string) ([]model.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Quiz
	for _, quiz := range r.quizzes {
		if quiz.IsActive && quiz.Category == category {
			quiz.Questions = nil
			out = append(out, quiz)
		}
	}
	return out, nil
}

func (r *fakeQuizRepo) FindByDifficulty(difficulty string) ([]model.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Quiz
	for _, quiz := range r.quizzes {
		if quiz.IsActive && quiz.Difficulty == difficulty {
			quiz.Questions = nil
			out = append(out, quiz)
		}
	}
	return out, nil
}

func (r *fakeQuizRepo) Update(quiz *model.Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.quizzes[quiz.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	// Scalar fields only; the owned question set changes via ReplaceQuestions.
	updated := *quiz
	if updated.Questions == nil {
		updated.Questions = stored.Questions
	}
	r.quizzes[quiz.ID] = updated
	return nil
}

func (r *fakeQuizRepo) ReplaceQuestions(quizID uint, questions []model.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	quiz, ok := r.quizzes[quizID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range questions {
		questions[i].ID = r.nextQnID
		questions[i].QuizID = quizID
		r.nextQnID++
	}
	quiz.Questions = questions
	r.quizzes[quizID] = quiz
	return nil
}

func (r *fakeQuizRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.quizzes, id)
	return nil
}

type fakeResultRepo struct {
	mu      sync.Mutex
	nextID  uint
	results []model.Result
}

var _ repository.ResultRepository = (*fakeResultRepo)(nil)

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{nextID: 1}
}

func (r *fakeResultRepo) Create(result *model.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	result.ID = r.nextID
	r.nextID++
	r.results = append(r.results, *result)
	return nil
}

func (r *fakeResultRepo) FindByUserID(userID uint) ([]model.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Result
	for _, res := range r.results {
		if res.UserID == userID {
			out = append(out, res)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CompletedAt.After(out[j].CompletedAt)
	})
	return out, nil
}

func (r *fakeResultRepo) FindByQuizID(quizID uint) ([]model.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Result
	for _, res := range r.results {
		if res.QuizID == quizID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeResultRepo) FindAll() ([]model.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Result, len(r.results))
	copy(out, r.results)
	return out, nil
}

func (r *fakeResultRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.results)
}
