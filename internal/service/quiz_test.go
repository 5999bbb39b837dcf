package service

import (
	"context"
	"testing"

	"github.com/Ar-Dante/Quiz-platform/internal/domain"
	"github.com/Ar-Dante/Quiz-platform/internal/mocks"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newQuizService(t *testing.T) (*QuizService, *mocks.MockQuizRepositoryIface, *mocks.MockQuestionRepositoryIface) {
	ctrl := gomock.NewController(t)
	quizzes := mocks.NewMockQuizRepositoryIface(ctrl)
	questions := mocks.NewMockQuestionRepositoryIface(ctrl)
	return NewQuizService(quizzes, questions), quizzes, questions
}

func TestCreateQuizAccess(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	in := QuizInput{Name: "Geography", Frequency: 7}

	t.Run("stranger", func(t *testing.T) {
		svc, _, _ := newQuizService(t)
		_, err := svc.CreateQuiz(ctx, f.company, in, nil, f.outside)
		assert.ErrorIs(t, err, domain.ErrMemberNotExists)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("plain member", func(t *testing.T) {
		svc, _, _ := newQuizService(t)
		_, err := svc.CreateQuiz(ctx, f.company, in, f.membership(f.member, false), f.member)
		assert.ErrorIs(t, err, domain.ErrAccessDenied)
	})

	t.Run("admin", func(t *testing.T) {
		svc, quizzes, _ := newQuizService(t)
		quizzes.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		quiz, err := svc.CreateQuiz(ctx, f.company, in, f.membership(f.admin, true), f.admin)
		require.NoError(t, err)
		assert.Equal(t, f.company.ID, quiz.CompanyID)
		assert.Equal(t, f.admin, quiz.CreatedBy)
	})

	t.Run("missing frequency", func(t *testing.T) {
		svc, _, _ := newQuizService(t)
		_, err := svc.CreateQuiz(ctx, f.company, QuizInput{Name: "x"}, nil, f.owner)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestCreateQuestionOptions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	quiz := &model.Quiz{ID: uuid.New(), CompanyID: f.company.ID, Name: "Math", Frequency: 1}

	t.Run("one option", func(t *testing.T) {
		svc, _, _ := newQuizService(t)
		_, err := svc.CreateQuestion(ctx, quiz, QuestionInput{
			Text: "2+2", Answers: []string{"4"}, CorrectAnswer: "4",
		}, nil, f.company, f.owner)
		assert.ErrorIs(t, err, domain.ErrNotEnoughOptions)
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})

	t.Run("two options", func(t *testing.T) {
		svc, _, questions := newQuizService(t)
		questions.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		q, err := svc.CreateQuestion(ctx, quiz, QuestionInput{
			Text: "2+2", Answers: []string{"4", "5"}, CorrectAnswer: "4",
		}, nil, f.company, f.owner)
		require.NoError(t, err)
		assert.Equal(t, model.StringList{"4", "5"}, q.Answers)
		assert.Equal(t, quiz.ID, q.QuizID)
	})

	t.Run("quiz of another company", func(t *testing.T) {
		svc, _, _ := newQuizService(t)
		other := &model.Quiz{ID: uuid.New(), CompanyID: uuid.New()}
		_, err := svc.CreateQuestion(ctx, other, QuestionInput{
			Text: "2+2", Answers: []string{"4", "5"}, CorrectAnswer: "4",
		}, nil, f.company, f.owner)
		assert.ErrorIs(t, err, domain.ErrQuizNotFound)
	})
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	quizID := uuid.New()
	questions := []*model.Question{
		question(quizID, "2+2", "4", "4", "5"),
		question(quizID, "Capital of France", "Paris", "London", "Paris"),
	}

	t.Run("scores by position", func(t *testing.T) {
		svc, _, _ := newQuizService(t)
		score, err := svc.Submit(ctx, questions, []string{"4", "London"}, f.membership(f.member, false), f.company, f.member)
		require.NoError(t, err)
		assert.Equal(t, &Score{CorrectCount: 1, TotalCount: 2}, score)
		assert.Equal(t, "1/2", score.String())
	})

	t.Run("owner may submit", func(t *testing.T) {
		svc, _, _ := newQuizService(t)
		score, err := svc.Submit(ctx, questions, []string{"4", "Paris"}, nil, f.company, f.owner)
		require.NoError(t, err)
		assert.Equal(t, 2, score.CorrectCount)
	})

	t.Run("stranger", func(t *testing.T) {
		svc, _, _ := newQuizService(t)
		_, err := svc.Submit(ctx, questions, []string{"4", "Paris"}, nil, f.company, f.outside)
		assert.ErrorIs(t, err, domain.ErrMemberNotFound)
	})

	t.Run("single question", func(t *testing.T) {
		svc, _, _ := newQuizService(t)
		_, err := svc.Submit(ctx, questions[:1], []string{"4"}, nil, f.company, f.owner)
		assert.ErrorIs(t, err, domain.ErrNotEnoughQuestions)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestScoreAnswers(t *testing.T) {
	quizID := uuid.New()
	questions := []*model.Question{
		question(quizID, "a", "x", "x", "y"),
		question(quizID, "b", "y", "x", "y"),
		question(quizID, "c", "x", "x", "y"),
	}

	assert.Equal(t, &Score{CorrectCount: 1, TotalCount: 3}, ScoreAnswers(questions, []string{"x"}))
	assert.Equal(t, &Score{CorrectCount: 3, TotalCount: 3}, ScoreAnswers(questions, []string{"x", "y", "x", "extra"}))
	assert.Equal(t, &Score{CorrectCount: 0, TotalCount: 3}, ScoreAnswers(questions, []string{"X", " y", ""}))
}

func TestUpdateQuestionChecksQuiz(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	quiz := &model.Quiz{ID: uuid.New(), CompanyID: f.company.ID}
	svc, _, questions := newQuizService(t)

	stray := question(uuid.New(), "q", "a", "a", "b")
	questions.EXPECT().FindByID(ctx, stray.ID).Return(stray, nil)

	_, err := svc.UpdateQuestion(ctx, stray.ID, quiz, QuestionInput{
		Text: "q", Answers: []string{"a", "b"}, CorrectAnswer: "a",
	}, nil, f.company, f.owner)
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
}
