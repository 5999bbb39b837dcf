// internal/service/quiz.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Ar-Dante/Quiz-platform/internal/access"
	"github.com/Ar-Dante/Quiz-platform/internal/domain"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/Ar-Dante/Quiz-platform/internal/obs"
	"github.com/Ar-Dante/Quiz-platform/internal/repository"
	"github.com/google/uuid"
)

const (
	minAnswerOptions = 2
	minQuizQuestions = 2
)

type QuizService struct {
	quizzes   repository.QuizRepositoryIface
	questions repository.QuestionRepositoryIface
}

func NewQuizService(quizzes repository.QuizRepositoryIface, questions repository.QuestionRepositoryIface) *QuizService {
	return &QuizService{quizzes: quizzes, questions: questions}
}

type QuizInput struct {
	Name        string `json:"name" validate:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Frequency   int    `json:"frequency" validate:"required,min=1"`
}

type QuestionInput struct {
	Text          string   `json:"question" validate:"required"`
	Answers       []string `json:"answers"`
	CorrectAnswer string   `json:"correct_answer" validate:"required"`
}

func (in QuestionInput) check() error {
	if err := validateInput(in); err != nil {
		return err
	}
	if len(in.Answers) < minAnswerOptions {
		return domain.ErrNotEnoughOptions
	}
	return nil
}

// Score is the outcome of one submission.
type Score struct {
	CorrectCount int `json:"correct_count"`
	TotalCount   int `json:"total_count"`
}

func (s *QuizService) CreateQuiz(ctx context.Context, company *model.Company, in QuizInput, member *model.Membership, caller uuid.UUID) (*model.Quiz, error) {
	if err := access.CompanyWrite(caller, member, company); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	quiz := &model.Quiz{
		CompanyID:   company.ID,
		Name:        in.Name,
		Title:       in.Title,
		Description: in.Description,
		Frequency:   in.Frequency,
		CreatedBy:   caller,
		UpdatedBy:   caller,
	}
	if err := s.quizzes.Create(ctx, quiz); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "quiz created", "quiz_id", quiz.ID, "company_id", company.ID)
	return quiz, nil
}

func (s *QuizService) UpdateQuiz(ctx context.Context, quizID uuid.UUID, company *model.Company, in QuizInput, member *model.Membership, caller uuid.UUID) (*model.Quiz, error) {
	if err := access.CompanyWrite(caller, member, company); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	quiz, err := s.companyQuiz(ctx, quizID, company)
	if err != nil {
		return nil, err
	}

	quiz.Name = in.Name
	quiz.Title = in.Title
	quiz.Description = in.Description
	quiz.Frequency = in.Frequency
	quiz.UpdatedBy = caller
	if err := s.quizzes.Update(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) RemoveQuiz(ctx context.Context, quizID uuid.UUID, company *model.Company, member *model.Membership, caller uuid.UUID) error {
	if err := access.CompanyWrite(caller, member, company); err != nil {
		return err
	}
	if _, err := s.companyQuiz(ctx, quizID, company); err != nil {
		return err
	}
	return s.quizzes.Delete(ctx, quizID)
}

// companyQuiz loads a quiz and hides quizzes of other companies.
func (s *QuizService) companyQuiz(ctx context.Context, quizID uuid.UUID, company *model.Company) (*model.Quiz, error) {
	quiz, err := s.quizzes.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if quiz.CompanyID != company.ID {
		return nil, domain.ErrQuizNotFound
	}
	return quiz, nil
}

func (s *QuizService) GetQuizByID(ctx context.Context, id uuid.UUID) (*model.Quiz, error) {
	return s.quizzes.FindByID(ctx, id)
}

func (s *QuizService) ListQuizzes(ctx context.Context, companyID uuid.UUID, page repository.Page) ([]*model.Quiz, error) {
	return s.quizzes.FindByCompany(ctx, companyID, page)
}

func (s *QuizService) AllQuizzes(ctx context.Context, companyID uuid.UUID) ([]*model.Quiz, error) {
	return s.quizzes.FindAllByCompany(ctx, companyID)
}

func (s *QuizService) CreateQuestion(ctx context.Context, quiz *model.Quiz, in QuestionInput, member *model.Membership, company *model.Company, caller uuid.UUID) (*model.Question, error) {
	if err := access.CompanyWrite(caller, member, company); err != nil {
		return nil, err
	}
	if quiz.CompanyID != company.ID {
		return nil, domain.ErrQuizNotFound
	}
	if err := in.check(); err != nil {
		return nil, err
	}

	question := &model.Question{
		QuizID:        quiz.ID,
		CompanyID:     company.ID,
		Text:          in.Text,
		Answers:       model.StringList(in.Answers),
		CorrectAnswer: in.CorrectAnswer,
		CreatedBy:     caller,
		UpdatedBy:     caller,
	}
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuizService) UpdateQuestion(ctx context.Context, questionID uuid.UUID, quiz *model.Quiz, in QuestionInput, member *model.Membership, company *model.Company, caller uuid.UUID) (*model.Question, error) {
	if err := access.CompanyWrite(caller, member, company); err != nil {
		return nil, err
	}
	question, err := s.quizQuestion(ctx, questionID, quiz)
	if err != nil {
		return nil, err
	}
	if err := in.check(); err != nil {
		return nil, err
	}

	question.Text = in.Text
	question.Answers = model.StringList(in.Answers)
	question.CorrectAnswer = in.CorrectAnswer
	question.UpdatedBy = caller
	if err := s.questions.Update(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuizService) RemoveQuestion(ctx context.Context, questionID uuid.UUID, quiz *model.Quiz, member *model.Membership, company *model.Company, caller uuid.UUID) error {
	if err := access.CompanyWrite(caller, member, company); err != nil {
		return err
	}
	if _, err := s.quizQuestion(ctx, questionID, quiz); err != nil {
		return err
	}
	return s.questions.Delete(ctx, questionID)
}

// RemoveQuestionsForQuiz clears a quiz before its questions are re-imported.
func (s *QuizService) RemoveQuestionsForQuiz(ctx context.Context, quiz *model.Quiz, member *model.Membership, company *model.Company, caller uuid.UUID) error {
	if err := access.CompanyWrite(caller, member, company); err != nil {
		return err
	}
	if quiz.CompanyID != company.ID {
		return domain.ErrQuizNotFound
	}
	return s.questions.DeleteByQuiz(ctx, quiz.ID)
}

func (s *QuizService) quizQuestion(ctx context.Context, questionID uuid.UUID, quiz *model.Quiz) (*model.Question, error) {
	question, err := s.questions.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question.QuizID != quiz.ID {
		return nil, domain.ErrQuestionNotFound
	}
	return question, nil
}

func (s *QuizService) GetQuestion(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	return s.questions.FindByID(ctx, id)
}

func (s *QuizService) ListQuestions(ctx context.Context, quizID uuid.UUID, page repository.Page) ([]*model.Question, error) {
	return s.questions.FindByQuiz(ctx, quizID, page)
}

// AllQuestions returns the questions in scoring order.
func (s *QuizService) AllQuestions(ctx context.Context, quizID uuid.UUID) ([]*model.Question, error) {
	return s.questions.FindAllByQuiz(ctx, quizID)
}

// Submit scores answers against questions by position. Only the owner and
// members may submit, and a quiz needs at least two questions.
func (s *QuizService) Submit(ctx context.Context, questions []*model.Question, answers []string, member *model.Membership, company *model.Company, caller uuid.UUID) (*Score, error) {
	if err := access.CompanyParticipant(caller, member, company); err != nil {
		obs.QuizSubmissions.WithLabelValues("rejected").Inc()
		return nil, err
	}
	if len(questions) < minQuizQuestions {
		obs.QuizSubmissions.WithLabelValues("rejected").Inc()
		return nil, domain.ErrNotEnoughQuestions
	}

	score := ScoreAnswers(questions, answers)
	obs.QuizSubmissions.WithLabelValues("scored").Inc()
	return score, nil
}

// ScoreAnswers compares answers[i] with questions[i].CorrectAnswer exactly.
// Missing answers count as wrong and extra answers are ignored.
func ScoreAnswers(questions []*model.Question, answers []string) *Score {
	score := &Score{TotalCount: len(questions)}
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		if answers[i] == q.CorrectAnswer {
			score.CorrectCount++
		}
	}
	return score
}

func (s Score) String() string {
	return fmt.Sprintf("%d/%d", s.CorrectCount, s.TotalCount)
}
