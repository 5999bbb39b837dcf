package service

import (
	"testing"

	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/Ar-Dante/Quiz-platform/internal/repository"
	"github.com/google/uuid"
)

type fixture struct {
	owner   uuid.UUID
	admin   uuid.UUID
	member  uuid.UUID
	outside uuid.UUID
	company *model.Company
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	owner := uuid.New()
	return &fixture{
		owner:   owner,
		admin:   uuid.New(),
		member:  uuid.New(),
		outside: uuid.New(),
		company: &model.Company{ID: uuid.New(), OwnerID: owner, Name: "Acme", IsVisible: true},
	}
}

func (f *fixture) membership(userID uuid.UUID, admin bool) *model.Membership {
	return &model.Membership{ID: uuid.New(), UserID: userID, CompanyID: f.company.ID, IsAdmin: admin}
}

func pageOf(limit int) repository.Page {
	return repository.Page{Limit: limit}
}

func question(quizID uuid.UUID, text, correct string, answers ...string) *model.Question {
	return &model.Question{
		ID:            uuid.New(),
		QuizID:        quizID,
		Text:          text,
		Answers:       model.StringList(answers),
		CorrectAnswer: correct,
	}
}
