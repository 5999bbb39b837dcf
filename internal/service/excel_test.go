package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Ar-Dante/Quiz-platform/internal/domain"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func workbook(t *testing.T, header []any, rows ...[]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, v := range header {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, v))
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, firstQuestionRow+i)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestParseWorkbook(t *testing.T) {
	buf := workbook(t,
		[]any{"Capitals", "Europe", "Capital cities", 7},
		[]any{"France", "Paris", "Lyon", "Paris"},
		[]any{"Spain", "Madrid", "Seville", "Valencia", "Madrid"},
	)

	sheet, err := ParseWorkbook(buf)
	require.NoError(t, err)
	assert.Equal(t, QuizInput{Name: "Capitals", Title: "Europe", Description: "Capital cities", Frequency: 7}, sheet.Quiz)
	require.Len(t, sheet.Questions, 2)
	assert.Equal(t, QuestionInput{Text: "France", Answers: []string{"Paris", "Lyon"}, CorrectAnswer: "Paris"}, sheet.Questions[0])
	assert.Equal(t, []string{"Madrid", "Seville", "Valencia"}, sheet.Questions[1].Answers)
}

func TestParseWorkbookRejectsGarbage(t *testing.T) {
	_, err := ParseWorkbook(strings.NewReader("name,title\n"))
	assert.ErrorIs(t, err, domain.ErrNotExcelFormat)

	_, err = ParseWorkbook(workbook(t, []any{"Quiz", "", "", "weekly"}))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImportQuiz(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	t.Run("wrong extension", func(t *testing.T) {
		quizzes, _, _ := newQuizService(t)
		_, _, err := NewImportService(quizzes).ImportQuiz(ctx, "quiz.csv", strings.NewReader(""), f.company, nil, f.owner)
		assert.ErrorIs(t, err, domain.ErrNotExcelFormat)
	})

	t.Run("bad row stops before anything is written", func(t *testing.T) {
		quizzes, _, _ := newQuizService(t)
		buf := workbook(t,
			[]any{"Capitals", "", "", 7},
			[]any{"France", "Paris", "Lyon", "Paris"},
			[]any{"Spain", "Madrid"},
		)
		_, _, err := NewImportService(quizzes).ImportQuiz(ctx, "quiz.xlsx", buf, f.company, nil, f.owner)
		assert.ErrorIs(t, err, domain.ErrNotEnoughOptions)
	})

	t.Run("creates quiz and questions", func(t *testing.T) {
		svc, quizRepo, questionRepo := newQuizService(t)
		quizRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, q *model.Quiz) error {
			q.ID = uuid.New()
			return nil
		})
		questionRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(2)

		buf := workbook(t,
			[]any{"Capitals", "", "", 7},
			[]any{"France", "Paris", "Lyon", "Paris"},
			[]any{"Spain", "Madrid", "Seville", "Madrid"},
		)
		quiz, questions, err := NewImportService(svc).ImportQuiz(ctx, "Quiz.XLSX", buf, f.company, nil, f.owner)
		require.NoError(t, err)
		assert.Equal(t, "Capitals", quiz.Name)
		require.Len(t, questions, 2)
		assert.Equal(t, quiz.ID, questions[1].QuizID)
	})
}

func TestReimportQuizReplacesQuestions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	existing := &model.Quiz{ID: uuid.New(), CompanyID: f.company.ID, Name: "Old", Frequency: 1}

	svc, quizRepo, questionRepo := newQuizService(t)
	gomock.InOrder(
		quizRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil),
		quizRepo.EXPECT().Update(ctx, existing).Return(nil),
		questionRepo.EXPECT().DeleteByQuiz(ctx, existing.ID).Return(nil),
		questionRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(2),
	)

	buf := workbook(t,
		[]any{"New", "", "", 3},
		[]any{"a", "1", "2", "1"},
		[]any{"b", "1", "2", "2"},
	)
	quiz, questions, err := NewImportService(svc).ReimportQuiz(ctx, "q.xlsx", buf, existing, f.company, nil, f.owner)
	require.NoError(t, err)
	assert.Equal(t, "New", quiz.Name)
	assert.Equal(t, 3, quiz.Frequency)
	assert.Len(t, questions, 2)
}

func TestWorkbookRoundTrip(t *testing.T) {
	quiz := &model.Quiz{ID: uuid.New(), Name: "Maths", Title: "Basics", Description: "Sums", Frequency: 2}
	questions := []*model.Question{
		question(quiz.ID, "2+2", "4", "3", "4"),
		question(quiz.ID, "3+3", "6", "5", "6", "7"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(quiz, questions, &buf))

	sheet, err := ParseWorkbook(&buf)
	require.NoError(t, err)
	assert.Equal(t, QuizInput{Name: "Maths", Title: "Basics", Description: "Sums", Frequency: 2}, sheet.Quiz)
	require.Len(t, sheet.Questions, 2)
	assert.Equal(t, QuestionInput{Text: "3+3", Answers: []string{"5", "6", "7"}, CorrectAnswer: "6"}, sheet.Questions[1])
}

func TestExportQuizRequiresWriteAccess(t *testing.T) {
	f := newFixture(t)
	svc, _, _ := newQuizService(t)
	quiz := &model.Quiz{ID: uuid.New(), CompanyID: f.company.ID}

	err := NewImportService(svc).ExportQuiz(context.Background(), quiz, f.company, f.membership(f.member, false), f.member, &bytes.Buffer{})
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}
