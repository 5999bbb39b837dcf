// internal/service/excel.go
package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Ar-Dante/Quiz-platform/internal/access"
	"github.com/Ar-Dante/Quiz-platform/internal/domain"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Workbook layout: A1 name, A2 title, A3 description, A4 frequency, then one
// question per row from row 5 as text, answers..., correct answer.
const firstQuestionRow = 5

// QuizSheet is a parsed workbook.
type QuizSheet struct {
	Quiz      QuizInput
	Questions []QuestionInput
}

type ImportService struct {
	quizzes *QuizService
}

func NewImportService(quizzes *QuizService) *ImportService {
	return &ImportService{quizzes: quizzes}
}

// ParseWorkbook reads the first sheet of an .xlsx workbook.
func ParseWorkbook(r io.Reader) (*QuizSheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, domain.ErrNotExcelFormat
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrNotExcelFormat
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	cell := func(row int) string {
		if row-1 < len(rows) && len(rows[row-1]) > 0 {
			return strings.TrimSpace(rows[row-1][0])
		}
		return ""
	}

	sheet := &QuizSheet{
		Quiz: QuizInput{
			Name:        cell(1),
			Title:       cell(2),
			Description: cell(3),
		},
	}
	if freq := cell(4); freq != "" {
		n, err := strconv.Atoi(freq)
		if err != nil {
			return nil, fmt.Errorf("%w: frequency %q is not a number", domain.ErrInvalidInput, freq)
		}
		sheet.Quiz.Frequency = n
	}

	for i := firstQuestionRow - 1; i < len(rows); i++ {
		cells := trimTrailing(rows[i])
		if len(cells) == 0 {
			continue
		}
		q := QuestionInput{Text: cells[0]}
		if len(cells) > 1 {
			q.Answers = cells[1 : len(cells)-1]
			q.CorrectAnswer = cells[len(cells)-1]
		}
		sheet.Questions = append(sheet.Questions, q)
	}
	return sheet, nil
}

func trimTrailing(cells []string) []string {
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		out = append(out, strings.TrimSpace(c))
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

func checkExcelName(filename string) error {
	if !strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		return domain.ErrNotExcelFormat
	}
	return nil
}

// ImportQuiz creates a quiz and its questions from a workbook. Every question
// goes through the same checks as a manual create.
func (s *ImportService) ImportQuiz(ctx context.Context, filename string, r io.Reader, company *model.Company, member *model.Membership, caller uuid.UUID) (*model.Quiz, []*model.Question, error) {
	if err := access.CompanyWrite(caller, member, company); err != nil {
		return nil, nil, err
	}
	if err := checkExcelName(filename); err != nil {
		return nil, nil, err
	}
	sheet, err := ParseWorkbook(r)
	if err != nil {
		return nil, nil, err
	}
	if err := checkSheetQuestions(sheet); err != nil {
		return nil, nil, err
	}

	quiz, err := s.quizzes.CreateQuiz(ctx, company, sheet.Quiz, member, caller)
	if err != nil {
		return nil, nil, err
	}
	questions, err := s.createQuestions(ctx, quiz, sheet, member, company, caller)
	if err != nil {
		return quiz, nil, err
	}
	return quiz, questions, nil
}

// ReimportQuiz replaces a quiz's fields and all of its questions.
func (s *ImportService) ReimportQuiz(ctx context.Context, filename string, r io.Reader, quiz *model.Quiz, company *model.Company, member *model.Membership, caller uuid.UUID) (*model.Quiz, []*model.Question, error) {
	if err := access.CompanyWrite(caller, member, company); err != nil {
		return nil, nil, err
	}
	if err := checkExcelName(filename); err != nil {
		return nil, nil, err
	}
	sheet, err := ParseWorkbook(r)
	if err != nil {
		return nil, nil, err
	}
	if err := checkSheetQuestions(sheet); err != nil {
		return nil, nil, err
	}

	updated, err := s.quizzes.UpdateQuiz(ctx, quiz.ID, company, sheet.Quiz, member, caller)
	if err != nil {
		return nil, nil, err
	}
	if err := s.quizzes.RemoveQuestionsForQuiz(ctx, updated, member, company, caller); err != nil {
		return nil, nil, err
	}
	questions, err := s.createQuestions(ctx, updated, sheet, member, company, caller)
	if err != nil {
		return updated, nil, err
	}
	return updated, questions, nil
}

// checkSheetQuestions validates every row up front so a bad row does not
// leave a half-imported quiz behind.
func checkSheetQuestions(sheet *QuizSheet) error {
	for i, q := range sheet.Questions {
		if err := q.check(); err != nil {
			return fmt.Errorf("row %d: %w", firstQuestionRow+i, err)
		}
	}
	return nil
}

func (s *ImportService) createQuestions(ctx context.Context, quiz *model.Quiz, sheet *QuizSheet, member *model.Membership, company *model.Company, caller uuid.UUID) ([]*model.Question, error) {
	questions := make([]*model.Question, 0, len(sheet.Questions))
	for _, in := range sheet.Questions {
		q, err := s.quizzes.CreateQuestion(ctx, quiz, in, member, company, caller)
		if err != nil {
			return questions, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// ExportQuiz writes a quiz in the import layout.
func (s *ImportService) ExportQuiz(ctx context.Context, quiz *model.Quiz, company *model.Company, member *model.Membership, caller uuid.UUID, w io.Writer) error {
	if err := access.CompanyWrite(caller, member, company); err != nil {
		return err
	}
	if quiz.CompanyID != company.ID {
		return domain.ErrQuizNotFound
	}
	questions, err := s.quizzes.AllQuestions(ctx, quiz.ID)
	if err != nil {
		return err
	}
	return WriteWorkbook(quiz, questions, w)
}

func WriteWorkbook(quiz *model.Quiz, questions []*model.Question, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := []any{quiz.Name, quiz.Title, quiz.Description, quiz.Frequency}
	for i, v := range header {
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", i+1), v); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, q := range questions {
		row := firstQuestionRow + i
		values := make([]any, 0, len(q.Answers)+2)
		values = append(values, q.Text)
		for _, a := range q.Answers {
			values = append(values, a)
		}
		values = append(values, q.CorrectAnswer)

		start, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, start, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", row, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
