// internal/handler/quiz.go
package handler

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Ar-Dante/Quiz-platform/internal/access"
	"github.com/Ar-Dante/Quiz-platform/internal/domain"
	"github.com/Ar-Dante/Quiz-platform/internal/events"
	"github.com/Ar-Dante/Quiz-platform/internal/ids"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/Ar-Dante/Quiz-platform/internal/service"
)

const maxUploadBytes = 10 << 20

type QuizHandler struct {
	companyScope
	quizzes       *service.QuizService
	results       *service.ResultService
	exports       *service.ExportService
	imports       *service.ImportService
	notifications *service.NotificationService
	publisher     events.Publisher
}

type QuizDeps struct {
	Companies     *service.CompanyService
	Members       *service.MembershipService
	Quizzes       *service.QuizService
	Results       *service.ResultService
	Exports       *service.ExportService
	Imports       *service.ImportService
	Notifications *service.NotificationService
	Publisher     events.Publisher
}

func NewQuizHandler(d QuizDeps) *QuizHandler {
	if d.Publisher == nil {
		d.Publisher = events.NoOpPublisher{}
	}
	return &QuizHandler{
		companyScope:  companyScope{companies: d.Companies, members: d.Members},
		quizzes:       d.Quizzes,
		results:       d.Results,
		exports:       d.Exports,
		imports:       d.Imports,
		notifications: d.Notifications,
		publisher:     d.Publisher,
	}
}

// quizIn loads a quiz and hides it when it belongs to another company.
func (h *QuizHandler) quizIn(r *http.Request, sc *scope, raw string) (*model.Quiz, error) {
	id, err := parseID(raw, "quiz_id")
	if err != nil {
		return nil, err
	}
	quiz, err := h.quizzes.GetQuizByID(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if quiz.CompanyID != sc.company.ID {
		return nil, domain.ErrQuizNotFound
	}
	return quiz, nil
}

func (h *QuizHandler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	sc, err := h.fromQuery(r, "company_id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	var input service.QuizInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	quiz, err := h.quizzes.CreateQuiz(r.Context(), sc.company, input, sc.member, sc.caller)
	if err != nil {
		handleError(w, r, err)
		return
	}
	h.notifyMembers(r, quiz)
	respondWithJSON(w, http.StatusCreated, quiz)
}

// notifyMembers is best effort. The quiz exists either way.
func (h *QuizHandler) notifyMembers(r *http.Request, quiz *model.Quiz) {
	members, err := h.members.AllMembers(r.Context(), quiz.CompanyID)
	if err == nil {
		err = h.notifications.NotifyQuizCreated(r.Context(), members, quiz)
	}
	if err != nil {
		slog.WarnContext(r.Context(), "failed to notify members of new quiz", "quiz_id", quiz.ID, "error", err)
	}
}

func (h *QuizHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	sc, err := h.fromQuery(r, "company_id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	quiz, err := h.quizIn(r, sc, r.URL.Query().Get("quiz_id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	var input service.QuestionInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	question, err := h.quizzes.CreateQuestion(r.Context(), quiz, input, sc.member, sc.company, sc.caller)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, question)
}

type submitRequest struct {
	Answers []string `json:"answers"`
}

type SubmitResponse struct {
	BaseResponse
	service.Score
	ResultID string `json:"result_id"`
}

// Submit scores a submission, records the attempt, stages it for export
// and announces it. Staging and publishing failures are logged only.
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sc, err := h.fromQuery(r, "company_id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	quiz, err := h.quizIn(r, sc, r.URL.Query().Get("quiz_id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	var req submitRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	questions, err := h.quizzes.AllQuestions(r.Context(), quiz.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	score, err := h.quizzes.Submit(r.Context(), questions, req.Answers, sc.member, sc.company, sc.caller)
	if err != nil {
		handleError(w, r, err)
		return
	}

	result, err := h.results.AddResult(r.Context(), quiz.ID, sc.company.ID, sc.caller, score.CorrectCount, score.TotalCount)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := h.exports.Stage(r.Context(), quiz.ID, sc.company.ID, sc.caller, score.CorrectCount, score.TotalCount); err != nil {
		slog.WarnContext(r.Context(), "failed to stage result for export", "quiz_id", quiz.ID, "error", err)
	}
	event := events.QuizSubmittedEvent{
		QuizID:       quiz.ID,
		CompanyID:    sc.company.ID,
		UserID:       sc.caller,
		CorrectCount: score.CorrectCount,
		TotalCount:   score.TotalCount,
		At:           time.Now().UTC(),
	}
	if err := h.publisher.Publish(r.Context(), event); err != nil {
		slog.WarnContext(r.Context(), "failed to publish submission", "quiz_id", quiz.ID, "error", err)
	}

	respondWithJSON(w, http.StatusOK, SubmitResponse{
		BaseResponse: BaseResponse{Ok: true},
		Score:        *score,
		ResultID:     result.ID.String(),
	})
}

func (h *QuizHandler) Quizzes(w http.ResponseWriter, r *http.Request) {
	sc, err := h.fromQuery(r, "company_id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	if !sc.company.VisibleTo(sc.caller) && sc.member == nil {
		handleError(w, r, domain.ErrCompanyNotFound)
		return
	}
	page := pageFrom(r)
	quizzes, err := h.quizzes.ListQuizzes(r.Context(), sc.company.ID, page)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse(quizzes, page))
}

// Questions lists a quiz's questions to participants. Correct answers are
// only shown to the owner and admins.
func (h *QuizHandler) Questions(w http.ResponseWriter, r *http.Request) {
	sc, err := h.fromQuery(r, "company_id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := access.CompanyParticipant(sc.caller, sc.member, sc.company); err != nil {
		handleError(w, r, err)
		return
	}
	quiz, err := h.quizIn(r, sc, r.URL.Query().Get("quiz_id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	page := pageFrom(r)
	questions, err := h.quizzes.ListQuestions(r.Context(), quiz.ID, page)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if access.CompanyWrite(sc.caller, sc.member, sc.company) != nil {
		for _, q := range questions {
			q.CorrectAnswer = ""
		}
	}
	respondWithJSON(w, http.StatusOK, listResponse(questions, page))
}

func (h *QuizHandler) UpdateQuiz(w http.ResponseWriter, r *http.Request) {
	sc, err := h.fromPath(r, "company")
	if err != nil {
		handleError(w, r, err)
		return
	}
	quizID, err := uuidParam(r, "quiz")
	if err != nil {
		handleError(w, r, err)
		return
	}
	var input service.QuizInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(w, r, err)
		return
	}
	quiz, err := h.quizzes.UpdateQuiz(r.Context(), quizID, sc.company, input, sc.member, sc.caller)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, quiz)
}

func (h *QuizHandler) RemoveQuiz(w http.ResponseWriter, r *http.Request) {
	sc, err := h.fromPath(r, "company")
	if err != nil {
		handleError(w, r, err)
		return
	}
	quizID, err := uuidParam(r, "quiz")
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := h.quizzes.RemoveQuiz(r.Context(), quizID, sc.company, sc.member, sc.caller); err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, message("Quiz removed"))
}

// quizScope resolves the company from the quiz in the path.
func (h *QuizHandler) quizScope(r *http.Request) (*scope, *model.Quiz, error) {
	quizID, err := uuidParam(r, "quiz")
	if err != nil {
		return nil, nil, err
	}
	quiz, err := h.quizzes.GetQuizByID(r.Context(), quizID)
	if err != nil {
		return nil, nil, err
	}
	sc, err := h.load(r, quiz.CompanyID)
	if err != nil {
		return nil, nil, err
	}
	return sc, quiz, nil
}

func (h *QuizHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	sc, quiz, err := h.quizScope(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	questionID, err := uuidParam(r, "question")
	if err != nil {
		handleError(w, r, err)
		return
	}
	var input service.QuestionInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(w, r, err)
		return
	}
	question, err := h.quizzes.UpdateQuestion(r.Context(), questionID, quiz, input, sc.member, sc.company, sc.caller)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, question)
}

func (h *QuizHandler) RemoveQuestion(w http.ResponseWriter, r *http.Request) {
	sc, err := h.fromPath(r, "company")
	if err != nil {
		handleError(w, r, err)
		return
	}
	quiz, err := h.quizIn(r, sc, urlParam(r, "quiz"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	questionID, err := uuidParam(r, "question")
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := h.quizzes.RemoveQuestion(r.Context(), questionID, quiz, sc.member, sc.company, sc.caller); err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, message("Question removed"))
}

type ImportResponse struct {
	BaseResponse
	Quiz      *model.Quiz       `json:"quiz"`
	Questions []*model.Question `json:"questions"`
}

func (h *QuizHandler) Import(w http.ResponseWriter, r *http.Request) {
	sc, err := h.fromQuery(r, "company_id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	file, name, err := upload(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	quiz, questions, err := h.imports.ImportQuiz(r.Context(), name, file, sc.company, sc.member, sc.caller)
	if err != nil {
		handleError(w, r, err)
		return
	}
	h.notifyMembers(r, quiz)
	respondWithJSON(w, http.StatusCreated, ImportResponse{BaseResponse{Ok: true}, quiz, questions})
}

func (h *QuizHandler) Reimport(w http.ResponseWriter, r *http.Request) {
	sc, quiz, err := h.quizScope(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	file, name, err := upload(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	quiz, questions, err := h.imports.ReimportQuiz(r.Context(), name, file, quiz, sc.company, sc.member, sc.caller)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ImportResponse{BaseResponse{Ok: true}, quiz, questions})
}

func (h *QuizHandler) Export(w http.ResponseWriter, r *http.Request) {
	sc, quiz, err := h.quizScope(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := h.imports.ExportQuiz(r.Context(), quiz, sc.company, sc.member, sc.caller, &buf); err != nil {
		handleError(w, r, err)
		return
	}
	attach(w, ids.FileName("quiz", "xlsx"), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// upload reads the "file" part of a multipart form into memory.
func upload(r *http.Request) (*bytes.Reader, string, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, "", fmt.Errorf("%w: expected a multipart upload", domain.ErrInvalidInput)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", fmt.Errorf("%w: missing file field", domain.ErrInvalidInput)
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(file); err != nil {
		return nil, "", fmt.Errorf("reading upload: %w", err)
	}
	return bytes.NewReader(buf.Bytes()), header.Filename, nil
}

func attach(w http.ResponseWriter, filename, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
