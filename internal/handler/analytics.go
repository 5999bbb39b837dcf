// internal/handler/analytics.go
package handler

import (
	"net/http"

	"github.com/Ar-Dante/Quiz-platform/internal/access"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/Ar-Dante/Quiz-platform/internal/service"
	"github.com/google/uuid"
)

type AnalyticsHandler struct {
	companyScope
	quizzes *service.QuizService
	results *service.ResultService
}

func NewAnalyticsHandler(companies *service.CompanyService, members *service.MembershipService, quizzes *service.QuizService, results *service.ResultService) *AnalyticsHandler {
	return &AnalyticsHandler{
		companyScope: companyScope{companies: companies, members: members},
		quizzes:      quizzes,
		results:      results,
	}
}

type SummaryResponse struct {
	BaseResponse
	Items []model.ResultSummary `json:"items"`
}

type TimelineResponse struct {
	BaseResponse
	Items []model.Timeline `json:"items"`
}

// companyQuizIDs returns the quizzes named by repeated quiz_id parameters,
// or every quiz of the company when none are given. Ids from other
// companies are dropped.
func (h *AnalyticsHandler) companyQuizIDs(r *http.Request) ([]uuid.UUID, error) {
	sc, err := h.fromQuery(r, "company_id")
	if err != nil {
		return nil, err
	}
	if err := access.CompanyWrite(sc.caller, sc.member, sc.company); err != nil {
		return nil, err
	}
	quizzes, err := h.quizzes.AllQuizzes(r.Context(), sc.company.ID)
	if err != nil {
		return nil, err
	}

	wanted := make(map[uuid.UUID]bool)
	for _, raw := range r.URL.Query()["quiz_id"] {
		id, err := parseID(raw, "quiz_id")
		if err != nil {
			return nil, err
		}
		wanted[id] = true
	}

	ids := make([]uuid.UUID, 0, len(quizzes))
	for _, q := range quizzes {
		if len(wanted) == 0 || wanted[q.ID] {
			ids = append(ids, q.ID)
		}
	}
	return ids, nil
}

func (h *AnalyticsHandler) QuizLastAttempts(w http.ResponseWriter, r *http.Request) {
	quizIDs, err := h.companyQuizIDs(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	items, err := h.results.QuizLastAttempts(r.Context(), quizIDs)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, SummaryResponse{BaseResponse{Ok: true}, items})
}

func (h *AnalyticsHandler) QuizAverages(w http.ResponseWriter, r *http.Request) {
	quizIDs, err := h.companyQuizIDs(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	items, err := h.results.QuizAveragesByTime(r.Context(), quizIDs)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, TimelineResponse{BaseResponse{Ok: true}, items})
}

func (h *AnalyticsHandler) UserLastAttempts(w http.ResponseWriter, r *http.Request) {
	sc, err := h.fromPath(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	members, err := h.members.AllMembers(r.Context(), sc.company.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	items, err := h.results.UserLastAttempts(r.Context(), sc.company, members, sc.member, sc.caller)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, SummaryResponse{BaseResponse{Ok: true}, items})
}

func (h *AnalyticsHandler) UserAverages(w http.ResponseWriter, r *http.Request) {
	sc, err := h.fromPath(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	members, err := h.members.AllMembers(r.Context(), sc.company.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	items, err := h.results.UserAveragesByTime(r.Context(), sc.company, members, sc.member, sc.caller)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, TimelineResponse{BaseResponse{Ok: true}, items})
}

func (h *AnalyticsHandler) UserQuizAverages(w http.ResponseWriter, r *http.Request) {
	sc, err := h.fromPath(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	userID, err := uuidParam(r, "user")
	if err != nil {
		handleError(w, r, err)
		return
	}
	items, err := h.results.UserQuizAveragesByTime(r.Context(), userID, sc.company, sc.member, sc.caller)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, TimelineResponse{BaseResponse{Ok: true}, items})
}
