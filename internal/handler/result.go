// internal/handler/result.go
package handler

import (
	"net/http"

	"github.com/Ar-Dante/Quiz-platform/internal/service"
)

type ResultHandler struct {
	companyScope
	results *service.ResultService
	exports *service.ExportService
}

func NewResultHandler(companies *service.CompanyService, members *service.MembershipService, results *service.ResultService, exports *service.ExportService) *ResultHandler {
	return &ResultHandler{
		companyScope: companyScope{companies: companies, members: members},
		results:      results,
		exports:      exports,
	}
}

type RatingResponse struct {
	BaseResponse
	Rating float64 `json:"rating"`
}

type exportRequest struct {
	SaveFormat string `json:"save_format"`
}

func (h *ResultHandler) SystemAverage(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "user")
	if err != nil {
		handleError(w, r, err)
		return
	}
	rating, err := h.results.SystemAverage(r.Context(), userID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, RatingResponse{BaseResponse{Ok: true}, rating})
}

func (h *ResultHandler) CompanyAverage(w http.ResponseWriter, r *http.Request) {
	sc, err := h.fromPath(r, "company")
	if err != nil {
		handleError(w, r, err)
		return
	}
	userID, err := uuidParam(r, "user")
	if err != nil {
		handleError(w, r, err)
		return
	}
	rating, err := h.results.UserAverageInCompany(r.Context(), userID, sc.company, sc.member, sc.caller)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, RatingResponse{BaseResponse{Ok: true}, rating})
}

func (h *ResultHandler) UserResults(w http.ResponseWriter, r *http.Request) {
	callerID, err := caller(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	userID, err := uuidParam(r, "user")
	if err != nil {
		handleError(w, r, err)
		return
	}
	var req exportRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	h.download(w, r)(h.exports.UserResults(r.Context(), userID, callerID, req.SaveFormat))
}

func (h *ResultHandler) UserCompanyResults(w http.ResponseWriter, r *http.Request) {
	sc, err := h.fromPath(r, "company")
	if err != nil {
		handleError(w, r, err)
		return
	}
	userID, err := uuidParam(r, "user")
	if err != nil {
		handleError(w, r, err)
		return
	}
	var req exportRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	h.download(w, r)(h.exports.UserCompanyResults(r.Context(), userID, sc.company, sc.member, sc.caller, req.SaveFormat))
}

func (h *ResultHandler) CompanyResults(w http.ResponseWriter, r *http.Request) {
	sc, err := h.fromPath(r, "company")
	if err != nil {
		handleError(w, r, err)
		return
	}
	var req exportRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	h.download(w, r)(h.exports.CompanyResults(r.Context(), sc.company, sc.member, sc.caller, req.SaveFormat))
}

func (h *ResultHandler) QuizResults(w http.ResponseWriter, r *http.Request) {
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
	var req exportRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	h.download(w, r)(h.exports.QuizResults(r.Context(), quizID, sc.company, sc.member, sc.caller, req.SaveFormat))
}

func (h *ResultHandler) download(w http.ResponseWriter, r *http.Request) func(*service.Export, error) {
	return func(export *service.Export, err error) {
		if err != nil {
			handleError(w, r, err)
			return
		}
		attach(w, export.FileName, export.ContentType, export.Data)
	}
}
