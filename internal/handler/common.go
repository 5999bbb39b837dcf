package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Ar-Dante/Quiz-platform/internal/domain"
	"github.com/Ar-Dante/Quiz-platform/internal/middleware"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/Ar-Dante/Quiz-platform/internal/repository"
	"github.com/Ar-Dante/Quiz-platform/internal/service"
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	BaseResponse
	Error string `json:"error"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

type MessageResponse struct {
	BaseResponse
	Message string `json:"message"`
}

type ListResponse[T any] struct {
	BaseResponse
	Items  []T   `json:"items"`
	Total  int64 `json:"total,omitempty"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

func listResponse[T any](items []T, page repository.Page) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{
		BaseResponse: BaseResponse{Ok: true},
		Items:        items,
		Limit:        page.Limit,
		Offset:       page.Offset,
	}
}

func message(msg string) MessageResponse {
	return MessageResponse{BaseResponse: BaseResponse{Ok: true}, Message: msg}
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// handleError maps a domain error kind to its status. Anything without a kind
// is a server fault and its message is not exposed.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusUnauthorized
	default:
		slog.ErrorContext(r.Context(), "request failed", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondWithError(w, status, err.Error())
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request payload", domain.ErrInvalidInput)
	}
	return nil
}

func caller(r *http.Request) (uuid.UUID, error) {
	id, ok := middleware.UserID(r.Context())
	if !ok {
		return uuid.Nil, domain.ErrInvalidToken
	}
	return id, nil
}

func urlParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	return parseID(urlParam(r, name), name)
}

func uuidQuery(r *http.Request, name string) (uuid.UUID, error) {
	return parseID(r.URL.Query().Get(name), name)
}

func parseID(raw, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s must be a uuid", domain.ErrInvalidInput, name)
	}
	return id, nil
}

// pageFrom reads limit and offset query parameters.
func pageFrom(r *http.Request) repository.Page {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	return repository.Page{Limit: limit, Offset: offset}.Normalize()
}

// companyScope loads the records every company-scoped operation authorizes against.
type companyScope struct {
	companies *service.CompanyService
	members   *service.MembershipService
}

type scope struct {
	caller  uuid.UUID
	company *model.Company
	member  *model.Membership
}

func (s companyScope) load(r *http.Request, companyID uuid.UUID) (*scope, error) {
	callerID, err := caller(r)
	if err != nil {
		return nil, err
	}
	company, err := s.companies.Find(r.Context(), companyID)
	if err != nil {
		return nil, err
	}
	member, err := s.members.GetMember(r.Context(), callerID, company.ID)
	if err != nil {
		return nil, err
	}
	return &scope{caller: callerID, company: company, member: member}, nil
}

// fromPath loads the scope for the company named by a path parameter.
func (s companyScope) fromPath(r *http.Request, param string) (*scope, error) {
	id, err := uuidParam(r, param)
	if err != nil {
		return nil, err
	}
	return s.load(r, id)
}

func (s companyScope) fromQuery(r *http.Request, param string) (*scope, error) {
	id, err := uuidQuery(r, param)
	if err != nil {
		return nil, err
	}
	return s.load(r, id)
}
