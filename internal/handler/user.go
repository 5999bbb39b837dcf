// internal/handler/user.go
package handler

import (
	"net/http"

	"github.com/Ar-Dante/Quiz-platform/internal/service"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page := pageFrom(r)
	users, total, err := h.users.List(r.Context(), page)
	if err != nil {
		handleError(w, r, err)
		return
	}
	resp := listResponse(users, page)
	resp.Total = total
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID, err := caller(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	var input service.UpdateUserInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	user, err := h.users.Update(r.Context(), id, input, callerID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, err := caller(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := h.users.Delete(r.Context(), id, callerID); err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, message("User deleted"))
}
