// internal/handler/auth.go
package handler

import (
	"net/http"

	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/Ar-Dante/Quiz-platform/internal/service"
)

type AuthHandler struct {
	users *service.UserService
}

func NewAuthHandler(users *service.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

type AuthResponse struct {
	BaseResponse
	User      *model.User `json:"user"`
	Token     string      `json:"access_token"`
	TokenType string      `json:"token_type"`
}

func authResponse(out *service.AuthOutput) AuthResponse {
	return AuthResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         out.User,
		Token:        out.Token,
		TokenType:    "bearer",
	}
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var input service.SignupInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	out, err := h.users.Signup(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, authResponse(out))
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	out, err := h.users.SignIn(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, authResponse(out))
}

type externalLoginRequest struct {
	Token string `json:"token"`
}

// External exchanges an identity provider token for a local one.
func (h *AuthHandler) External(w http.ResponseWriter, r *http.Request) {
	var req externalLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	out, err := h.users.ExternalLogin(r.Context(), req.Token)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, authResponse(out))
}
