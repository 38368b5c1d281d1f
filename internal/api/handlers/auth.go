package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campusclubs/server/internal/api/problem"
	"github.com/campusclubs/server/internal/domain/users"
)

type AuthHandler struct {
	Users *users.Service
}

func NewAuthHandler(usersService *users.Service) *AuthHandler {
	return &AuthHandler{Users: usersService}
}

type authResponse struct {
	Token   string `json:"token"`
	IsAdmin bool   `json:"is_admin"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// Register handles POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input users.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		problem.Write(w, r, http.StatusUnprocessableEntity, "Invalid request body", err)
		return
	}

	result, err := h.Users.Register(r.Context(), input)
	if err != nil {
		var invalid users.ValidationError
		switch {
		case errors.Is(err, users.ErrEmailTaken):
			problem.Write(w, r, http.StatusBadRequest, "Email already registered", err)
		case errors.As(err, &invalid):
			problem.Write(w, r, http.StatusUnprocessableEntity, "Invalid request body", err)
		default:
			problem.Write(w, r, http.StatusInternalServerError, "Server error", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		Token:   result.Token,
		IsAdmin: result.IsAdmin,
		Name:    result.Name,
		Email:   result.Email,
	})
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input users.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		problem.Write(w, r, http.StatusUnprocessableEntity, "Invalid request body", err)
		return
	}

	result, err := h.Users.Login(r.Context(), input)
	if err != nil {
		var invalid users.ValidationError
		switch {
		case errors.Is(err, users.ErrInvalidCredentials):
			problem.Write(w, r, http.StatusUnauthorized, "Invalid credentials", err)
		case errors.As(err, &invalid):
			problem.Write(w, r, http.StatusUnprocessableEntity, "Invalid request body", err)
		default:
			problem.Write(w, r, http.StatusInternalServerError, "Server error", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		Token:   result.Token,
		IsAdmin: result.IsAdmin,
		Name:    result.Name,
		Email:   result.Email,
	})
}

// Logout handles POST /api/logout. A token that matches no session revokes
// nothing, and the response is {"success":true} either way.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Users.Logout(r.Context(), queryToken(r)); err != nil {
		problem.Write(w, r, http.StatusInternalServerError, "Server error", err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
