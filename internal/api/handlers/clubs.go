package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campusclubs/server/internal/api/problem"
	"github.com/campusclubs/server/internal/domain/clubs"
	"github.com/campusclubs/server/internal/domain/users"
)

type ClubsHandler struct {
	Clubs *clubs.Service
	Users *users.Service
}

func NewClubsHandler(clubsService *clubs.Service, usersService *users.Service) *ClubsHandler {
	return &ClubsHandler{Clubs: clubsService, Users: usersService}
}

// List handles GET /api/clubs. No auth; every club is public.
func (h *ClubsHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Clubs.List(r.Context())
	if err != nil {
		problem.Write(w, r, http.StatusInternalServerError, "Server error", err)
		return
	}
	if list == nil {
		list = []clubs.Club{}
	}

	writeJSON(w, http.StatusOK, list)
}

// Create handles POST /api/clubs. The admin check happens here, per handler;
// a missing, invalid, or non-admin token all answer 403.
func (h *ClubsHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, err := h.Users.RequireAdmin(r.Context(), queryToken(r))
	if err != nil {
		if errors.Is(err, users.ErrInvalidToken) || errors.Is(err, users.ErrNotAdmin) {
			problem.Write(w, r, http.StatusForbidden, "Admin only", err)
			return
		}
		problem.Write(w, r, http.StatusInternalServerError, "Server error", err)
		return
	}

	var input clubs.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		problem.Write(w, r, http.StatusUnprocessableEntity, "Invalid request body", err)
		return
	}

	club, err := h.Clubs.Create(r.Context(), input, user.Email)
	if err != nil {
		var invalid clubs.ValidationError
		if errors.As(err, &invalid) {
			problem.Write(w, r, http.StatusUnprocessableEntity, "Invalid request body", err)
			return
		}
		problem.Write(w, r, http.StatusInternalServerError, "Server error", err)
		return
	}

	writeJSON(w, http.StatusOK, club)
}
