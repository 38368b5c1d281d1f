package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campusclubs/server/internal/api/problem"
	"github.com/campusclubs/server/internal/domain/events"
	"github.com/campusclubs/server/internal/domain/users"
)

type EventsHandler struct {
	Events *events.Service
	Users  *users.Service
}

func NewEventsHandler(eventsService *events.Service, usersService *users.Service) *EventsHandler {
	return &EventsHandler{Events: eventsService, Users: usersService}
}

// List handles GET /api/events. No auth; every event is public.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Events.List(r.Context())
	if err != nil {
		problem.Write(w, r, http.StatusInternalServerError, "Server error", err)
		return
	}
	if list == nil {
		list = []events.Event{}
	}

	writeJSON(w, http.StatusOK, list)
}

// Create handles POST /api/events. Same inline admin gate as club creation.
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, err := h.Users.RequireAdmin(r.Context(), queryToken(r))
	if err != nil {
		if errors.Is(err, users.ErrInvalidToken) || errors.Is(err, users.ErrNotAdmin) {
			problem.Write(w, r, http.StatusForbidden, "Admin only", err)
			return
		}
		problem.Write(w, r, http.StatusInternalServerError, "Server error", err)
		return
	}

	var input events.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		problem.Write(w, r, http.StatusUnprocessableEntity, "Invalid request body", err)
		return
	}

	event, err := h.Events.Create(r.Context(), input, user.Email)
	if err != nil {
		var invalid events.ValidationError
		if errors.As(err, &invalid) {
			problem.Write(w, r, http.StatusUnprocessableEntity, "Invalid request body", err)
			return
		}
		problem.Write(w, r, http.StatusInternalServerError, "Server error", err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}
