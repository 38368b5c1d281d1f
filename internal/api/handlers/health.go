package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/campusclubs/server/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
)

const rootMessage = "College Club API running"

// Root handles GET / with a fixed banner message.
func Root() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": rootMessage})
	})
}

// Healthz returns a lightweight liveness response.
func Healthz() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

// DiagnosticsHandler serves GET /test: a connectivity report for operators.
// Every failure is folded into the response body and the status is always 200.
type DiagnosticsHandler struct {
	Pool  *pgxpool.Pool
	Store storage.DocumentStore
}

func NewDiagnosticsHandler(pool *pgxpool.Pool, store storage.DocumentStore) *DiagnosticsHandler {
	return &DiagnosticsHandler{Pool: pool, Store: store}
}

func (h *DiagnosticsHandler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"backend": "running",
	}

	if os.Getenv("DATABASE_URL") != "" {
		response["database_url"] = "set"
	} else {
		response["database_url"] = "not set"
	}

	if h.Pool == nil {
		response["database"] = "not available"
		response["connection_status"] = "not connected"
		writeJSON(w, http.StatusOK, response)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.Pool.Ping(ctx); err != nil {
		response["database"] = "error: " + truncate(err.Error(), 50)
		response["connection_status"] = "not connected"
		writeJSON(w, http.StatusOK, response)
		return
	}

	response["database"] = "connected"
	response["connection_status"] = "connected"
	response["database_name"] = h.Pool.Config().ConnConfig.Database

	collections, err := h.Store.Collections(ctx)
	if err != nil {
		response["database"] = "error: " + truncate(err.Error(), 50)
		writeJSON(w, http.StatusOK, response)
		return
	}
	if len(collections) > 10 {
		collections = collections[:10]
	}
	response["collections"] = collections

	writeJSON(w, http.StatusOK, response)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
