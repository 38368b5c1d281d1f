package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/campusclubs/server/internal/api/handlers"
	"github.com/campusclubs/server/internal/api/middleware"
	"github.com/campusclubs/server/internal/auth"
	"github.com/campusclubs/server/internal/config"
	"github.com/campusclubs/server/internal/domain/clubs"
	"github.com/campusclubs/server/internal/domain/events"
	"github.com/campusclubs/server/internal/domain/users"
	"github.com/campusclubs/server/internal/metrics"
	"github.com/campusclubs/server/internal/storage/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

func NewRouter(cfg config.Config, logger zerolog.Logger, pool *pgxpool.Pool) (http.Handler, error) {
	repo, err := postgres.NewRepository(pool)
	if err != nil {
		return nil, err
	}

	hasher := auth.NewPasswordHasher(cfg.Auth.PasswordSalt)
	usersService := users.NewService(repo.Users(), hasher, logger)
	clubsService := clubs.NewService(repo.Clubs(), logger)
	eventsService := events.NewService(repo.Events(), logger)

	authHandler := handlers.NewAuthHandler(usersService)
	clubsHandler := handlers.NewClubsHandler(clubsService, usersService)
	eventsHandler := handlers.NewEventsHandler(eventsService, usersService)
	diagHandler := handlers.NewDiagnosticsHandler(pool, repo.Documents())

	mux := http.NewServeMux()
	mux.Handle("/{$}", methodMux(map[string]http.Handler{
		http.MethodGet: handlers.Root(),
	}))
	mux.Handle("/healthz", handlers.Healthz())
	mux.Handle("/metrics", metrics.Handler())
	mux.Handle("/test", methodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(diagHandler.Diagnostics),
	}))

	mux.Handle("/api/register", methodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(authHandler.Register),
	}))
	mux.Handle("/api/login", methodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(authHandler.Login),
	}))
	mux.Handle("/api/logout", methodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(authHandler.Logout),
	}))
	mux.Handle("/api/clubs", methodMux(map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(clubsHandler.List),
		http.MethodPost: http.HandlerFunc(clubsHandler.Create),
	}))
	mux.Handle("/api/events", methodMux(map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(eventsHandler.List),
		http.MethodPost: http.HandlerFunc(eventsHandler.Create),
	}))

	var handler http.Handler = mux
	handler = metrics.HTTPMiddleware(handler)
	handler = middleware.CORS(cfg.CORS, logger)(handler)
	handler = middleware.RequestLogging(logger)(handler)
	handler = middleware.CorrelationID(logger)(handler)
	return handler, nil
}

func methodMux(byMethod map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := byMethod[r.Method]; ok {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Allow", allowedMethods(byMethod))
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
}

func allowedMethods(byMethod map[string]http.Handler) string {
	methods := make([]string, 0, len(byMethod))
	for method := range byMethod {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}
