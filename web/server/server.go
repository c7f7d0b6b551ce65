// Package server exposes the renderer over HTTP: scenes come in as JSON,
// frames go out as encoded images. Nothing is stored between requests.
package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Server handles render requests over HTTP
type Server struct {
	port int
}

// New creates a server listening on the given port
func New(port int) *Server {
	return &Server{port: port}
}

// Router builds the route table. Exposed separately from Start so tests
// can drive it through httptest.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogging)

	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/scenes", s.handleScenes).Methods(http.MethodGet)
	r.HandleFunc("/api/render", s.handleRender).Methods(http.MethodPost)

	return r
}

// Start blocks serving HTTP until the listener fails
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("starting render server", "addr", addr)
	return http.ListenAndServe(addr, s.Router())
}

// requestLogging tags every request with an id and logs its outcome
func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)

		next.ServeHTTP(w, r)

		slog.Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start))
	})
}
