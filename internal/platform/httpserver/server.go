package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	resourceaccess "aegis/contexts/identity-access/resource-access-service"

	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "aegis/internal/platform/httpserver/docs"
)

type Server struct {
	mux            *http.ServeMux
	logger         *slog.Logger
	addr           string
	requiredScope  string
	resourceAccess resourceaccess.Module
}

func New(
	resourceAccessModule resourceaccess.Module,
	logger *slog.Logger,
	addr string,
	requiredScope string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}
	if requiredScope == "" {
		requiredScope = "read"
	}

	s := &Server{
		mux:            http.NewServeMux(),
		logger:         logger,
		addr:           addr,
		requiredScope:  requiredScope,
		resourceAccess: resourceAccessModule,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/resources/v1/protected", s.handleAccessProtectedResource)
	s.mux.HandleFunc("GET /api/resources/v1/owned", s.handleListOwnedResources)
	s.mux.HandleFunc("POST /api/resources/v1/resources", s.handleRegisterResource)
}

func (s *Server) decodeJSON(
	w http.ResponseWriter,
	r *http.Request,
	target any,
	writeError func(http.ResponseWriter, int, string, string),
) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// ensureRequestID echoes the caller's correlation id or mints one.
func ensureRequestID(w http.ResponseWriter, r *http.Request) string {
	requestID := strings.TrimSpace(r.Header.Get("X-Request-Id"))
	if requestID == "" {
		requestID = uuid.NewString()
	}
	w.Header().Set("X-Request-Id", requestID)
	return requestID
}
