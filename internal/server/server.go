// Package server exposes the curriculum, explorer and quiz over HTTP and
// WebSocket.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ashrofu/kssm-hub/internal/certificate"
	"github.com/ashrofu/kssm-hub/internal/curriculum"
	"github.com/ashrofu/kssm-hub/internal/quiz"
)

// Server holds the handler dependencies.
type Server struct {
	store    *curriculum.Store
	sessions *quiz.Sessions
	cert     *certificate.Renderer
}

// New creates a server over the loaded curriculum and quiz sessions.
func New(store *curriculum.Store, sessions *quiz.Sessions, cert *certificate.Renderer) *Server {
	return &Server{store: store, sessions: sessions, cert: cert}
}

// Routes creates the HTTP router.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", handleHealthz)
	mux.HandleFunc("GET /readyz", handleReadyz)

	mux.HandleFunc("GET /api/v1/forms", s.handleForms)
	mux.HandleFunc("GET /api/v1/forms/{form}", s.handleForm)
	mux.HandleFunc("GET /api/v1/reference", s.handleReference)
	mux.HandleFunc("GET /api/v1/standards/{form}", s.handleStandards)

	mux.HandleFunc("POST /api/v1/explorer/layout", s.handleExplorerLayout)
	mux.HandleFunc("GET /api/v1/compare", s.handleCompare)

	mux.HandleFunc("GET /api/v1/export/forms/{form}/{section}", s.handleExportSection)
	mux.HandleFunc("GET /api/v1/export/forms/{form}/standards/{skill}", s.handleExportStandards)
	mux.HandleFunc("GET /api/v1/export/reference/{section}", s.handleExportReference)
	mux.HandleFunc("GET /api/v1/export/workbook", s.handleExportWorkbook)

	mux.HandleFunc("GET /api/v1/quiz/levels", s.handleQuizLevels)
	mux.HandleFunc("GET /api/v1/quiz/{user}", s.handleQuizSnapshot)
	mux.HandleFunc("POST /api/v1/quiz/{user}/start", s.handleQuizStart)
	mux.HandleFunc("POST /api/v1/quiz/{user}/answer", s.handleQuizAnswer)
	mux.HandleFunc("POST /api/v1/quiz/{user}/advance", s.handleQuizAdvance)
	mux.HandleFunc("POST /api/v1/quiz/{user}/try-again", s.handleQuizTryAgain)
	mux.HandleFunc("POST /api/v1/quiz/{user}/next-level", s.handleQuizNextLevel)
	mux.HandleFunc("POST /api/v1/quiz/{user}/menu", s.handleQuizMenu)
	mux.HandleFunc("POST /api/v1/quiz/{user}/reset", s.handleQuizReset)
	mux.HandleFunc("POST /api/v1/quiz/{user}/certificate", s.handleQuizCertificate)
	mux.HandleFunc("GET /api/v1/quiz/{user}/ws", s.handleQuizWS)

	return mux
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func handleReadyz(w http.ResponseWriter, r *http.Request) {
	// Data is embedded and validated at boot; once up, the server is ready.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
