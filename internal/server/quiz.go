package server

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ashrofu/kssm-hub/internal/certificate"
	"github.com/ashrofu/kssm-hub/internal/quiz"
)

func (s *Server) handleQuizLevels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.sessions.Bank().Levels())
}

// engine resolves the per-user quiz engine from the path. An empty user id is
// rejected before a session is created for it.
func (s *Server) engine(w http.ResponseWriter, r *http.Request) (*quiz.Engine, bool) {
	user := r.PathValue("user")
	if user == "" {
		writeError(w, http.StatusBadRequest, "user id is required")
		return nil, false
	}
	return s.sessions.Get(r.Context(), user), true
}

func (s *Server) handleQuizSnapshot(w http.ResponseWriter, r *http.Request) {
	e, ok := s.engine(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, e.Snapshot())
}

func (s *Server) handleQuizStart(w http.ResponseWriter, r *http.Request) {
	e, ok := s.engine(w, r)
	if !ok {
		return
	}
	var req struct {
		Level int `json:"level"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	writeQuizResult(w, e, e.Start(req.Level))
}

func (s *Server) handleQuizAnswer(w http.ResponseWriter, r *http.Request) {
	e, ok := s.engine(w, r)
	if !ok {
		return
	}
	var req struct {
		Option int `json:"option"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	writeQuizResult(w, e, e.Answer(req.Option))
}

func (s *Server) handleQuizAdvance(w http.ResponseWriter, r *http.Request) {
	e, ok := s.engine(w, r)
	if !ok {
		return
	}
	writeQuizResult(w, e, e.Advance(r.Context()))
}

func (s *Server) handleQuizTryAgain(w http.ResponseWriter, r *http.Request) {
	e, ok := s.engine(w, r)
	if !ok {
		return
	}
	writeQuizResult(w, e, e.TryAgain())
}

func (s *Server) handleQuizNextLevel(w http.ResponseWriter, r *http.Request) {
	e, ok := s.engine(w, r)
	if !ok {
		return
	}
	writeQuizResult(w, e, e.NextLevel())
}

func (s *Server) handleQuizMenu(w http.ResponseWriter, r *http.Request) {
	e, ok := s.engine(w, r)
	if !ok {
		return
	}
	e.Menu()
	writeJSON(w, http.StatusOK, e.Snapshot())
}

func (s *Server) handleQuizReset(w http.ResponseWriter, r *http.Request) {
	e, ok := s.engine(w, r)
	if !ok {
		return
	}
	var req struct {
		Confirm bool `json:"confirm"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	writeQuizResult(w, e, e.Reset(r.Context(), req.Confirm))
}

func (s *Server) handleQuizCertificate(w http.ResponseWriter, r *http.Request) {
	e, ok := s.engine(w, r)
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name"`
		Job  string `json:"job"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if !e.Completed() {
		writeError(w, http.StatusConflict, "all levels must be completed first")
		return
	}

	var buf bytes.Buffer
	err := s.cert.Render(&buf, certificate.Details{
		Name: req.Name,
		Job:  req.Job,
		Date: time.Now(),
	})
	if errors.Is(err, certificate.ErrNameRequired) {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if err != nil {
		slog.Error("failed to render certificate", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to render certificate")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="`+certificate.Filename(req.Name)+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// writeQuizResult maps engine errors to HTTP statuses and answers successful
// operations with the fresh snapshot.
func writeQuizResult(w http.ResponseWriter, e *quiz.Engine, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, e.Snapshot())
	case errors.Is(err, quiz.ErrUnknownLevel):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, quiz.ErrInvalidOption),
		errors.Is(err, quiz.ErrConfirmRequired):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, quiz.ErrLevelLocked),
		errors.Is(err, quiz.ErrNotPlaying),
		errors.Is(err, quiz.ErrNotAnswered),
		errors.Is(err, quiz.ErrNotComplete):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
