package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/ashrofu/kssm-hub/internal/curriculum"
	"github.com/ashrofu/kssm-hub/internal/explorer"
)

func (s *Server) handleForms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Forms())
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.PathValue("form"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "form must be a number")
		return
	}
	f, ok := s.store.FormByNumber(n)
	if !ok {
		writeError(w, http.StatusNotFound, "no such form")
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (s *Server) handleReference(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Reference())
}

func (s *Server) handleStandards(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.PathValue("form"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "form must be a number")
		return
	}
	fs, ok := s.store.Standards(n)
	if !ok {
		writeError(w, http.StatusNotFound, "no standards hierarchy for this form")
		return
	}
	writeJSON(w, http.StatusOK, fs)
}

func (s *Server) handleExplorerLayout(w http.ResponseWriter, r *http.Request) {
	sel := explorer.NewSelection()
	if !decodeJSON(w, r, &sel) {
		return
	}
	if sel.Mode == "" {
		sel.Mode = explorer.CompareForms
	}
	switch sel.Mode {
	case explorer.CompareForms, explorer.CompareSkills, explorer.CompareBoth:
	default:
		writeError(w, http.StatusBadRequest, "unknown compare mode")
		return
	}
	for _, skill := range sel.Skills {
		if _, ok := curriculum.ParseSkill(string(skill)); !ok {
			writeError(w, http.StatusBadRequest, "unknown skill")
			return
		}
	}
	writeJSON(w, http.StatusOK, explorer.Compose(s.store, sel))
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	tab := explorer.BrowseTab(r.URL.Query().Get("tab"))
	if !explorer.ValidBrowseTab(tab) {
		writeError(w, http.StatusBadRequest, "unknown tab")
		return
	}
	forms, err := parseForms(r.URL.Query().Get("forms"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "forms must be a comma-separated list of numbers")
		return
	}
	writeJSON(w, http.StatusOK, explorer.BrowseCompare(s.store, forms, tab))
}

// parseForms parses a comma-separated form list such as "1,3".
func parseForms(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	forms := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		forms = append(forms, n)
	}
	return forms, nil
}

func (s *Server) handleExportSection(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.PathValue("form"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "form must be a number")
		return
	}
	f, ok := s.store.FormByNumber(n)
	if !ok {
		writeError(w, http.StatusNotFound, "no such form")
		return
	}

	var text string
	switch r.PathValue("section") {
	case "grammar":
		text = curriculum.GrammarText(f)
	case "vocabulary":
		text = curriculum.VocabularyText(f)
	case "texttypes":
		text = curriculum.TextTypesText(f)
	default:
		writeError(w, http.StatusNotFound, "unknown export section")
		return
	}
	writeText(w, text)
}

func (s *Server) handleExportStandards(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.PathValue("form"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "form must be a number")
		return
	}
	f, ok := s.store.FormByNumber(n)
	if !ok {
		writeError(w, http.StatusNotFound, "no such form")
		return
	}
	skill, ok := curriculum.ParseSkill(r.PathValue("skill"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown skill")
		return
	}
	writeText(w, curriculum.StandardsWithPerformanceText(f, skill))
}

func (s *Server) handleExportReference(w http.ResponseWriter, r *http.Request) {
	ref := s.store.Reference()
	var text string
	switch r.PathValue("section") {
	case "pupilsprofile":
		text = curriculum.PupilsProfileText(ref)
	case "hots":
		text = curriculum.HOTSText(ref)
	case "crosscurricular":
		text = curriculum.CrossCurricularText(ref)
	default:
		writeError(w, http.StatusNotFound, "unknown reference section")
		return
	}
	writeText(w, text)
}

func (s *Server) handleExportWorkbook(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := curriculum.WriteWorkbook(&buf, s.store); err != nil {
		slog.Error("failed to build workbook", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to build workbook")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="kssm-english-curriculum.xlsx"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func writeText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}
