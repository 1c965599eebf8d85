package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"GreekStem/internal/analysis"
)

// Handler holds HTTP handlers for the stemming API.
type Handler struct {
	svc    *Service
	logger *slog.Logger
}

// NewHandler creates a new Handler backed by the given Service.
func NewHandler(svc *Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

// RegisterRoutes registers all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /stem", h.handleStem)
	mux.HandleFunc("POST /analyze", h.handleAnalyze)
	mux.HandleFunc("GET /analyzers", h.handleListAnalyzers)
}

// --- Stemming ---

type stemRequest struct {
	Words []string `json:"words"`
	Raw   bool     `json:"raw"`
}

func (h *Handler) handleStem(w http.ResponseWriter, r *http.Request) {
	var req stemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	start := time.Now()
	stems, err := h.svc.Stem(req.Words, req.Raw)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoWords):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrTooManyWords):
			writeError(w, http.StatusRequestEntityTooLarge, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	h.logger.Debug("stemmed words",
		"request_id", RequestID(r.Context()),
		"count", len(stems),
		"took", time.Since(start),
	)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"stems": stems,
	})
}

// --- Analysis ---

type analyzeRequest struct {
	Analyzer string `json:"analyzer"`
	Text     string `json:"text"`
}

type tokenResponse struct {
	Term      string `json:"term"`
	Position  int    `json:"position"`
	StartByte int    `json:"start_byte"`
	EndByte   int    `json:"end_byte"`
	Keyword   bool   `json:"keyword,omitempty"`
}

func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}
	if req.Analyzer == "" {
		req.Analyzer = analysis.AnalyzerGreek
	}

	tokens, err := h.svc.Analyze(req.Analyzer, req.Text)
	if err != nil {
		if errors.Is(err, ErrAnalyzerNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]tokenResponse, len(tokens))
	for i, t := range tokens {
		out[i] = tokenResponse{
			Term:      t.Term,
			Position:  t.Position,
			StartByte: t.StartByte,
			EndByte:   t.EndByte,
			Keyword:   t.Keyword,
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"analyzer": req.Analyzer,
		"tokens":   out,
	})
}

func (h *Handler) handleListAnalyzers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"analyzers": h.svc.Analyzers(),
	})
}
