// CLAUDE:SUMMARY HTTP surface: chi router, {success:...} JSON envelopes, sentinel-error to status-code mapping.
// Package server exposes the audit and screenshot services over HTTP.
// Every response is a {"success": bool, ...} JSON envelope; sentinel errors
// from the services map to 400 (validation), 404 (not found) and 500
// (upstream/unexpected), never to raw stack traces.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hazyhaar/shopscan/audit"
	"github.com/hazyhaar/shopscan/capture"
	"github.com/hazyhaar/shopscan/shield"
)

// maxJSONBody caps request bodies on the JSON endpoints.
const maxJSONBody = 64 * 1024

// Server wires the services to the router.
type Server struct {
	audits *audit.Service
	store  *audit.Store
	shots  *capture.Service
	logger *slog.Logger
}

// New assembles the HTTP handler.
func New(audits *audit.Service, store *audit.Store, shots *capture.Service, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{audits: audits, store: store, shots: shots, logger: logger}

	r := chi.NewRouter()
	r.Use(shield.SecurityHeaders(shield.DefaultHeaders()))
	r.Use(shield.TraceID)
	r.Use(shield.MaxBody(maxJSONBody))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "status": "ok"})
	})

	r.Route("/api/screenshots", func(r chi.Router) {
		r.Get("/list", s.handleListScreenshots)
		r.Post("/capture", s.handleCapture)
		r.Get("/{filename}/metadata", s.handleScreenshotMetadata)
		r.Delete("/{filename}", s.handleDeleteScreenshot)
	})

	r.Post("/api/audit", s.handleRunAudit)
	r.Get("/api/audits", s.handleListAudits)
	r.Get("/api/audits/{id}", s.handleGetAudit)

	return r
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// writeError maps service sentinels to status codes. Unexpected errors get
// a generic message so internals never leak into responses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var code int
	msg := err.Error()
	switch {
	case errors.Is(err, capture.ErrInvalidFilename), errors.Is(err, audit.ErrInvalidURL):
		code = http.StatusBadRequest
	case errors.Is(err, capture.ErrNotFound), errors.Is(err, audit.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, audit.ErrUpstream), errors.Is(err, capture.ErrBrowserUnavailable):
		code = http.StatusInternalServerError
	default:
		code = http.StatusInternalServerError
		msg = "internal error"
	}
	if code == http.StatusInternalServerError {
		shield.GetLogger(r.Context()).Error("request failed", "error", err)
	}
	writeJSON(w, code, map[string]any{"success": false, "error": msg})
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// --- Screenshots ---

func (s *Server) handleListScreenshots(w http.ResponseWriter, r *http.Request) {
	list, err := s.shots.List()
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "screenshots": list})
}

type captureRequest struct {
	URL      string           `json:"url"`
	FullPage bool             `json:"fullPage"`
	Viewport capture.Viewport `json:"viewport"`
	WaitFor  int              `json:"waitFor"` // milliseconds
}

func (s *Server) handleCapture(w http.ResponseWriter, r *http.Request) {
	var req captureRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "invalid request body"})
		return
	}
	if req.URL == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "url is required"})
		return
	}
	res, err := s.shots.Capture(r.Context(), capture.Request{
		URL:      req.URL,
		FullPage: req.FullPage,
		Viewport: req.Viewport,
		WaitFor:  time.Duration(req.WaitFor) * time.Millisecond,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "screenshot": res})
}

func (s *Server) handleScreenshotMetadata(w http.ResponseWriter, r *http.Request) {
	md, err := s.shots.Metadata(chi.URLParam(r, "filename"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "metadata": md})
}

func (s *Server) handleDeleteScreenshot(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")
	if err := s.shots.Delete(name); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "deleted": name})
}

// --- Audits ---

type auditRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleRunAudit(w http.ResponseWriter, r *http.Request) {
	var req auditRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "invalid request body"})
		return
	}
	rep, err := s.audits.Run(r.Context(), req.URL)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "audit": rep})
}

func (s *Server) handleListAudits(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		// Bad limits fall back to the store default rather than erroring.
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	sums, err := s.store.Recent(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "audits": sums})
}

func (s *Server) handleGetAudit(w http.ResponseWriter, r *http.Request) {
	rep, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "audit": rep})
}
