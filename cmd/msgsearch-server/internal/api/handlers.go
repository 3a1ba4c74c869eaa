// Package api provides HTTP handlers for the msgsearch server REST API.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	msgsearch "github.com/coregx/msgsearch"
	"github.com/coregx/msgsearch/model"
)

// Handler holds dependencies for API handlers.
type Handler struct {
	service *msgsearch.Service
	logger  msgsearch.Logger
}

// NewHandler creates a new API handler.
func NewHandler(service *msgsearch.Service, logger msgsearch.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// HealthResponse represents the health endpoint body.
type HealthResponse struct {
	Status          string `json:"status"`
	Ready           bool   `json:"ready"`
	IndexedMessages int    `json:"indexed_messages"`
}

// HandleSearch handles GET /search?q=...&page=1&page_size=10
//
// Responds 200 with the result page, 400 on invalid parameters, and 503
// while the index is not ready. A query with zero matches is a success
// response with total=0.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.respondError(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	q := r.URL.Query().Get("q")
	if q == "" {
		h.respondError(w, http.StatusBadRequest, "q is required", "VALIDATION_ERROR")
		return
	}

	page, ok := h.intParam(w, r, "page", model.DefaultPage)
	if !ok {
		return
	}
	pageSize, ok := h.intParam(w, r, "page_size", model.DefaultPageSize)
	if !ok {
		return
	}

	resp, err := h.service.Search(r.Context(), model.SearchRequest{
		Query:    q,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		switch {
		case msgsearch.IsValidation(err):
			h.respondError(w, http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
		case msgsearch.IsNotReady(err):
			h.respondError(w, http.StatusServiceUnavailable, "Index not ready. Try again shortly.", "NOT_READY")
		default:
			h.logger.Errorf("search failed: %v", err)
			h.respondError(w, http.StatusInternalServerError, "Search failed", "SEARCH_ERROR")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// HandleHealth handles GET /health
//
// Reports readiness truthfully: 200 once the index is built, 503 before the
// build completes or after it fails.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.respondError(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	health := h.service.Health()
	resp := HealthResponse{
		Status:          "ok",
		Ready:           health.Ready,
		IndexedMessages: health.IndexedMessages,
	}
	status := http.StatusOK
	if !health.Ready {
		resp.Status = "unavailable"
		status = http.StatusServiceUnavailable
	}
	h.respondJSON(w, status, resp)
}

// HandleRoot handles GET /
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.respondError(w, http.StatusNotFound, "Not found", "")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": "msgsearch is running. Try /health or /search?q=...",
	})
}

// intParam parses an optional positive integer query parameter. A missing
// parameter yields the default; a non-integer value is a client error.
// Range checks are left to the service so that bounds live in one place.
func (h *Handler) intParam(w http.ResponseWriter, r *http.Request, name string, defaultValue int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, true
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, name+" must be an integer", "VALIDATION_ERROR")
		return 0, false
	}
	return val, true
}

// respondJSON writes a JSON response.
func (h *Handler) respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Errorf("failed to encode response: %v", err)
	}
}

// respondError writes a JSON error response.
func (h *Handler) respondError(w http.ResponseWriter, status int, message, code string) {
	h.respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Code:    code,
		Message: message,
	})
}
