// Package http provides HTTP handlers for password checks.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atinyakov/pwncheck/internal/client/rangeapi"
	"github.com/atinyakov/pwncheck/internal/models"
	"github.com/atinyakov/pwncheck/internal/service"
)

// CheckService defines the operations required by the CheckHandler.
type CheckService interface {
	// CheckPassword looks the password up and returns its breach count.
	CheckPassword(ctx context.Context, password string) (models.LeakResult, error)
	// Stats returns audit log totals.
	Stats(ctx context.Context) (models.Stats, error)
}

// CheckHandler handles HTTP requests for password checks.
type CheckHandler struct {
	CheckService CheckService
}

// CheckRequest is the JSON payload for POST /api/check.
type CheckRequest struct {
	// Password is required but may be empty.
	Password *string `json:"password"`
}

// CheckResponse is the JSON reply for POST /api/check.
type CheckResponse struct {
	Pwned bool  `json:"pwned"`
	Count int64 `json:"count"`
}

// Check handles POST /api/check.
func (h *CheckHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password == nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	res, err := h.CheckService.CheckPassword(r.Context(), *req.Password)
	if err != nil {
		writeLookupError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(CheckResponse{Pwned: res.Pwned(), Count: res.Count})
}

// Stats handles GET /api/stats.
func (h *CheckHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.CheckService.Stats(r.Context())
	if errors.Is(err, service.ErrNoAuditLog) {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(st)
}

// writeLookupError maps range lookup failures to 502 and anything else to 500.
func writeLookupError(w http.ResponseWriter, err error) {
	var qerr *rangeapi.RemoteQueryError
	var perr *rangeapi.ParseError
	switch {
	case errors.As(err, &qerr), errors.As(err, &perr):
		http.Error(w, "range lookup failed", http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
