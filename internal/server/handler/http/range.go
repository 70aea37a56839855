package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/atinyakov/pwncheck/internal/hashprefix"
	"github.com/atinyakov/pwncheck/internal/models"
)

// RangeLookup fetches candidates for a digest prefix.
type RangeLookup interface {
	Lookup(ctx context.Context, prefix hashprefix.Prefix) ([]models.Candidate, error)
}

// RangeHandler proxies range queries for callers that hash locally and never
// send the password to this server.
type RangeHandler struct {
	Lookup RangeLookup
}

// Range handles GET /api/range/{prefix}. The prefix is upper-cased and must
// then be exactly five hex characters.
func (h *RangeHandler) Range(w http.ResponseWriter, r *http.Request) {
	prefix := strings.ToUpper(chi.URLParam(r, "prefix"))
	if !hashprefix.ValidPrefix(prefix) {
		http.Error(w, "prefix must be 5 hex characters", http.StatusBadRequest)
		return
	}

	candidates, err := h.Lookup.Lookup(r.Context(), hashprefix.Prefix(prefix))
	if err != nil {
		writeLookupError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	for _, c := range candidates {
		_, _ = fmt.Fprintf(w, "%s:%d\r\n", c.Suffix, c.Count)
	}
}
