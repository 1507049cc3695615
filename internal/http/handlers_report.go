package http

import (
	"log/slog"
	"net/http"

	"fintrack/internal/core"
)

// handleSummary derives all report data from the full transaction
// list. Nothing is cached or maintained incrementally; every request
// recomputes from the store's date-descending order, which fixes the
// first-seen grouping of the chart datasets.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	txns, err := s.store.ListAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Summary list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load transactions")
		return
	}
	writeJSON(w, http.StatusOK, core.Summarize(txns))
}
