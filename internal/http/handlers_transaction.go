package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"fintrack/internal/core"
	"fintrack/internal/events"

	"github.com/go-chi/chi/v5"
)

// createPayload mirrors the create request body. Amount is a pointer
// so a missing field can be told apart from an explicit zero.
type createPayload struct {
	Amount      *float64  `json:"amount"`
	Description string    `json:"description"`
	Date        core.Date `json:"date"`
	Category    string    `json:"category"`
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txns, err := s.store.ListAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List transactions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load transactions")
		return
	}
	writeJSON(w, http.StatusOK, txns)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var payload createPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		slog.ErrorContext(r.Context(), "Decode create payload failed", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	txn, err := core.NewTransaction(payload.Amount, payload.Description, payload.Date, payload.Category)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	created, err := s.store.Insert(r.Context(), txn)
	if err != nil {
		slog.ErrorContext(r.Context(), "Insert transaction failed",
			"error", err,
			"description", txn.Description,
			"amount", txn.Amount)
		writeError(w, http.StatusInternalServerError, "Failed to save transaction")
		return
	}

	s.publish(r.Context(), events.ActionCreated, created.ID)
	writeJSON(w, http.StatusOK, created)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	// Pre-flight check, separate from the store-level not-found.
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Transaction ID is required")
		return
	}

	var patch core.TransactionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		// A malformed body yields a generic server error rather than a
		// structured validation report; a recognized weak point of the
		// contract, kept as-is.
		slog.ErrorContext(r.Context(), "Decode update payload failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to update transaction")
		return
	}

	updated, err := s.store.Update(r.Context(), id, patch)
	if errors.Is(err, core.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Transaction not found")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Update transaction failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to update transaction")
		return
	}

	s.publish(r.Context(), events.ActionUpdated, id)
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// Idempotent: deleting an id that never existed still succeeds.
	if err := s.store.Delete(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Delete transaction failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}

	s.publish(r.Context(), events.ActionDeleted, id)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
