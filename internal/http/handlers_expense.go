package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"spend/internal/core"
	"spend/internal/store"
)

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	records, err := s.expenses.ListExpenses(r.Context(), filterFromQuery(r))
	if err != nil {
		slog.ErrorContext(r.Context(), "List expenses failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if records == nil {
		records = []core.Expense{}
	}
	writeList(w, records)
}

func (s *Server) handleGetExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid expense id")
		return
	}
	expense, err := s.getter.GetExpense(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Expense not found")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Get expense failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeSuccess(w, http.StatusOK, expense)
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	expense, ok := s.decodeExpense(w, r)
	if !ok {
		return
	}

	created, err := s.writer.CreateExpense(r.Context(), expense)
	if err != nil {
		slog.ErrorContext(r.Context(), "Create expense failed",
			"error", err, "amount_cents", expense.Amount.Cents, "category", expense.Category)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.summaryCache.Purge()
	writeJSON(w, http.StatusCreated, envelope{
		Success: true,
		Message: "Expense added successfully",
		Data:    created,
	})
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid expense id")
		return
	}
	expense, ok := s.decodeExpense(w, r)
	if !ok {
		return
	}

	updated, err := s.writer.UpdateExpense(r.Context(), id, expense)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Expense not found")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Update expense failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.summaryCache.Purge()
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Expense updated successfully",
		Data:    updated,
	})
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid expense id")
		return
	}

	err := s.writer.DeleteExpense(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Expense not found")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Delete expense failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.summaryCache.Purge()
	writeSuccessMessage(w, http.StatusOK, "Expense deleted successfully")
}

// decodeExpense reads and validates the request body, writing the error
// response itself when the body is unusable.
func (s *Server) decodeExpense(w http.ResponseWriter, r *http.Request) (core.Expense, bool) {
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return core.Expense{}, false
	}
	expense, verrs := req.draft().Validate()
	if len(verrs) > 0 {
		slog.WarnContext(r.Context(), "Expense validation failed", "errors", verrs)
		writeValidationErrors(w, verrs)
		return core.Expense{}, false
	}
	return expense, true
}
