package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/finledger/finledger/internal/common"
	"github.com/gorilla/mux"
)

type expenseRequest struct {
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	SpentAt  string  `json:"spent_at"`
}

func (h *Handler) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	list, err := h.expenses.List(r.Context(), claims.Subject)
	if err != nil {
		h.logger.Error(r.Context(), "list expenses failed", "error", err.Error())
		writeFailure(w, http.StatusInternalServerError, "error while listing expenses")
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req expenseRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Category = strings.TrimSpace(req.Category)
	if req.Title == "" || req.Category == "" || req.Amount <= 0 {
		writeFailure(w, http.StatusBadRequest, "title, category, and a positive amount are required")
		return
	}

	spentAt := time.Now()
	if req.SpentAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.SpentAt)
		if err != nil {
			writeFailure(w, http.StatusBadRequest, "spent_at must be RFC3339")
			return
		}
		spentAt = parsed
	}

	e, err := h.expenses.Add(r.Context(), claims.Subject, req.Title, req.Amount, req.Category, spentAt)
	if err != nil {
		h.logger.Error(r.Context(), "create expense failed", "error", err.Error())
		writeFailure(w, http.StatusInternalServerError, "error while creating expense")
		return
	}

	writeJSON(w, http.StatusCreated, e)
}

func (h *Handler) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.expenses.Remove(r.Context(), claims.Subject, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeFailure(w, http.StatusNotFound, "expense not found")
			return
		}
		h.logger.Error(r.Context(), "delete expense failed", "error", err.Error())
		writeFailure(w, http.StatusInternalServerError, "error while deleting expense")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Success: true})
}
