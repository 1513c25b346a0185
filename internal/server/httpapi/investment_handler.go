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

type investmentRequest struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	InvestedAt string  `json:"invested_at"`
}

func (h *Handler) handleListInvestments(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	list, err := h.investments.List(r.Context(), claims.Subject)
	if err != nil {
		h.logger.Error(r.Context(), "list investments failed", "error", err.Error())
		writeFailure(w, http.StatusInternalServerError, "error while listing investments")
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleCreateInvestment(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req investmentRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)
	if req.Name == "" || req.Category == "" || req.Amount <= 0 {
		writeFailure(w, http.StatusBadRequest, "name, category, and a positive amount are required")
		return
	}

	investedAt := time.Now()
	if req.InvestedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.InvestedAt)
		if err != nil {
			writeFailure(w, http.StatusBadRequest, "invested_at must be RFC3339")
			return
		}
		investedAt = parsed
	}

	inv, err := h.investments.Add(r.Context(), claims.Subject, req.Name, req.Category, req.Amount, investedAt)
	if err != nil {
		h.logger.Error(r.Context(), "create investment failed", "error", err.Error())
		writeFailure(w, http.StatusInternalServerError, "error while creating investment")
		return
	}

	writeJSON(w, http.StatusCreated, inv)
}

func (h *Handler) handleDeleteInvestment(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.investments.Remove(r.Context(), claims.Subject, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeFailure(w, http.StatusNotFound, "investment not found")
			return
		}
		h.logger.Error(r.Context(), "delete investment failed", "error", err.Error())
		writeFailure(w, http.StatusInternalServerError, "error while deleting investment")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Success: true})
}
