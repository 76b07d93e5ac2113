package handler

import (
	"net/http"

	"stockroom/internal/model"
	"stockroom/internal/service"

	"github.com/rs/zerolog"
)

// TransactionHandler handles audit-trail HTTP requests.
type TransactionHandler struct {
	service service.TransactionService
	logger  zerolog.Logger
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(service service.TransactionService, logger zerolog.Logger) *TransactionHandler {
	return &TransactionHandler{
		service: service,
		logger:  logger.With().Str("handler", "transaction").Logger(),
	}
}

// List handles GET /api/transactions with optional productId and limit.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	productID, err := queryInt(r, "productId", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed, "invalid productId parameter", h.logger)
		return
	}

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed, "invalid limit parameter", h.logger)
		return
	}

	transactions, err := h.service.List(r.Context(), productID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve transactions", h.logger)
		return
	}

	if transactions == nil {
		transactions = []model.StockTransaction{}
	}
	writeJSON(w, http.StatusOK, transactions)
}

// Recent handles GET /api/transactions/recent with an optional limit.
func (h *TransactionHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed, "invalid limit parameter", h.logger)
		return
	}

	transactions, err := h.service.Recent(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve transactions", h.logger)
		return
	}

	if transactions == nil {
		transactions = []model.StockTransaction{}
	}
	writeJSON(w, http.StatusOK, transactions)
}
