package handler

import (
	"encoding/json"
	"net/http"

	"stockroom/internal/model"
	"stockroom/internal/service"

	"github.com/rs/zerolog"
)

// StockHandler handles the stock-mutation endpoints.
type StockHandler struct {
	service service.InventoryService
	logger  zerolog.Logger
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(service service.InventoryService, logger zerolog.Logger) *StockHandler {
	return &StockHandler{
		service: service,
		logger:  logger.With().Str("handler", "stock").Logger(),
	}
}

// adjustResponse returns the product after the mutation together with the
// audit entry that recorded it.
type adjustResponse struct {
	Product     *model.Product          `json:"product"`
	Transaction *model.StockTransaction `json:"transaction"`
}

// Adjust handles POST /api/products/{id}/adjust.
func (h *StockHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed, "invalid product ID", h.logger)
		return
	}

	var req model.AdjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	if req.Type == "" {
		req.Type = model.TxAdjustment
	}

	product, transaction, err := h.service.AdjustStock(r.Context(), id, &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, adjustResponse{Product: product, Transaction: transaction})
}

// Sale handles POST /api/products/{id}/sale.
func (h *StockHandler) Sale(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed, "invalid product ID", h.logger)
		return
	}

	var req model.QuickSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	product, transaction, err := h.service.QuickSale(r.Context(), id, req.Quantity)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, adjustResponse{Product: product, Transaction: transaction})
}
