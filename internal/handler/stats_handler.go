package handler

import (
	"net/http"

	"stockroom/internal/model"
	"stockroom/internal/service"

	"github.com/rs/zerolog"
)

// StatsHandler serves the dashboard aggregate endpoints.
type StatsHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(service service.ProductService, logger zerolog.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		logger:  logger.With().Str("handler", "stats").Logger(),
	}
}

// Summary handles GET /api/stats.
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to compute statistics", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Categories handles GET /api/stats/categories (sidebar counts).
func (h *StatsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.CountByCategory(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to compute category counts", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, counts)
}
