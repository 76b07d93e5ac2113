package router

import (
	"net/http"

	"stockroom/internal/handler"
	"stockroom/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers the router wires up.
type Handlers struct {
	Product     *handler.ProductHandler
	Stock       *handler.StockHandler
	Transaction *handler.TransactionHandler
	Stats       *handler.StatsHandler
	Category    *handler.CategoryHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, apiKey string, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("GET /api/products", h.Product.List)
	mux.HandleFunc("POST /api/products", h.Product.Create)
	mux.HandleFunc("GET /api/products/{id}", h.Product.GetByID)
	mux.HandleFunc("PUT /api/products/{id}", h.Product.Update)
	mux.HandleFunc("DELETE /api/products/{id}", h.Product.Delete)

	mux.HandleFunc("POST /api/products/{id}/adjust", h.Stock.Adjust)
	mux.HandleFunc("POST /api/products/{id}/sale", h.Stock.Sale)

	mux.HandleFunc("GET /api/transactions", h.Transaction.List)
	mux.HandleFunc("GET /api/transactions/recent", h.Transaction.Recent)

	mux.HandleFunc("GET /api/stats", h.Stats.Summary)
	mux.HandleFunc("GET /api/stats/categories", h.Stats.Categories)

	mux.HandleFunc("GET /api/categories", h.Category.List)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS -> APIKeyAuth
	var hnd http.Handler = mux
	hnd = middleware.APIKeyAuth(apiKey, logger)(hnd)
	hnd = middleware.CORS(hnd)
	hnd = middleware.Logging(logger)(hnd)
	hnd = middleware.RequestID(hnd)
	hnd = middleware.Recovery(logger)(hnd)

	return hnd
}
