package service

import (
	"context"

	"stockroom/internal/ledger"
	"stockroom/internal/model"
)

// ProductService defines operations for product management.
type ProductService interface {
	// List retrieves products filtered by search text and category and
	// ordered by the given sort key.
	List(ctx context.Context, search, category, sortKey string) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int) (*model.Product, error)

	// Create validates and stores a new product.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// Update validates and replaces an existing product's fields.
	Update(ctx context.Context, id int, req *model.ProductRequest) (*model.Product, error)

	// Delete removes a product, keeping its transaction history.
	Delete(ctx context.Context, id int) error

	// Stats computes the dashboard aggregate statistics.
	Stats(ctx context.Context) (ledger.Summary, error)

	// CountByCategory returns product counts per category name.
	CountByCategory(ctx context.Context) (map[string]int, error)
}

// InventoryService owns the single stock-mutation path: every quantity
// change goes through it and produces exactly one audit transaction.
type InventoryService interface {
	// AdjustStock applies a signed quantity delta to a product and records
	// the matching stock transaction atomically.
	AdjustStock(ctx context.Context, productID int, req *model.AdjustStockRequest) (*model.Product, *model.StockTransaction, error)

	// QuickSale removes qty units as a sale with a standard reason.
	QuickSale(ctx context.Context, productID, qty int) (*model.Product, *model.StockTransaction, error)
}

// TransactionService defines read operations over the stock audit trail.
type TransactionService interface {
	// List retrieves transactions newest first. A productID of zero means
	// all products; limit falls back to the default page size.
	List(ctx context.Context, productID, limit int) ([]model.StockTransaction, error)

	// Recent retrieves the most recent transactions, default 10.
	Recent(ctx context.Context, limit int) ([]model.StockTransaction, error)
}

// CategoryService defines operations for the category provider.
type CategoryService interface {
	// List retrieves all categories.
	List(ctx context.Context) ([]model.Category, error)
}
