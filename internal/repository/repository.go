package repository

import (
	"context"
	"time"

	"stockroom/internal/model"

	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves all products ordered by name.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when the
	// product does not exist.
	GetByID(ctx context.Context, id int) (*model.Product, error)

	// GetBySKU retrieves a single product by its SKU. Returns nil when no
	// product carries that SKU.
	GetBySKU(ctx context.Context, sku string) (*model.Product, error)

	// Create inserts a new product and fills in its generated ID.
	Create(ctx context.Context, p *model.Product) error

	// Update replaces all mutable fields of an existing product. Returns
	// false when the product does not exist.
	Update(ctx context.Context, p *model.Product) (bool, error)

	// Delete removes a product. Returns false when the product does not
	// exist. Transactions referencing the product are left in place.
	Delete(ctx context.Context, id int) (bool, error)

	// GetForUpdate retrieves a product inside the given transaction with a
	// row lock, so a stock mutation cannot interleave with another writer.
	GetForUpdate(ctx context.Context, tx pgx.Tx, id int) (*model.Product, error)

	// UpdateQuantity sets the product quantity and last-updated timestamp
	// within the provided transaction.
	UpdateQuantity(ctx context.Context, tx pgx.Tx, id, quantity int, updatedAt time.Time) error
}

// TransactionRepository defines the interface for the stock audit trail.
type TransactionRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// Create inserts a stock transaction within the provided database
	// transaction and fills in its generated ID.
	Create(ctx context.Context, tx pgx.Tx, st *model.StockTransaction) error

	// GetAll retrieves transactions newest first, up to limit.
	GetAll(ctx context.Context, limit int) ([]model.StockTransaction, error)

	// GetByProductID retrieves transactions for one product, newest first.
	GetByProductID(ctx context.Context, productID, limit int) ([]model.StockTransaction, error)
}

// CategoryRepository defines the interface for the category provider.
type CategoryRepository interface {
	// GetAll retrieves all categories ordered by name.
	GetAll(ctx context.Context) ([]model.Category, error)
}
