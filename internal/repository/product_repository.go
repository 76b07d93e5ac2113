package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stockroom/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

const productColumns = "id, name, sku, category, price, quantity, min_stock, last_updated"

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.SKU, &p.Category, &p.Price, &p.Quantity, &p.MinStock, &p.LastUpdated)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetAll retrieves all products ordered by name.
func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id int) (*model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1
	`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return p, nil
}

// GetBySKU retrieves a single product by its SKU.
func (r *productRepository) GetBySKU(ctx context.Context, sku string) (*model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE sku = $1
	`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("sku", sku).Msg("failed to query product by SKU")
		return nil, fmt.Errorf("failed to query product by SKU: %w", err)
	}

	return p, nil
}

// Create inserts a new product and fills in its generated ID.
func (r *productRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
		INSERT INTO products (name, sku, category, price, quantity, min_stock, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		p.Name, p.SKU, p.Category, p.Price, p.Quantity, p.MinStock, p.LastUpdated,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Warn().Str("sku", p.SKU).Msg("duplicate SKU on create")
			return model.ErrDuplicateSKU
		}
		r.logger.Error().Err(err).Str("sku", p.SKU).Msg("failed to create product")
		return fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Debug().Int("product_id", p.ID).Str("sku", p.SKU).Msg("product created")
	return nil
}

// Update replaces all mutable fields of an existing product.
func (r *productRepository) Update(ctx context.Context, p *model.Product) (bool, error) {
	query := `
		UPDATE products
		SET name = $2, sku = $3, category = $4, price = $5, quantity = $6,
		    min_stock = $7, last_updated = $8
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		p.ID, p.Name, p.SKU, p.Category, p.Price, p.Quantity, p.MinStock, p.LastUpdated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Warn().Str("sku", p.SKU).Msg("duplicate SKU on update")
			return false, model.ErrDuplicateSKU
		}
		r.logger.Error().Err(err).Int("product_id", p.ID).Msg("failed to update product")
		return false, fmt.Errorf("failed to update product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes a product. Transactions referencing it are kept as history.
func (r *productRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int("product_id", id).Msg("failed to delete product")
		return false, fmt.Errorf("failed to delete product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// GetForUpdate retrieves a product inside the given transaction with a row lock.
func (r *productRepository) GetForUpdate(ctx context.Context, tx pgx.Tx, id int) (*model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1
		FOR UPDATE
	`

	p, err := scanProduct(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int("product_id", id).Msg("product not found for update")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("product_id", id).Msg("failed to lock product row")
		return nil, fmt.Errorf("failed to lock product row: %w", err)
	}

	return p, nil
}

// UpdateQuantity sets the product quantity within the provided transaction.
func (r *productRepository) UpdateQuantity(ctx context.Context, tx pgx.Tx, id, quantity int, updatedAt time.Time) error {
	query := `
		UPDATE products
		SET quantity = $2, last_updated = $3
		WHERE id = $1
	`

	tag, err := tx.Exec(ctx, query, id, quantity, updatedAt)
	if err != nil {
		r.logger.Error().Err(err).Int("product_id", id).Msg("failed to update product quantity")
		return fmt.Errorf("failed to update product quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
