package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stockroom/internal/ledger"
	"stockroom/internal/model"
	"stockroom/internal/query"
	"stockroom/internal/repository"
	"stockroom/internal/validation"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
	now         func() time.Time
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
		now:         time.Now,
	}
}

// List retrieves products filtered and sorted for display.
func (s *productService) List(ctx context.Context, search, category, sortKey string) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	products = query.Filter(products, search, category)
	products = query.Sort(products, sortKey)

	s.logger.Debug().
		Int("count", len(products)).
		Str("search", search).
		Str("category", category).
		Str("sort", sortKey).
		Msg("listed products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create validates and stores a new product.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		s.logger.Warn().Err(err).Msg("product create rejected")
		return nil, err
	}

	existing, err := s.productRepo.GetBySKU(ctx, req.SKU)
	if err != nil {
		return nil, fmt.Errorf("failed to check SKU: %w", err)
	}
	if existing != nil {
		s.logger.Warn().Str("sku", req.SKU).Msg("duplicate SKU")
		return nil, model.ErrDuplicateSKU
	}

	minStock := model.DefaultMinStock
	if req.MinStock != nil {
		minStock = *req.MinStock
	}

	product := &model.Product{
		Name:        strings.TrimSpace(req.Name),
		SKU:         strings.TrimSpace(req.SKU),
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		MinStock:    minStock,
		LastUpdated: s.now(),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("sku", product.SKU).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().
		Int("product_id", product.ID).
		Str("sku", product.SKU).
		Msg("product created")

	return product, nil
}

// Update validates and replaces an existing product's fields. A quantity set
// through this path does not write a stock transaction; audited changes go
// through InventoryService.AdjustStock.
func (s *productService) Update(ctx context.Context, id int, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		s.logger.Warn().Err(err).Int("product_id", id).Msg("product update rejected")
		return nil, err
	}

	existing, err := s.productRepo.GetBySKU(ctx, req.SKU)
	if err != nil {
		return nil, fmt.Errorf("failed to check SKU: %w", err)
	}
	if existing != nil && existing.ID != id {
		s.logger.Warn().Str("sku", req.SKU).Int("product_id", id).Msg("duplicate SKU")
		return nil, model.ErrDuplicateSKU
	}

	minStock := model.DefaultMinStock
	if req.MinStock != nil {
		minStock = *req.MinStock
	}

	product := &model.Product{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		SKU:         strings.TrimSpace(req.SKU),
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		MinStock:    minStock,
		LastUpdated: s.now(),
	}

	updated, err := s.productRepo.Update(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to update product")
		return nil, err
	}
	if !updated {
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Int("product_id", id).Msg("product updated")
	return product, nil
}

// Delete removes a product. The audit trail keeps its transactions.
func (s *productService) Delete(ctx context.Context, id int) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if !deleted {
		return model.ErrProductNotFound
	}

	s.logger.Info().Int("product_id", id).Msg("product deleted")
	return nil
}

// Stats computes the dashboard aggregate statistics.
func (s *productService) Stats(ctx context.Context) (ledger.Summary, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load products for stats")
		return ledger.Summary{}, fmt.Errorf("failed to get products: %w", err)
	}

	return ledger.Aggregates(products), nil
}

// CountByCategory returns product counts per category name.
func (s *productService) CountByCategory(ctx context.Context) (map[string]int, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load products for category counts")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	return ledger.CountByCategory(products), nil
}

// validateProductRequest turns field-level validation failures into a single
// domain error with an inline-reportable message.
func validateProductRequest(req *model.ProductRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeValidationFailed, "request body is required")
	}

	fieldErrors := validation.Struct(req)
	if len(fieldErrors) == 0 {
		return nil
	}

	parts := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		parts = append(parts, fmt.Sprintf("%s %s", fe.Field, fe.Message))
	}
	return model.NewDomainError(model.ErrCodeValidationFailed, strings.Join(parts, "; "))
}
