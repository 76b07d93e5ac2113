package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stockroom/internal/ledger"
	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/rs/zerolog"
)

// quickSaleReason is the audit reason recorded for dashboard quick sales.
const quickSaleReason = "Customer purchase"

// inventoryService implements InventoryService.
type inventoryService struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	logger          zerolog.Logger
	now             func() time.Time
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(
	productRepo repository.ProductRepository,
	transactionRepo repository.TransactionRepository,
	logger zerolog.Logger,
) InventoryService {
	return &inventoryService{
		productRepo:     productRepo,
		transactionRepo: transactionRepo,
		logger:          logger.With().Str("service", "inventory").Logger(),
		now:             time.Now,
	}
}

// AdjustStock applies a signed quantity delta to a product and records the
// matching stock transaction. Both writes happen in one database transaction
// with the product row locked, so the quantity and its audit entry cannot
// diverge and concurrent adjustments cannot interleave.
//
// A removal larger than the available quantity is rejected, never clamped:
// the service is the single mutation path and enforces the contract the
// dashboard forms preview.
func (s *inventoryService) AdjustStock(ctx context.Context, productID int, req *model.AdjustStockRequest) (*model.Product, *model.StockTransaction, error) {
	if err := s.validateAdjustment(req); err != nil {
		s.logger.Warn().Err(err).Int("product_id", productID).Msg("stock adjustment rejected")
		return nil, nil, err
	}

	tx, err := s.transactionRepo.BeginTx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback stock adjustment")
			}
		}
	}()

	product, err := s.productRepo.GetForUpdate(ctx, tx, productID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to adjust stock: %w", err)
	}
	if product == nil {
		err = model.ErrProductNotFound
		return nil, nil, err
	}

	if req.Quantity < 0 && -req.Quantity > product.Quantity {
		s.logger.Warn().
			Int("product_id", productID).
			Int("available", product.Quantity).
			Int("requested", -req.Quantity).
			Msg("removal exceeds available stock")
		err = model.ErrInsufficientStock
		return nil, nil, err
	}

	updated := ledger.ApplyDelta(*product, req.Quantity, s.now())

	if err = s.productRepo.UpdateQuantity(ctx, tx, productID, updated.Quantity, updated.LastUpdated); err != nil {
		return nil, nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	record := &model.StockTransaction{
		ProductID: productID,
		Type:      req.Type,
		Quantity:  req.Quantity,
		Reason:    req.Reason,
		Timestamp: updated.LastUpdated,
	}
	if err = s.transactionRepo.Create(ctx, tx, record); err != nil {
		return nil, nil, fmt.Errorf("failed to record stock transaction: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Int("product_id", productID).Msg("failed to commit stock adjustment")
		return nil, nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	s.logger.Info().
		Int("product_id", productID).
		Int("delta", req.Quantity).
		Str("type", string(req.Type)).
		Int("quantity", updated.Quantity).
		Str("status", string(ledger.Classify(updated.Quantity, updated.MinStock))).
		Msg("stock adjusted")

	return &updated, record, nil
}

// QuickSale removes qty units as a sale with the standard reason.
func (s *inventoryService) QuickSale(ctx context.Context, productID, qty int) (*model.Product, *model.StockTransaction, error) {
	if qty <= 0 {
		return nil, nil, model.ErrInvalidQuantity
	}

	return s.AdjustStock(ctx, productID, &model.AdjustStockRequest{
		Quantity: -qty,
		Type:     model.TxSale,
		Reason:   quickSaleReason,
	})
}

// validateAdjustment checks the request before any write is attempted.
func (s *inventoryService) validateAdjustment(req *model.AdjustStockRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeValidationFailed, "request body is required")
	}
	if !req.Type.Valid() {
		return model.ErrInvalidTransaction
	}
	if req.Quantity == 0 {
		return model.ErrInvalidQuantity
	}
	if strings.TrimSpace(req.Reason) == "" {
		return model.ErrReasonRequired
	}
	// Sales remove stock, restocks add it. Adjustments go either way.
	if req.Type == model.TxSale && req.Quantity > 0 {
		return model.NewDomainError(model.ErrCodeInvalidQuantity, "A sale must have a negative quantity delta")
	}
	if req.Type == model.TxRestock && req.Quantity < 0 {
		return model.NewDomainError(model.ErrCodeInvalidQuantity, "A restock must have a positive quantity delta")
	}
	return nil
}
