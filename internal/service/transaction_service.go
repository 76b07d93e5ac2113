package service

import (
	"context"
	"fmt"

	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/rs/zerolog"
)

const (
	// defaultPageSize matches the page size the dashboard fetches with.
	defaultPageSize = 1000
	// defaultRecentLimit is how many entries the recent-activity panel shows.
	defaultRecentLimit = 10
)

// transactionService implements TransactionService.
type transactionService struct {
	transactionRepo repository.TransactionRepository
	logger          zerolog.Logger
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(transactionRepo repository.TransactionRepository, logger zerolog.Logger) TransactionService {
	return &transactionService{
		transactionRepo: transactionRepo,
		logger:          logger.With().Str("service", "transaction").Logger(),
	}
}

// List retrieves transactions newest first.
func (s *transactionService) List(ctx context.Context, productID, limit int) ([]model.StockTransaction, error) {
	if limit <= 0 || limit > defaultPageSize {
		limit = defaultPageSize
	}

	var (
		transactions []model.StockTransaction
		err          error
	)
	if productID > 0 {
		transactions, err = s.transactionRepo.GetByProductID(ctx, productID, limit)
	} else {
		transactions, err = s.transactionRepo.GetAll(ctx, limit)
	}
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", productID).Msg("failed to list transactions")
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	s.logger.Debug().
		Int("count", len(transactions)).
		Int("product_id", productID).
		Msg("listed transactions")

	return transactions, nil
}

// Recent retrieves the most recent transactions.
func (s *transactionService) Recent(ctx context.Context, limit int) ([]model.StockTransaction, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	transactions, err := s.transactionRepo.GetAll(ctx, limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get recent transactions")
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, nil
}
