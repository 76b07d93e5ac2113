package repository

import (
	"context"
	"fmt"

	"stockroom/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// transactionRepository implements the TransactionRepository interface using PostgreSQL.
type transactionRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewTransactionRepository creates a new PostgreSQL-backed transaction repository.
func NewTransactionRepository(pool *pgxpool.Pool, logger zerolog.Logger) TransactionRepository {
	return &transactionRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "transaction").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *transactionRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Create inserts a stock transaction within the provided database transaction.
func (r *transactionRepository) Create(ctx context.Context, tx pgx.Tx, st *model.StockTransaction) error {
	query := `
		INSERT INTO stock_transactions (product_id, type, quantity, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := tx.QueryRow(ctx, query,
		st.ProductID, st.Type, st.Quantity, st.Reason, st.Timestamp,
	).Scan(&st.ID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int("product_id", st.ProductID).
			Str("type", string(st.Type)).
			Msg("failed to create stock transaction")
		return fmt.Errorf("failed to create stock transaction: %w", err)
	}

	r.logger.Debug().
		Int("transaction_id", st.ID).
		Int("product_id", st.ProductID).
		Int("quantity", st.Quantity).
		Msg("stock transaction created")

	return nil
}

const transactionColumns = "id, product_id, type, quantity, reason, created_at"

// GetAll retrieves transactions newest first, up to limit.
func (r *transactionRepository) GetAll(ctx context.Context, limit int) ([]model.StockTransaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM stock_transactions
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	return r.queryTransactions(ctx, query, limit)
}

// GetByProductID retrieves transactions for one product, newest first.
func (r *transactionRepository) GetByProductID(ctx context.Context, productID, limit int) ([]model.StockTransaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM stock_transactions
		WHERE product_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	return r.queryTransactions(ctx, query, productID, limit)
}

func (r *transactionRepository) queryTransactions(ctx context.Context, query string, args ...interface{}) ([]model.StockTransaction, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query stock transactions")
		return nil, fmt.Errorf("failed to query stock transactions: %w", err)
	}
	defer rows.Close()

	var transactions []model.StockTransaction
	for rows.Next() {
		var st model.StockTransaction
		err := rows.Scan(&st.ID, &st.ProductID, &st.Type, &st.Quantity, &st.Reason, &st.Timestamp)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan stock transaction row")
			return nil, fmt.Errorf("failed to scan stock transaction: %w", err)
		}
		transactions = append(transactions, st)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating stock transaction rows")
		return nil, fmt.Errorf("error iterating stock transactions: %w", err)
	}

	return transactions, nil
}
