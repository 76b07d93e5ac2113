package model

import "time"

// TransactionType classifies a stock movement.
type TransactionType string

const (
	TxSale       TransactionType = "sale"
	TxRestock    TransactionType = "restock"
	TxAdjustment TransactionType = "adjustment"
)

// Valid reports whether the transaction type is one of the known kinds.
func (t TransactionType) Valid() bool {
	switch t {
	case TxSale, TxRestock, TxAdjustment:
		return true
	}
	return false
}

// StockTransaction is one entry in the stock audit trail. Quantity is the
// signed delta that was applied: negative for sales and removals, positive
// for restocks and additions.
//
// ProductID is a soft reference: transactions outlive product deletion so
// the history stays intact, and readers must tolerate IDs that no longer
// resolve to a product.
type StockTransaction struct {
	ID        int             `json:"id" db:"id"`
	ProductID int             `json:"productId" db:"product_id"`
	Type      TransactionType `json:"type" db:"type"`
	Quantity  int             `json:"quantity" db:"quantity"`
	Reason    string          `json:"reason" db:"reason"`
	Timestamp time.Time       `json:"timestamp" db:"timestamp"`
}

// AdjustStockRequest represents the request payload for a stock adjustment.
type AdjustStockRequest struct {
	Quantity int             `json:"quantity"`
	Type     TransactionType `json:"type"`
	Reason   string          `json:"reason" validate:"required"`
}

// QuickSaleRequest represents the request payload for a quick sale.
type QuickSaleRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}
