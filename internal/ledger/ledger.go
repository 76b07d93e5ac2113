// Package ledger holds the pure inventory bookkeeping rules: stock status
// classification, delta application and aggregate statistics. Nothing in
// this package performs I/O; persistence of the results is the service
// layer's job.
package ledger

import (
	"time"

	"stockroom/internal/model"
)

// Status is the derived stock classification of a product.
type Status string

const (
	StatusOutOfStock Status = "out_of_stock"
	StatusLowStock   Status = "low_stock"
	StatusInStock    Status = "in_stock"
)

// Classify returns the stock status for a quantity relative to its
// minimum-stock threshold. Zero is always out of stock, regardless of the
// threshold; anything at or below the threshold is low stock.
func Classify(quantity, minStock int) Status {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity <= minStock:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// ApplyDelta returns a copy of the product with the signed delta applied to
// its quantity and LastUpdated set to now. The resulting quantity is clamped
// at zero; rejecting oversized removals is the caller's contract, the clamp
// only guarantees the non-negative invariant.
func ApplyDelta(p model.Product, delta int, now time.Time) model.Product {
	q := p.Quantity + delta
	if q < 0 {
		q = 0
	}
	p.Quantity = q
	p.LastUpdated = now
	return p
}

// Summary holds the dashboard aggregate statistics.
type Summary struct {
	TotalCount      int     `json:"totalCount"`
	TotalValue      float64 `json:"totalValue"`
	LowStockCount   int     `json:"lowStockCount"`
	OutOfStockCount int     `json:"outOfStockCount"`
}

// Aggregates computes the summary statistics over a product list. The result
// is independent of input order.
func Aggregates(products []model.Product) Summary {
	var s Summary
	s.TotalCount = len(products)
	for _, p := range products {
		s.TotalValue += p.Price * float64(p.Quantity)
		switch Classify(p.Quantity, p.MinStock) {
		case StatusLowStock:
			s.LowStockCount++
		case StatusOutOfStock:
			s.OutOfStockCount++
		}
	}
	return s
}

// CountByCategory returns the number of products per category name. Category
// strings are counted literally, with no normalisation; an empty category is
// a valid key.
func CountByCategory(products []model.Product) map[string]int {
	counts := make(map[string]int, len(products))
	for _, p := range products {
		counts[p.Category]++
	}
	return counts
}
