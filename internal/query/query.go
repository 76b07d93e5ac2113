// Package query implements the search, filter and sort rules the dashboard
// applies to the product list. All functions are pure and order-preserving
// unless a sort is requested.
package query

import (
	"sort"
	"strings"

	"stockroom/internal/model"
)

// Sort keys accepted by Sort. Any other key leaves the input order untouched.
const (
	SortByName     = "name"
	SortByQuantity = "quantity"
	SortByPrice    = "price"
	SortByLowStock = "lowStock"
)

// Filter returns the products matching both predicates: a case-insensitive
// substring match of search against name or SKU, and an exact category
// match. An empty search or category matches everything. Input order is
// preserved.
func Filter(products []model.Product, search, category string) []model.Product {
	search = strings.ToLower(search)

	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.SKU), search) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// Sort returns a sorted copy of the product list. Name sorts ascending with
// case-insensitive comparison; quantity and price sort descending; lowStock
// moves products at or below their minimum-stock threshold to the front.
// All sorts are stable, so equal elements keep their prior order and an
// unknown key returns the input order unchanged.
func Sort(products []model.Product, key string) []model.Product {
	sorted := make([]model.Product, len(products))
	copy(sorted, products)

	switch key {
	case SortByName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return compareFold(sorted[i].Name, sorted[j].Name) < 0
		})
	case SortByQuantity:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Quantity > sorted[j].Quantity
		})
	case SortByPrice:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case SortByLowStock:
		sort.SliceStable(sorted, func(i, j int) bool {
			return lowStockRank(sorted[i]) < lowStockRank(sorted[j])
		})
	}

	return sorted
}

// Table columns accepted by SortByColumn.
const (
	ColumnName     = "name"
	ColumnSKU      = "sku"
	ColumnCategory = "category"
	ColumnPrice    = "price"
	ColumnQuantity = "quantity"
)

// SortByColumn implements the table-level secondary sort: one column at a
// time, with an explicit direction. String columns compare case-insensitively,
// numeric columns numerically. Stable; unknown columns leave the order as-is.
func SortByColumn(products []model.Product, column string, ascending bool) []model.Product {
	sorted := make([]model.Product, len(products))
	copy(sorted, products)

	var less func(i, j int) bool
	switch column {
	case ColumnName:
		less = func(i, j int) bool { return compareFold(sorted[i].Name, sorted[j].Name) < 0 }
	case ColumnSKU:
		less = func(i, j int) bool { return compareFold(sorted[i].SKU, sorted[j].SKU) < 0 }
	case ColumnCategory:
		less = func(i, j int) bool { return compareFold(sorted[i].Category, sorted[j].Category) < 0 }
	case ColumnPrice:
		less = func(i, j int) bool { return sorted[i].Price < sorted[j].Price }
	case ColumnQuantity:
		less = func(i, j int) bool { return sorted[i].Quantity < sorted[j].Quantity }
	default:
		return sorted
	}

	if !ascending {
		asc := less
		less = func(i, j int) bool { return asc(j, i) }
	}

	sort.SliceStable(sorted, less)
	return sorted
}

// lowStockRank orders products needing attention before the rest.
func lowStockRank(p model.Product) int {
	if p.Quantity <= p.MinStock {
		return 0
	}
	return 1
}

// compareFold compares two strings case-insensitively, falling back to a
// case-sensitive comparison to keep the ordering deterministic.
func compareFold(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
