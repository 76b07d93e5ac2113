package model

import "time"

// Product represents an item tracked in the inventory.
type Product struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	SKU         string    `json:"sku" db:"sku"`
	Category    string    `json:"category" db:"category"`
	Price       float64   `json:"price" db:"price"`
	Quantity    int       `json:"quantity" db:"quantity"`
	MinStock    int       `json:"minStock" db:"min_stock"`
	LastUpdated time.Time `json:"lastUpdated" db:"last_updated"`
}

// DefaultMinStock is applied when a product is created without an
// explicit minimum-stock threshold.
const DefaultMinStock = 10

// ProductRequest represents the request payload for creating or updating a product.
type ProductRequest struct {
	Name     string  `json:"name" validate:"required"`
	SKU      string  `json:"sku" validate:"required"`
	Category string  `json:"category" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Quantity int     `json:"quantity" validate:"gte=0"`
	MinStock *int    `json:"minStock,omitempty" validate:"omitempty,gte=0"`
}
