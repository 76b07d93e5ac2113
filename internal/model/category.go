package model

// Category is a display grouping for products. Colour is a hex string used
// by the dashboard sidebar; it is not validated against product rows.
type Category struct {
	ID    int    `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Color string `json:"color" db:"color"`
}
