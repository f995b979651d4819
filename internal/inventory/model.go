package inventory

import "github.com/shopspring/decimal"

// Product is the inventory authority's view of a product. Price and stock
// are owned by the product service; this side never mutates them except
// through Deduct.
type Product struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}
