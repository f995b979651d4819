package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is the persisted cart line. There is at most one row per
// (user, product) pair; price is not stored, it is resolved from the product
// service at read time.
type CartItem struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"user_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartLine is a cart item joined with the product service's current name and
// price. Available is false when the backing product no longer resolves.
type CartLine struct {
	ItemID      string          `json:"item_id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Available   bool            `json:"available"`
}

// Cart is the read model returned by GetCart. Total is recomputed on every
// read and never persisted, so it can change between reads as prices move.
type Cart struct {
	UserID uint            `json:"user_id"`
	Items  []CartLine      `json:"items"`
	Total  decimal.Decimal `json:"total"`
}
