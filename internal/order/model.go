package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusFailed    OrderStatus = "FAILED"
)

// ParseStatus maps an incoming string onto a known status value. Transitions
// between statuses are not validated anywhere; only membership is.
func ParseStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending, StatusConfirmed, StatusFailed:
		return OrderStatus(s), nil
	}
	return "", ErrInvalidStatus
}

type Order struct {
	ID          string          `json:"id"`
	UserID      uint            `json:"user_id"`
	OrderDate   time.Time       `json:"order_date"`
	Status      OrderStatus     `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Items       []OrderItem     `json:"items"`
}

// OrderItem carries the unit price snapshotted at creation time; it is never
// refreshed, so historical orders are immune to later price changes.
type OrderItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// ItemRequest is one requested line of a new order.
type ItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}
