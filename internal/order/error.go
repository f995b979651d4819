package order

import "errors"

var (
	// -- Validation & Input --
	ErrNoItems         = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidStatus   = errors.New("unknown order status")

	// -- Resource State --
	ErrOrderNotFound = errors.New("order not found")
)
