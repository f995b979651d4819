package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// -- Resource State --
	ErrItemNotFound = errors.New("cart item not found")
)

// UnavailableProductName is rendered for cart lines whose backing product no
// longer resolves at the product service.
const UnavailableProductName = "Product not available"
