package inventory

import "errors"

var (
	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")

	// -- Business Rules --
	ErrInsufficientStock = errors.New("insufficient stock")

	// -- Dependency Failures --
	ErrUnavailable = errors.New("product service unavailable")
)
