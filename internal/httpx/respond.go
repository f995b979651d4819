package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pradeepkasula/online-shopping-cart/internal/cart"
	"github.com/pradeepkasula/online-shopping-cart/internal/inventory"
	"github.com/pradeepkasula/online-shopping-cart/internal/order"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

// statusFor keeps the four error categories distinguishable for clients:
// invalid input, missing entity, stock conflict, and dependency failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, order.ErrNoItems),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, inventory.ErrProductNotFound):
		return http.StatusBadRequest
	case errors.Is(err, cart.ErrItemNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, inventory.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, inventory.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
