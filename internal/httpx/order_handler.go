package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/pradeepkasula/online-shopping-cart/internal/order"

	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	Service order.Service
}

type CreateOrderRequest struct {
	UserID uint                `json:"user_id"`
	Items  []order.ItemRequest `json:"items"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) Register(r chi.Router) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", h.createOrder)
		r.Get("/{userID}", h.getOrdersByUser)
		r.Get("/order/{orderID}", h.getOrder)
		r.Put("/{orderID}/status", h.updateStatus)
	})
}

func (h *OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if req.UserID == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing fields"})
		return
	}

	o, err := h.Service.CreateOrder(r.Context(), req.UserID, req.Items)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, o)
}

func (h *OrderHandler) getOrdersByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user id"})
		return
	}

	orders, err := h.Service.GetOrdersByUserID(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.Service.GetOrderByID(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	o, err := h.Service.UpdateOrderStatus(r.Context(), chi.URLParam(r, "orderID"), status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, o)
}
