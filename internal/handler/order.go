package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Pisarev203/tg-shop/internal/order"
)

type OrderItemRequest struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Qty   int    `json:"qty"`
}

type CreateOrderRequest struct {
	Customer     string             `json:"customer"`
	Metro        string             `json:"metro"`
	DeliveryTime string             `json:"deliveryTime"`
	Comment      string             `json:"comment"`
	Items        []OrderItemRequest `json:"items"`
	Total        int64              `json:"total"`
}

type CreateOrderResponse struct {
	OrderID int64 `json:"orderId"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderHandler serves checkout submissions and the admin order views.
type OrderHandler struct {
	service order.Service
}

func NewOrderHandler(service order.Service) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) RegisterPublicRoutes(router chi.Router) {
	router.Post("/orders", h.handleCreateOrder)
}

func (h *OrderHandler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/orders", h.handleListOrders)
	router.Put("/orders/{id}/status", h.handleUpdateOrderStatus)
}

func (h *OrderHandler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var payload CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]order.LineItem, 0, len(payload.Items))
	for _, it := range payload.Items {
		items = append(items, order.LineItem{Name: it.Name, Price: it.Price, Qty: it.Qty})
	}

	placed, err := h.service.Place(r.Context(), order.Cart{
		Customer:     payload.Customer,
		Metro:        payload.Metro,
		DeliveryTime: payload.DeliveryTime,
		Comment:      payload.Comment,
		Items:        items,
		Total:        payload.Total,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to place order")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, CreateOrderResponse{OrderID: placed.ID})
}

func (h *OrderHandler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	orders, err := h.service.Orders(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list orders")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var payload UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.UpdateStatus(r.Context(), id, payload.Status); err != nil {
		log.Warn().Err(err).Int64("order_id", id).Msg("Failed to update order status")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
