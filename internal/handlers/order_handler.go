package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dishpatch/api/internal/apperr"
	"github.com/dishpatch/api/internal/models"
	"github.com/dishpatch/api/internal/service"
	"github.com/go-chi/chi/v5"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	service *service.OrderService
	log     *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// orderRequest is the {data: ...} request envelope for order bodies.
type orderRequest struct {
	Data models.OrderPayload `json:"data"`
}

// List handles GET /orders
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		h.log.Error("failed to list orders", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteData(w, http.StatusOK, orders, h.log)
}

// Get handles GET /orders/{orderId}
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	order, err := h.service.Get(r.Context(), orderID)
	if err != nil {
		h.writeFailure(w, err, orderID)
		return
	}

	WriteData(w, http.StatusOK, order, h.log)
}

// Create handles POST /orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	order, err := h.service.Create(r.Context(), req.Data)
	if err != nil {
		h.writeFailure(w, err, "")
		return
	}

	h.log.Info("order created", "order_id", order.ID, "status", order.Status, "items", len(order.Dishes))
	WriteData(w, http.StatusCreated, order, h.log)
}

// Update handles PUT /orders/{orderId}
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	order, err := h.service.Update(r.Context(), orderID, req.Data)
	if err != nil {
		h.writeFailure(w, err, orderID)
		return
	}

	h.log.Info("order updated", "order_id", order.ID, "status", order.Status)
	WriteData(w, http.StatusOK, order, h.log)
}

// Delete handles DELETE /orders/{orderId}
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	if err := h.service.Delete(r.Context(), orderID); err != nil {
		h.writeFailure(w, err, orderID)
		return
	}

	h.log.Info("order deleted", "order_id", orderID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *OrderHandler) decode(w http.ResponseWriter, r *http.Request) (orderRequest, bool) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.log.Warn("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return orderRequest{}, false
	}
	return req, true
}

func (h *OrderHandler) writeFailure(w http.ResponseWriter, err error, orderID string) {
	ae := apperr.From(err)
	if ae.Status >= http.StatusInternalServerError {
		h.log.Error("order request failed", "order_id", orderID, "error", err)
	} else {
		h.log.Info("order request rejected", "order_id", orderID, "status", ae.Status, "reason", ae.Message)
	}
	WriteError(w, ae.Status, ae.Message, h.log)
}
