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

// DishHandler handles dish-related HTTP requests
type DishHandler struct {
	service *service.DishService
	log     *slog.Logger
}

// NewDishHandler creates a new dish handler
func NewDishHandler(service *service.DishService, log *slog.Logger) *DishHandler {
	return &DishHandler{
		service: service,
		log:     log,
	}
}

// dishRequest is the {data: ...} request envelope for dish bodies. A missing
// data field leaves the payload zero-valued and the presence checks report
// the individual fields.
type dishRequest struct {
	Data models.DishPayload `json:"data"`
}

// List handles GET /dishes
func (h *DishHandler) List(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.service.List(r.Context())
	if err != nil {
		h.log.Error("failed to list dishes", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteData(w, http.StatusOK, dishes, h.log)
}

// Get handles GET /dishes/{dishId}
func (h *DishHandler) Get(w http.ResponseWriter, r *http.Request) {
	dishID := chi.URLParam(r, "dishId")

	dish, err := h.service.Get(r.Context(), dishID)
	if err != nil {
		h.writeFailure(w, err, "dishId", dishID)
		return
	}

	WriteData(w, http.StatusOK, dish, h.log)
}

// Create handles POST /dishes
func (h *DishHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	dish, err := h.service.Create(r.Context(), req.Data)
	if err != nil {
		h.writeFailure(w, err, "dishId", "")
		return
	}

	h.log.Info("dish created", "dish_id", dish.ID, "name", dish.Name)
	WriteData(w, http.StatusCreated, dish, h.log)
}

// Update handles PUT /dishes/{dishId}
func (h *DishHandler) Update(w http.ResponseWriter, r *http.Request) {
	dishID := chi.URLParam(r, "dishId")

	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	dish, err := h.service.Update(r.Context(), dishID, req.Data)
	if err != nil {
		h.writeFailure(w, err, "dishId", dishID)
		return
	}

	h.log.Info("dish updated", "dish_id", dish.ID)
	WriteData(w, http.StatusOK, dish, h.log)
}

// decode parses the request envelope. An empty body is treated as an empty
// payload so the field validators produce the specific messages.
func (h *DishHandler) decode(w http.ResponseWriter, r *http.Request) (dishRequest, bool) {
	var req dishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.log.Warn("failed to decode dish request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return dishRequest{}, false
	}
	return req, true
}

func (h *DishHandler) writeFailure(w http.ResponseWriter, err error, idKey, id string) {
	ae := apperr.From(err)
	if ae.Status >= http.StatusInternalServerError {
		h.log.Error("dish request failed", idKey, id, "error", err)
	} else {
		h.log.Info("dish request rejected", idKey, id, "status", ae.Status, "reason", ae.Message)
	}
	WriteError(w, ae.Status, ae.Message, h.log)
}
