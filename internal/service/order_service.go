package service

import (
	"context"

	"github.com/dishpatch/api/internal/models"
	"github.com/dishpatch/api/internal/pipeline"
	"github.com/dishpatch/api/internal/repository"
	"github.com/dishpatch/api/internal/validate"
	"github.com/google/uuid"
)

// OrderService handles order business logic, including the lifecycle guards
// that gate updates and deletion.
type OrderService struct {
	repo   repository.OrderRepository
	nextID func() string

	createPipe pipeline.Pipeline
	updatePipe pipeline.Pipeline
	deletePipe pipeline.Pipeline
	readPipe   pipeline.Pipeline
}

// NewOrderService creates a new order service
func NewOrderService(repo repository.OrderRepository) *OrderService {
	s := &OrderService{
		repo:   repo,
		nextID: uuid.NewString,
	}

	s.createPipe = pipeline.Pipeline{
		validate.OrderHas("deliverTo"),
		validate.OrderHas("mobileNumber"),
		validate.OrderRequireDishes,
		validate.OrderDishesValid,
	}
	// The delivered guard runs before any field is examined.
	s.updatePipe = pipeline.Pipeline{
		validate.OrderExists(repo),
		validate.OrderIDMatch,
		validate.OrderNotDelivered,
		validate.OrderHas("deliverTo"),
		validate.OrderHas("mobileNumber"),
		validate.OrderRequireDishes,
		validate.OrderHas("status"),
		validate.OrderStatusValid,
		validate.OrderDishesValid,
	}
	s.deletePipe = pipeline.Pipeline{
		validate.OrderExists(repo),
		validate.OrderIsPending,
	}
	s.readPipe = pipeline.Pipeline{
		validate.OrderExists(repo),
	}

	return s
}

// List returns all orders
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.repo.List(ctx)
}

// Get returns an order by ID
func (s *OrderService) Get(ctx context.Context, orderID string) (*models.Order, error) {
	req := &pipeline.Request{RouteID: orderID}
	if err := s.readPipe.Run(ctx, req); err != nil {
		return nil, err
	}
	return req.Order, nil
}

// Create validates the payload and appends a new order with a fresh ID.
// The status is taken from the caller as-is; creation does not default it.
func (s *OrderService) Create(ctx context.Context, payload models.OrderPayload) (*models.Order, error) {
	req := &pipeline.Request{OrderPayload: &payload}
	if err := s.createPipe.Run(ctx, req); err != nil {
		return nil, err
	}

	order := models.Order{
		ID:           s.nextID(),
		DeliverTo:    payload.DeliverTo,
		MobileNumber: payload.MobileNumber,
		Status:       payload.Status,
		Dishes:       req.OrderItems,
	}
	if err := s.repo.Append(ctx, order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Update validates the payload against the lifecycle guards and replaces
// every field of the order except its ID
func (s *OrderService) Update(ctx context.Context, orderID string, payload models.OrderPayload) (*models.Order, error) {
	req := &pipeline.Request{RouteID: orderID, OrderPayload: &payload}
	if err := s.updatePipe.Run(ctx, req); err != nil {
		return nil, err
	}

	order := *req.Order
	order.DeliverTo = payload.DeliverTo
	order.MobileNumber = payload.MobileNumber
	order.Status = payload.Status
	order.Dishes = req.OrderItems

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Delete removes an order, allowed only while its status is pending
func (s *OrderService) Delete(ctx context.Context, orderID string) error {
	req := &pipeline.Request{RouteID: orderID}
	if err := s.deletePipe.Run(ctx, req); err != nil {
		return err
	}
	return s.repo.Delete(ctx, orderID)
}
