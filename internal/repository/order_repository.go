package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/dishpatch/api/internal/models"
)

var (
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository defines the interface for order data access.
// Delete of an absent id is a no-op; the 404 is raised earlier by the
// existence check in the pipeline.
type OrderRepository interface {
	List(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id string) (*models.Order, error)
	Append(ctx context.Context, order models.Order) error
	Update(ctx context.Context, order models.Order) error
	Delete(ctx context.Context, id string) error
}

// InMemoryOrderRepository implements OrderRepository with in-memory storage
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
}

// NewInMemoryOrderRepository creates a new in-memory order repository with seed data
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: []models.Order{
			{
				ID:           "5d2a6a6d0ffe4f3eb54d2a0f3b9e6a11",
				DeliverTo:    "42 Union Square, Apt 4B",
				MobileNumber: "202-555-0174",
				Status:       models.StatusPending,
				Dishes: []models.OrderItem{
					{DishID: "9bbd817ef0694868a41e1b3dc4435d52", Quantity: 2},
				},
			},
			{
				ID:           "f6069a542fdb4a0f96b0fabeaaa05f05",
				DeliverTo:    "1600 Pennsylvania Avenue NW",
				MobileNumber: "202-555-0109",
				Status:       models.StatusDelivered,
				Dishes: []models.OrderItem{
					{DishID: "d351db2b49b69679504652ea1d947d05", Quantity: 1},
				},
			},
		},
	}
}

// List returns all orders in insertion order
func (r *InMemoryOrderRepository) List(ctx context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]models.Order, len(r.orders))
	copy(orders, r.orders)
	return orders, nil
}

// FindByID returns an order by its ID
func (r *InMemoryOrderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.orders {
		if order.ID == id {
			found := order
			return &found, nil
		}
	}
	return nil, ErrOrderNotFound
}

// Append adds an order to the end of the collection
func (r *InMemoryOrderRepository) Append(ctx context.Context, order models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, order)
	return nil
}

// Update replaces the fields of the order with the matching ID in place
func (r *InMemoryOrderRepository) Update(ctx context.Context, order models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == order.ID {
			r.orders[i] = order
			return nil
		}
	}
	return ErrOrderNotFound
}

// Delete removes the order with the matching ID if present
func (r *InMemoryOrderRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return nil
}
