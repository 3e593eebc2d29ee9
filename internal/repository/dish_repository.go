package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/dishpatch/api/internal/models"
)

var (
	ErrDishNotFound = errors.New("dish not found")
)

// DishRepository defines the interface for dish data access.
// The repository never generates ids; callers supply them.
type DishRepository interface {
	List(ctx context.Context) ([]models.Dish, error)
	FindByID(ctx context.Context, id string) (*models.Dish, error)
	Append(ctx context.Context, dish models.Dish) error
	Update(ctx context.Context, dish models.Dish) error
}

// InMemoryDishRepository implements DishRepository with in-memory storage.
// Entries keep insertion order. The lock keeps the store safe if the server
// ever runs handlers concurrently.
type InMemoryDishRepository struct {
	mu     sync.RWMutex
	dishes []models.Dish
}

// NewInMemoryDishRepository creates a new in-memory dish repository with seed data
func NewInMemoryDishRepository() *InMemoryDishRepository {
	return &InMemoryDishRepository{
		dishes: []models.Dish{
			{
				ID:          "9bbd817ef0694868a41e1b3dc4435d52",
				Name:        "Margherita Pizza",
				Description: "Tomato, fresh mozzarella and basil on a wood-fired crust",
				Price:       1499,
				ImageURL:    "https://images.dishpatch.dev/margherita-pizza.jpg",
			},
			{
				ID:          "3c637d011d844ebab1205fef8a7e36ea",
				Name:        "Caesar Salad",
				Description: "Romaine, parmesan and croutons with house caesar dressing",
				Price:       899,
				ImageURL:    "https://images.dishpatch.dev/caesar-salad.jpg",
			},
			{
				ID:          "d351db2b49b69679504652ea1d947d05",
				Name:        "Belgian Waffle",
				Description: "Golden waffle with whipped cream and seasonal berries",
				Price:       1099,
				ImageURL:    "https://images.dishpatch.dev/belgian-waffle.jpg",
			},
		},
	}
}

// List returns all dishes in insertion order
func (r *InMemoryDishRepository) List(ctx context.Context) ([]models.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dishes := make([]models.Dish, len(r.dishes))
	copy(dishes, r.dishes)
	return dishes, nil
}

// FindByID returns a dish by its ID
func (r *InMemoryDishRepository) FindByID(ctx context.Context, id string) (*models.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, dish := range r.dishes {
		if dish.ID == id {
			found := dish
			return &found, nil
		}
	}
	return nil, ErrDishNotFound
}

// Append adds a dish to the end of the collection
func (r *InMemoryDishRepository) Append(ctx context.Context, dish models.Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.dishes = append(r.dishes, dish)
	return nil
}

// Update replaces the fields of the dish with the matching ID in place
func (r *InMemoryDishRepository) Update(ctx context.Context, dish models.Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.dishes {
		if r.dishes[i].ID == dish.ID {
			r.dishes[i] = dish
			return nil
		}
	}
	return ErrDishNotFound
}
