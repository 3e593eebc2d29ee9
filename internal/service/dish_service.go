package service

import (
	"context"

	"github.com/dishpatch/api/internal/models"
	"github.com/dishpatch/api/internal/pipeline"
	"github.com/dishpatch/api/internal/repository"
	"github.com/dishpatch/api/internal/validate"
	"github.com/google/uuid"
)

// DishService handles dish business logic: each operation runs its
// validation pipeline and, if it passes, the mutation against the repository.
type DishService struct {
	repo   repository.DishRepository
	nextID func() string

	createPipe pipeline.Pipeline
	updatePipe pipeline.Pipeline
	readPipe   pipeline.Pipeline
}

// NewDishService creates a new dish service
func NewDishService(repo repository.DishRepository) *DishService {
	s := &DishService{
		repo:   repo,
		nextID: uuid.NewString,
	}

	// Ordering matters: later stages assume invariants established by
	// earlier ones (DishPrice reads a price the presence check admitted).
	s.createPipe = pipeline.Pipeline{
		validate.DishHas("name"),
		validate.DishHas("description"),
		validate.DishHas("price"),
		validate.DishPrice,
		validate.DishHas("image_url"),
	}
	s.updatePipe = pipeline.Pipeline{
		validate.DishExists(repo),
		validate.DishHas("name"),
		validate.DishHas("description"),
		validate.DishHas("price"),
		validate.DishPrice,
		validate.DishHas("image_url"),
		validate.DishIDMatch,
	}
	s.readPipe = pipeline.Pipeline{
		validate.DishExists(repo),
	}

	return s
}

// List returns all dishes
func (s *DishService) List(ctx context.Context) ([]models.Dish, error) {
	return s.repo.List(ctx)
}

// Get returns a dish by ID
func (s *DishService) Get(ctx context.Context, dishID string) (*models.Dish, error) {
	req := &pipeline.Request{RouteID: dishID}
	if err := s.readPipe.Run(ctx, req); err != nil {
		return nil, err
	}
	return req.Dish, nil
}

// Create validates the payload and appends a new dish with a fresh ID
func (s *DishService) Create(ctx context.Context, payload models.DishPayload) (*models.Dish, error) {
	req := &pipeline.Request{DishPayload: &payload}
	if err := s.createPipe.Run(ctx, req); err != nil {
		return nil, err
	}

	dish := models.Dish{
		ID:          s.nextID(),
		Name:        payload.Name,
		Description: payload.Description,
		Price:       int64(*payload.Price),
		ImageURL:    payload.ImageURL,
	}
	if err := s.repo.Append(ctx, dish); err != nil {
		return nil, err
	}
	return &dish, nil
}

// Update validates the payload and replaces every field of the dish except
// its ID, which never changes
func (s *DishService) Update(ctx context.Context, dishID string, payload models.DishPayload) (*models.Dish, error) {
	req := &pipeline.Request{RouteID: dishID, DishPayload: &payload}
	if err := s.updatePipe.Run(ctx, req); err != nil {
		return nil, err
	}

	dish := *req.Dish
	dish.Name = payload.Name
	dish.Description = payload.Description
	dish.Price = int64(*payload.Price)
	dish.ImageURL = payload.ImageURL

	if err := s.repo.Update(ctx, dish); err != nil {
		return nil, err
	}
	return &dish, nil
}
