// Package pipeline runs an ordered list of validation stages ahead of a
// mutation. Stages execute strictly in sequence and the first failure aborts
// the run; later stages may rely on invariants established by earlier ones.
package pipeline

import (
	"context"

	"github.com/dishpatch/api/internal/apperr"
	"github.com/dishpatch/api/internal/models"
)

// Request carries per-request state across stages. Existence checks resolve
// entities into it so later stages and the mutation handler can reuse the
// lookup instead of hitting the repository again.
type Request struct {
	// RouteID is the entity id taken from the URL, authoritative over any
	// id carried in the body.
	RouteID string

	DishPayload  *models.DishPayload
	OrderPayload *models.OrderPayload

	// Set by the dish/order existence stages.
	Dish  *models.Dish
	Order *models.Order

	// Set by the order dishes validator after the line items pass.
	OrderItems []models.OrderItem
}

// Stage is a single validation step. A nil return passes control to the
// next stage.
type Stage func(ctx context.Context, req *Request) *apperr.Error

// Pipeline is an ordered list of stages.
type Pipeline []Stage

// Run executes the stages in order and returns the first failure, if any.
func (p Pipeline) Run(ctx context.Context, req *Request) *apperr.Error {
	for _, stage := range p {
		if err := stage(ctx, req); err != nil {
			return err
		}
	}
	return nil
}
