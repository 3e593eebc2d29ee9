// Package validate provides the pipeline stages: field validators,
// entity-existence checks and the order lifecycle guards.
package validate

import (
	"context"
	"errors"
	"math"

	"github.com/dishpatch/api/internal/apperr"
	"github.com/dishpatch/api/internal/pipeline"
	"github.com/dishpatch/api/internal/repository"
)

// DishHas checks that the named dish field is present. Absent, null, empty
// string and a numeric zero all count as missing (a price of exactly 0 is
// "missing", not "present but invalid").
func DishHas(field string) pipeline.Stage {
	return func(_ context.Context, req *pipeline.Request) *apperr.Error {
		p := req.DishPayload
		missing := false
		switch field {
		case "name":
			missing = p.Name == ""
		case "description":
			missing = p.Description == ""
		case "price":
			missing = p.Price == nil || *p.Price == 0
		case "image_url":
			missing = p.ImageURL == ""
		}
		if missing {
			return apperr.Validation("Dish must include a %s", field)
		}
		return nil
	}
}

// maxExactInt is the largest integer a float64 carries exactly. JSON numbers
// above it cannot be trusted as integers and would overflow the stored int64
// fields, so the numeric validators reject them.
const maxExactInt = float64(1 << 53)

// DishPrice checks that the price is a positive integer within storable range.
func DishPrice(_ context.Context, req *pipeline.Request) *apperr.Error {
	p := req.DishPayload.Price
	if p == nil || *p <= 0 || *p > maxExactInt || *p != math.Trunc(*p) {
		return apperr.Validation("Dish must have a price that is an integer greater than 0")
	}
	return nil
}

// DishExists resolves the route id against the dish catalog and makes the
// found dish available to later stages.
func DishExists(repo repository.DishRepository) pipeline.Stage {
	return func(ctx context.Context, req *pipeline.Request) *apperr.Error {
		dish, err := repo.FindByID(ctx, req.RouteID)
		if err != nil {
			if errors.Is(err, repository.ErrDishNotFound) {
				return apperr.NotFound("Dish not found: %s", req.RouteID)
			}
			return apperr.Internal()
		}
		req.Dish = dish
		return nil
	}
}

// DishIDMatch fails when the body carries an id that differs from the route
// id. An omitted body id passes; the route id is authoritative.
func DishIDMatch(_ context.Context, req *pipeline.Request) *apperr.Error {
	id := req.DishPayload.ID
	if id != "" && id != req.RouteID {
		return apperr.Validation("Dish id does not match route id. Dish: %s, Route: %s", id, req.RouteID)
	}
	return nil
}
