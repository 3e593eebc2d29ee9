package validate

import (
	"context"
	"encoding/json"
	"errors"
	"math"

	"github.com/dishpatch/api/internal/apperr"
	"github.com/dishpatch/api/internal/models"
	"github.com/dishpatch/api/internal/pipeline"
	"github.com/dishpatch/api/internal/repository"
)

// OrderHas checks that the named order field is present, with the same falsy
// convention as DishHas.
func OrderHas(field string) pipeline.Stage {
	return func(_ context.Context, req *pipeline.Request) *apperr.Error {
		p := req.OrderPayload
		missing := false
		switch field {
		case "deliverTo":
			missing = p.DeliverTo == ""
		case "mobileNumber":
			missing = p.MobileNumber == ""
		case "status":
			missing = p.Status == ""
		}
		if missing {
			return apperr.Validation("Order must include a %s", field)
		}
		return nil
	}
}

// OrderRequireDishes rejects a payload whose dishes field is absent or null.
func OrderRequireDishes(_ context.Context, req *pipeline.Request) *apperr.Error {
	raw := req.OrderPayload.Dishes
	if len(raw) == 0 || string(raw) == "null" {
		return apperr.Validation("Order must include a dish")
	}
	return nil
}

// OrderDishesValid checks that dishes is a non-empty array whose line items
// each carry a positive integer quantity, reporting the offending item's own
// dish id. On success the converted line items are stored on the request for
// the mutation handler.
func OrderDishesValid(_ context.Context, req *pipeline.Request) *apperr.Error {
	var rawItems []json.RawMessage
	if err := json.Unmarshal(req.OrderPayload.Dishes, &rawItems); err != nil || len(rawItems) == 0 {
		return apperr.Validation("Order must include a dish")
	}

	converted := make([]models.OrderItem, 0, len(rawItems))
	for _, raw := range rawItems {
		// Items decode one at a time so a type-mismatched field fails that
		// item with the quantity message instead of the whole array.
		var item models.OrderItemPayload
		if err := json.Unmarshal(raw, &item); err != nil {
			return apperr.Validation("Dish %s must have a quantity that is an integer greater than 0", itemID(raw))
		}
		q := item.Quantity
		if q == nil || *q < 1 || *q > maxExactInt || *q != math.Trunc(*q) {
			return apperr.Validation("Dish %s must have a quantity that is an integer greater than 0", item.DishID)
		}
		converted = append(converted, models.OrderItem{DishID: item.DishID, Quantity: int64(*q)})
	}

	req.OrderItems = converted
	return nil
}

// itemID pulls the id out of a line item that failed to decode so the
// quantity error can still name it. Non-string ids are reported as their
// raw JSON text.
func itemID(raw json.RawMessage) string {
	var partial struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(raw, &partial); err != nil || len(partial.ID) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(partial.ID, &s); err == nil {
		return s
	}
	return string(partial.ID)
}

// OrderStatusValid checks that the target status is one of the four
// enumerated values.
func OrderStatusValid(_ context.Context, req *pipeline.Request) *apperr.Error {
	if !models.ValidStatus(req.OrderPayload.Status) {
		return apperr.Validation("Order status invalid")
	}
	return nil
}

// OrderExists resolves the route id against the order list and makes the
// found order available to later stages.
func OrderExists(repo repository.OrderRepository) pipeline.Stage {
	return func(ctx context.Context, req *pipeline.Request) *apperr.Error {
		order, err := repo.FindByID(ctx, req.RouteID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return apperr.NotFound("Order id not found: %s", req.RouteID)
			}
			return apperr.Internal()
		}
		req.Order = order
		return nil
	}
}

// OrderIDMatch fails when the body carries an id that differs from the route
// id. An omitted body id passes.
func OrderIDMatch(_ context.Context, req *pipeline.Request) *apperr.Error {
	id := req.OrderPayload.ID
	if id != "" && id != req.RouteID {
		return apperr.Validation("Order id does not match route id. Order: %s, Route: %s.", id, req.RouteID)
	}
	return nil
}

// OrderNotDelivered blocks any update to an order whose current status is
// delivered, before any field is examined.
func OrderNotDelivered(_ context.Context, req *pipeline.Request) *apperr.Error {
	if req.Order.Status == models.StatusDelivered {
		return apperr.Validation("A delivered order cannot be changed")
	}
	return nil
}

// OrderIsPending allows deletion only while the current status is pending.
func OrderIsPending(_ context.Context, req *pipeline.Request) *apperr.Error {
	if req.Order.Status != models.StatusPending {
		return apperr.Validation("An order cannot be deleted unless it is pending.")
	}
	return nil
}
