package handlers

import (
	"github.com/go-chi/chi/v5"
)

// NewRouter mounts the dish and order routes. Unsupported methods on either
// path pattern get a bare 405.
func NewRouter(dish *DishHandler, order *OrderHandler) chi.Router {
	r := chi.NewRouter()
	r.MethodNotAllowed(MethodNotAllowed)

	r.Route("/dishes", func(r chi.Router) {
		r.MethodNotAllowed(MethodNotAllowed)
		r.Get("/", dish.List)
		r.Post("/", dish.Create)
		r.Get("/{dishId}", dish.Get)
		r.Put("/{dishId}", dish.Update)
	})

	r.Route("/orders", func(r chi.Router) {
		r.MethodNotAllowed(MethodNotAllowed)
		r.Get("/", order.List)
		r.Post("/", order.Create)
		r.Get("/{orderId}", order.Get)
		r.Put("/{orderId}", order.Update)
		r.Delete("/{orderId}", order.Delete)
	})

	return r
}
