package models

import "encoding/json"

// Order status values. The lifecycle guards in internal/validate gate which
// mutations are allowed given an order's current value.
const (
	StatusPending        = "pending"
	StatusPreparing      = "preparing"
	StatusOutForDelivery = "out-for-delivery"
	StatusDelivered      = "delivered"
)

// ValidStatus reports whether s is one of the four order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusPreparing, StatusOutForDelivery, StatusDelivered:
		return true
	}
	return false
}

// OrderItem is a single line item in an order: a dish id and a quantity
type OrderItem struct {
	DishID   string `json:"id"`
	Quantity int64  `json:"quantity"`
}

// Order represents a customer order
type Order struct {
	ID           string      `json:"id"`
	DeliverTo    string      `json:"deliverTo"`
	MobileNumber string      `json:"mobileNumber"`
	Status       string      `json:"status"`
	Dishes       []OrderItem `json:"dishes"`
}

// OrderPayload is the partially-validated shape of an incoming order body.
// Dishes stays raw so a non-array value fails the shape validator with the
// domain message instead of failing the JSON decode.
type OrderPayload struct {
	ID           string          `json:"id"`
	DeliverTo    string          `json:"deliverTo"`
	MobileNumber string          `json:"mobileNumber"`
	Status       string          `json:"status"`
	Dishes       json.RawMessage `json:"dishes"`
}

// OrderItemPayload is the unvalidated shape of one line item.
type OrderItemPayload struct {
	DishID   string   `json:"id"`
	Quantity *float64 `json:"quantity"`
}
