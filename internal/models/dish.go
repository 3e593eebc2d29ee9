package models

// Dish represents a menu item in the catalog
// Price is in the currency's smallest unit (cents)
type Dish struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"image_url"`
}

// DishPayload is the partially-validated shape of an incoming dish body.
// Price is a pointer so an absent field, an explicit zero and a fractional
// value remain distinguishable until the validators run.
type DishPayload struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    string   `json:"image_url"`
}
