package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dishpatch/api/internal/models"
)

const (
	seedPendingOrderID   = "5d2a6a6d0ffe4f3eb54d2a0f3b9e6a11"
	seedDeliveredOrderID = "f6069a542fdb4a0f96b0fabeaaa05f05"
)

const validOrderBody = `{"data":{"deliverTo":"7 Elm Street","mobileNumber":"555-0101","status":"pending","dishes":[{"id":"d1","quantity":1}]}}`

func TestOrderHandler_List(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/orders", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Data []models.Order `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Errorf("expected 2 seed orders, got %d", len(resp.Data))
	}
}

func TestOrderHandler_Create(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/orders", validOrderBody)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data models.Order `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.ID == "" {
		t.Error("expected a generated order id")
	}
	if resp.Data.Status != "pending" {
		t.Errorf("expected caller-supplied status, got %s", resp.Data.Status)
	}
}

func TestOrderHandler_CreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "missing deliverTo",
			body:    `{"data":{"mobileNumber":"555-0101","dishes":[{"id":"d1","quantity":1}]}}`,
			wantMsg: "Order must include a deliverTo",
		},
		{
			name:    "missing mobileNumber",
			body:    `{"data":{"deliverTo":"7 Elm Street","dishes":[{"id":"d1","quantity":1}]}}`,
			wantMsg: "Order must include a mobileNumber",
		},
		{
			name:    "dishes absent",
			body:    `{"data":{"deliverTo":"7 Elm Street","mobileNumber":"555-0101"}}`,
			wantMsg: "Order must include a dish",
		},
		{
			name:    "dishes null",
			body:    `{"data":{"deliverTo":"7 Elm Street","mobileNumber":"555-0101","dishes":null}}`,
			wantMsg: "Order must include a dish",
		},
		{
			name:    "dishes not an array",
			body:    `{"data":{"deliverTo":"7 Elm Street","mobileNumber":"555-0101","dishes":"pizza"}}`,
			wantMsg: "Order must include a dish",
		},
		{
			name:    "dishes empty",
			body:    `{"data":{"deliverTo":"7 Elm Street","mobileNumber":"555-0101","dishes":[]}}`,
			wantMsg: "Order must include a dish",
		},
		{
			name:    "quantity zero names the line item",
			body:    `{"data":{"deliverTo":"7 Elm Street","mobileNumber":"555-0101","dishes":[{"id":"d7","quantity":0}]}}`,
			wantMsg: "Dish d7 must have a quantity that is an integer greater than 0",
		},
		{
			name:    "quantity fractional names the line item",
			body:    `{"data":{"deliverTo":"7 Elm Street","mobileNumber":"555-0101","dishes":[{"id":"d7","quantity":2.5}]}}`,
			wantMsg: "Dish d7 must have a quantity that is an integer greater than 0",
		},
		{
			name:    "quantity of the wrong type names the line item",
			body:    `{"data":{"deliverTo":"7 Elm Street","mobileNumber":"555-0101","dishes":[{"id":"d7","quantity":"two"}]}}`,
			wantMsg: "Dish d7 must have a quantity that is an integer greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter()

			w := doJSON(t, r, http.MethodPost, "/orders", tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
			}
			if got := decodeMessage(t, w); got != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, got)
			}
		})
	}
}

func TestOrderHandler_Update(t *testing.T) {
	t.Run("valid update", func(t *testing.T) {
		r := newTestRouter()

		body := `{"data":{"deliverTo":"New Address","mobileNumber":"555-0199","status":"preparing","dishes":[{"id":"d1","quantity":3}]}}`
		w := doJSON(t, r, http.MethodPut, "/orders/"+seedPendingOrderID, body)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Data models.Order `json:"data"`
		}
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Data.Status != "preparing" {
			t.Errorf("expected preparing, got %s", resp.Data.Status)
		}
		if resp.Data.DeliverTo != "New Address" {
			t.Errorf("deliverTo not replaced: %s", resp.Data.DeliverTo)
		}
	})

	t.Run("delivered order rejects a valid payload", func(t *testing.T) {
		r := newTestRouter()

		w := doJSON(t, r, http.MethodPut, "/orders/"+seedDeliveredOrderID, validOrderBody)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", w.Code)
		}
		if got := decodeMessage(t, w); got != "A delivered order cannot be changed" {
			t.Errorf("unexpected message: %s", got)
		}
	})

	t.Run("status outside the enum", func(t *testing.T) {
		r := newTestRouter()

		body := `{"data":{"deliverTo":"7 Elm Street","mobileNumber":"555-0101","status":"shipped","dishes":[{"id":"d1","quantity":1}]}}`
		w := doJSON(t, r, http.MethodPut, "/orders/"+seedPendingOrderID, body)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", w.Code)
		}
		if got := decodeMessage(t, w); got != "Order status invalid" {
			t.Errorf("unexpected message: %s", got)
		}
	})

	t.Run("body id mismatch quotes both ids", func(t *testing.T) {
		r := newTestRouter()

		body := `{"data":{"id":"imposter","deliverTo":"7 Elm Street","mobileNumber":"555-0101","status":"pending","dishes":[{"id":"d1","quantity":1}]}}`
		w := doJSON(t, r, http.MethodPut, "/orders/"+seedPendingOrderID, body)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", w.Code)
		}
		want := "Order id does not match route id. Order: imposter, Route: " + seedPendingOrderID + "."
		if got := decodeMessage(t, w); got != want {
			t.Errorf("expected message %q, got %q", want, got)
		}
	})

	t.Run("omitted body id succeeds", func(t *testing.T) {
		r := newTestRouter()

		w := doJSON(t, r, http.MethodPut, "/orders/"+seedPendingOrderID, validOrderBody)

		if w.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown order is 404 with id quoted", func(t *testing.T) {
		r := newTestRouter()

		w := doJSON(t, r, http.MethodPut, "/orders/ghost", validOrderBody)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", w.Code)
		}
		if got := decodeMessage(t, w); got != "Order id not found: ghost" {
			t.Errorf("unexpected message: %s", got)
		}
	})
}

func TestOrderHandler_Delete(t *testing.T) {
	t.Run("pending order deletes with 204 and disappears", func(t *testing.T) {
		r := newTestRouter()

		w := doJSON(t, r, http.MethodDelete, "/orders/"+seedPendingOrderID, "")

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected status 204, got %d", w.Code)
		}
		if w.Body.Len() != 0 {
			t.Errorf("expected empty body, got %s", w.Body.String())
		}

		// The order is gone from both read and list
		w = doJSON(t, r, http.MethodGet, "/orders/"+seedPendingOrderID, "")
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404 after delete, got %d", w.Code)
		}

		w = doJSON(t, r, http.MethodGet, "/orders", "")
		var resp struct {
			Data []models.Order `json:"data"`
		}
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(resp.Data) != 1 {
			t.Errorf("expected 1 order after delete, got %d", len(resp.Data))
		}
	})

	t.Run("non-pending order cannot be deleted", func(t *testing.T) {
		r := newTestRouter()

		w := doJSON(t, r, http.MethodDelete, "/orders/"+seedDeliveredOrderID, "")

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", w.Code)
		}
		if got := decodeMessage(t, w); got != "An order cannot be deleted unless it is pending." {
			t.Errorf("unexpected message: %s", got)
		}
	})

	t.Run("unknown order is 404 with id quoted", func(t *testing.T) {
		r := newTestRouter()

		w := doJSON(t, r, http.MethodDelete, "/orders/ghost", "")

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", w.Code)
		}
		if got := decodeMessage(t, w); got != "Order id not found: ghost" {
			t.Errorf("unexpected message: %s", got)
		}
	})
}

func TestOrderHandler_MethodNotAllowed(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPatch, "/orders/" + seedPendingOrderID},
		{http.MethodPut, "/orders"},
		{http.MethodDelete, "/orders"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := doJSON(t, r, tt.method, tt.path, "")

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("expected status 405, got %d", w.Code)
			}
			if w.Body.Len() != 0 {
				t.Errorf("expected empty body, got %s", w.Body.String())
			}
		})
	}
}
