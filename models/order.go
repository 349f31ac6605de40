package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// StatusPending is the status every order starts with
const StatusPending = "Pending"

// CartItem references a product by id and carries the values submitted for
// each of that product's custom fields. Orders embed the same shape as a
// snapshot.
type CartItem struct {
	ProductID string            `json:"productId"`
	Fields    map[string]string `json:"fields"`
}

// Clone returns a deep copy so an order snapshot never shares its field map
// with a session cart.
func (i CartItem) Clone() CartItem {
	fields := make(map[string]string, len(i.Fields))
	for k, v := range i.Fields {
		fields[k] = v
	}
	return CartItem{ProductID: i.ProductID, Fields: fields}
}

// Order is a checked-out cart plus a status the admin can change.
// Status is free-form; StatusPending is only the initial value.
type Order struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt,omitzero"` // absent on orders written by older versions
}

// UnmarshalJSON accepts a numeric product id, like Product does
func (i *CartItem) UnmarshalJSON(data []byte) error {
	type plain CartItem
	var raw struct {
		plain
		ProductID json.RawMessage `json:"productId"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	productID, err := looseString(raw.ProductID)
	if err != nil {
		return fmt.Errorf("cart item product id: %w", err)
	}
	*i = CartItem(raw.plain)
	i.ProductID = productID
	return nil
}

// UnmarshalJSON accepts a numeric order id from a hand-edited data file
func (o *Order) UnmarshalJSON(data []byte) error {
	type plain Order
	var raw struct {
		plain
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, err := looseString(raw.ID)
	if err != nil {
		return fmt.Errorf("order id: %w", err)
	}
	*o = Order(raw.plain)
	o.ID = id
	return nil
}
