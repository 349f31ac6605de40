package models

import (
	"encoding/json"
	"fmt"
)

// Product represents a catalog entry. CustomFields names the inputs a
// customer fills in when adding the product to a cart (e.g. size, color).
type Product struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        Price    `json:"price"`
	CustomFields []string `json:"customFields"`
}

// UnmarshalJSON accepts a numeric id from a hand-edited data file and keeps
// its literal form, so one such entry does not invalidate the whole file.
func (p *Product) UnmarshalJSON(data []byte) error {
	type plain Product
	var raw struct {
		plain
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, err := looseString(raw.ID)
	if err != nil {
		return fmt.Errorf("product id: %w", err)
	}
	*p = Product(raw.plain)
	p.ID = id
	return nil
}

// Price is kept exactly as the admin typed it. Data files edited by hand may
// carry a bare JSON number, which is accepted and kept in its literal form.
type Price string

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (p *Price) UnmarshalJSON(data []byte) error {
	s, err := looseString(data)
	if err != nil {
		return fmt.Errorf("price: %w", err)
	}
	*p = Price(s)
	return nil
}

// looseString decodes a JSON string, number or null (or an absent value)
// into its string form
func looseString(data []byte) (string, error) {
	if len(data) == 0 || string(data) == "null" {
		return "", nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", fmt.Errorf("must be a string or a number: %w", err)
	}
	return n.String(), nil
}
