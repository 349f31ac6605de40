package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Price
	}{
		{"string price", `{"price":"12.50"}`, "12.50"},
		{"number price", `{"price":12.5}`, "12.5"},
		{"integer price", `{"price":7}`, "7"},
		{"null price", `{"price":null}`, ""},
		{"free text price", `{"price":"ask us"}`, "ask us"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Product
			require.NoError(t, json.Unmarshal([]byte(tt.input), &p))
			assert.Equal(t, tt.want, p.Price)
		})
	}
}

func TestPriceUnmarshalRejectsObjects(t *testing.T) {
	var p Product
	err := json.Unmarshal([]byte(`{"price":{"amount":3}}`), &p)
	assert.Error(t, err)
}

func TestProductJSONFieldNames(t *testing.T) {
	p := Product{ID: "1", Title: "Mug", Price: "9", CustomFields: []string{"color"}}
	data, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "1", raw["id"])
	assert.Equal(t, "9", raw["price"])
	assert.Equal(t, []interface{}{"color"}, raw["customFields"])
}

func TestProductAcceptsNumericID(t *testing.T) {
	var products []Product
	data := `[{"id":"1","title":"Mug","price":"9.50","customFields":["color"]},{"id":2,"title":"Shirt","price":20}]`
	require.NoError(t, json.Unmarshal([]byte(data), &products))

	require.Len(t, products, 2)
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, []string{"color"}, products[0].CustomFields)
	assert.Equal(t, "2", products[1].ID)
	assert.Equal(t, "Shirt", products[1].Title)
	assert.Equal(t, Price("20"), products[1].Price)
}

func TestProductWithoutIDDecodesToEmptyID(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Mug"}`), &p))
	assert.Empty(t, p.ID)
	assert.Equal(t, "Mug", p.Title)
}

func TestProductRejectsObjectID(t *testing.T) {
	var p Product
	err := json.Unmarshal([]byte(`{"id":{"n":1}}`), &p)
	assert.Error(t, err)
}
