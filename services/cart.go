package services

import (
	"net/url"
	"strings"

	"github.com/kendall-kelly/storefront/models"
	"github.com/shopspring/decimal"
)

// ProductFinder resolves product ids against the catalog
type ProductFinder interface {
	Product(id string) (models.Product, bool)
}

// CartLine is a cart item with its product resolved. Product is nil when the
// item references a product that no longer exists.
type CartLine struct {
	ProductID    string
	Product      *models.Product
	Fields       map[string]string
	PriceUnknown bool
}

// Missing reports whether the referenced product is gone from the catalog
func (l CartLine) Missing() bool {
	return l.Product == nil
}

// CartView is what the cart page shows
type CartView struct {
	Lines []CartLine
	// Total sums the lines whose price parses as a number
	Total        decimal.Decimal
	PriceUnknown bool
}

// Empty reports whether the cart has no lines
func (v CartView) Empty() bool {
	return len(v.Lines) == 0
}

// AddToCart appends an item for product to cart. The item carries one value
// per custom field declared on the product, taken from form or "" when the
// form lacks it. Form keys the product does not declare are ignored.
func AddToCart(cart []models.CartItem, product models.Product, form url.Values) []models.CartItem {
	fields := make(map[string]string, len(product.CustomFields))
	for _, name := range product.CustomFields {
		fields[name] = form.Get(name)
	}
	return append(cart, models.CartItem{ProductID: product.ID, Fields: fields})
}

// ViewCart resolves every item's product against the live catalog
func ViewCart(catalog ProductFinder, cart []models.CartItem) CartView {
	view := CartView{Lines: make([]CartLine, 0, len(cart)), Total: decimal.Zero}

	for _, item := range cart {
		line := CartLine{ProductID: item.ProductID, Fields: item.Fields}
		if product, ok := catalog.Product(item.ProductID); ok {
			line.Product = &product
			if amount, ok := ParsePrice(product.Price); ok {
				view.Total = view.Total.Add(amount)
			} else {
				line.PriceUnknown = true
				view.PriceUnknown = true
			}
		}
		view.Lines = append(view.Lines, line)
	}

	return view
}

// ParsePrice reads a price such as "12.50" or "$12.50"
func ParsePrice(p models.Price) (decimal.Decimal, bool) {
	s := strings.TrimPrefix(strings.TrimSpace(string(p)), "$")
	if s == "" {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}
