package cart

import "github.com/alseiny20/bkbweb-go/internal/catalog"

// LineItem is one product snapshot in the cart plus the quantity on order.
// Price, stock and image are fixed at add time; the embedded product is not
// refreshed if the backend changes later. JSON keeps the product fields
// inline so snapshots look exactly like a product with a quantity attached.
type LineItem struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Subtotal is price times quantity for this line.
func (li LineItem) Subtotal() float64 {
	return li.Price * float64(li.Quantity)
}
