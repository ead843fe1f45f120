package domain

// CartItem is a cart line. Name, price and image are snapshots taken when
// the item entered the cart, so later catalog edits never change what the
// shopper agreed to pay. ProductID is a weak reference back to the catalog.
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
	ImageURL  string  `json:"imageUrl"`
}

// Subtotal is derived, never stored.
func (i CartItem) Subtotal() float64 {
	return float64(i.Qty) * i.Price
}
