package domain

// Record keys for the two persisted collections. Each key maps to a JSON
// array in the record store.
const (
	InventoryRecordKey = "inventory"
	CartRecordKey      = "cart"
)

// Product is a catalog entry owned by the inventory. Stock counts units
// available for reservation, excluding anything already held in a cart.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	ImageURL string  `json:"imageUrl"`
}
