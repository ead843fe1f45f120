package store

import (
	"sync"

	"go.uber.org/zap"

	"github.com/gualmart/storefront/internal/domain"
	"github.com/gualmart/storefront/internal/storage"
)

// Cart holds the shopper's line items, unique by product id. Every
// quantity it carries is backed by stock already taken out of the
// inventory, so inventory stock always shows availability net of the cart.
// Cart shares the inventory mutex: a reserve (inventory decrease plus cart
// append) is one step, never observable half-applied.
type Cart struct {
	mu    *sync.Mutex
	inv   *Inventory
	rs    storage.RecordStore
	bus   EventPublisher
	items []domain.CartItem
}

func NewCart(inv *Inventory, rs storage.RecordStore, bus EventPublisher) *Cart {
	return &Cart{
		mu:  inv.mu,
		inv: inv,
		rs:  rs,
		bus: bus,
	}
}

// Load replaces the in-memory items with the persisted record. Missing or
// corrupt data degrades to an empty cart with a warning.
func (c *Cart) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := c.rs.ReadRecord(domain.CartRecordKey)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		c.items = nil
		return nil
	}
	var items []domain.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		zap.L().Warn("cart record corrupt, starting empty", zap.Error(err))
		c.items = nil
		return nil
	}
	c.items = items
	return nil
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.CartItem(nil), c.items...)
}

// Count is the sum of all quantities.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, i := range c.items {
		n += i.Qty
	}
	return n
}

// Total is the sum of all line subtotals, always computed from the prices
// snapshotted at add time.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalLocked()
}

func (c *Cart) totalLocked() float64 {
	t := 0.0
	for _, i := range c.items {
		t += i.Subtotal()
	}
	return t
}

// Get returns a copy of the line for productID.
func (c *Cart) Get(productID string) (domain.CartItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexLocked(productID)
	if i < 0 {
		return domain.CartItem{}, ErrNotFound
	}
	return c.items[i], nil
}

// Add reserves qty units of the product and adds them to the cart. The
// reservation happens first: if the inventory cannot cover qty the cart is
// left unchanged. New lines snapshot the product's current name, price and
// image.
func (c *Cart) Add(productID string, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	p, err := c.inv.decreaseLocked(productID, qty)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	if i := c.indexLocked(productID); i >= 0 {
		c.items[i].Qty += qty
	} else {
		c.items = append(c.items, domain.CartItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Qty:       qty,
			ImageURL:  p.ImageURL,
		})
	}
	c.saveLocked()
	c.mu.Unlock()

	publish(c.bus, TopicCartChanged, "add", productID)
	return nil
}

// Remove deletes the line and returns its full quantity to the inventory.
// Removing an absent product is a no-op.
func (c *Cart) Remove(productID string) error {
	c.mu.Lock()
	i := c.indexLocked(productID)
	if i < 0 {
		c.mu.Unlock()
		return nil
	}
	c.removeLocked(i)
	c.mu.Unlock()

	publish(c.bus, TopicCartChanged, "remove", productID)
	return nil
}

func (c *Cart) removeLocked(i int) {
	item := c.items[i]
	if err := c.inv.increaseLocked(item.ProductID, item.Qty); err != nil {
		// The product vanished from the catalog while reserved; the
		// quantity cannot be restored anywhere.
		zap.L().Warn("restore stock failed", zap.String("product", item.ProductID), zap.Error(err))
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.saveLocked()
}

// SetQty changes a line to newQty units. Growing the line reserves the
// delta from the inventory and fails untouched when stock ran out;
// shrinking returns the delta unconditionally. newQty <= 0 behaves exactly
// like Remove. Setting the current quantity succeeds and still persists.
func (c *Cart) SetQty(productID string, newQty int) error {
	c.mu.Lock()
	i := c.indexLocked(productID)
	if i < 0 {
		c.mu.Unlock()
		return ErrNotFound
	}
	if newQty <= 0 {
		c.removeLocked(i)
		c.mu.Unlock()
		publish(c.bus, TopicCartChanged, "remove", productID)
		return nil
	}

	current := c.items[i].Qty
	switch {
	case newQty > current:
		if _, err := c.inv.decreaseLocked(productID, newQty-current); err != nil {
			c.mu.Unlock()
			return err
		}
		c.items[i].Qty = newQty
	case newQty < current:
		if err := c.inv.increaseLocked(productID, current-newQty); err != nil {
			zap.L().Warn("restore stock failed", zap.String("product", productID), zap.Error(err))
		}
		c.items[i].Qty = newQty
	}
	c.saveLocked()
	c.mu.Unlock()

	publish(c.bus, TopicCartChanged, "setqty", productID)
	return nil
}

// Clear abandons the cart: every reserved quantity goes back to the
// inventory and the cart empties.
func (c *Cart) Clear() error {
	c.mu.Lock()
	for _, item := range c.items {
		if err := c.inv.increaseLocked(item.ProductID, item.Qty); err != nil {
			zap.L().Warn("restore stock failed", zap.String("product", item.ProductID), zap.Error(err))
		}
	}
	c.items = nil
	c.saveLocked()
	c.mu.Unlock()

	publish(c.bus, TopicCartChanged, "clear", "")
	return nil
}

func (c *Cart) indexLocked(productID string) int {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) saveLocked() {
	data, err := json.Marshal(c.items)
	if err != nil {
		zap.L().Error("marshal cart record", zap.Error(err))
		return
	}
	if err := c.rs.WriteRecord(domain.CartRecordKey, data); err != nil {
		zap.L().Error("persist cart record", zap.Error(err))
	}
}
