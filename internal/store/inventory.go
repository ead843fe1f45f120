// Package store implements the storefront bookkeeping: an inventory that
// owns product stock and a cart that reserves stock while shopping. All
// mutations write through to the injected record store, so a fresh Load
// always reproduces the current state.
package store

import (
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/gualmart/storefront/internal/domain"
	"github.com/gualmart/storefront/internal/storage"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Inventory is the single source of truth for product stock. The mutex is
// shared with the cart so that reserve/restore sequences spanning both
// collections apply as one step.
type Inventory struct {
	mu       *sync.Mutex
	rs       storage.RecordStore
	bus      EventPublisher
	products []domain.Product
}

func NewInventory(rs storage.RecordStore, bus EventPublisher) *Inventory {
	return &Inventory{
		mu:  &sync.Mutex{},
		rs:  rs,
		bus: bus,
	}
}

// Load replaces the in-memory product list with the persisted record.
// A missing record or one that fails to parse degrades to an empty list;
// parse failures are logged but never fatal.
func (inv *Inventory) Load() error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	data, err := inv.rs.ReadRecord(domain.InventoryRecordKey)
	if err != nil {
		return err
	}
	inv.products = decodeProducts(data)
	return nil
}

func decodeProducts(data []byte) []domain.Product {
	if len(data) == 0 {
		return nil
	}
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		zap.L().Warn("inventory record corrupt, starting empty", zap.Error(err))
		return nil
	}
	return products
}

// SeedIfEmpty populates the default catalog when nothing is loaded.
// Persisted state always wins: a non-empty inventory is left untouched.
func (inv *Inventory) SeedIfEmpty() {
	inv.mu.Lock()
	if len(inv.products) > 0 {
		inv.mu.Unlock()
		return
	}
	inv.products = domain.DefaultCatalog()
	n := len(inv.products)
	inv.saveLocked()
	inv.mu.Unlock()

	zap.L().Info("seeded default catalog", zap.Int("products", n))
	publish(inv.bus, TopicInventoryChanged, "seed", "")
}

// GetAll returns a copy of the product list; callers may mutate it freely.
func (inv *Inventory) GetAll() []domain.Product {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return append([]domain.Product(nil), inv.products...)
}

// FindByID returns a copy of the matching product.
func (inv *Inventory) FindByID(id string) (domain.Product, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	p := inv.findLocked(id)
	if p == nil {
		return domain.Product{}, ErrNotFound
	}
	return *p, nil
}

var fold = cases.Fold()

// Search filters products by case-insensitive substring match on the name.
// A blank term returns the whole catalog in its original order.
func (inv *Inventory) Search(term string) []domain.Product {
	t := fold.String(strings.TrimSpace(term))
	if t == "" {
		return inv.GetAll()
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()
	var matched []domain.Product
	for _, p := range inv.products {
		if strings.Contains(fold.String(p.Name), t) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Decrease removes qty units of stock. It fails without mutating when the
// product is unknown or has fewer than qty units left.
func (inv *Inventory) Decrease(id string, qty int) error {
	inv.mu.Lock()
	_, err := inv.decreaseLocked(id, qty)
	inv.mu.Unlock()
	if err != nil {
		return err
	}
	publish(inv.bus, TopicInventoryChanged, "decrease", id)
	return nil
}

// Increase returns qty units of stock. There is no upper bound: cart
// removals may push stock past its seeded level.
func (inv *Inventory) Increase(id string, qty int) error {
	inv.mu.Lock()
	err := inv.increaseLocked(id, qty)
	inv.mu.Unlock()
	if err != nil {
		return err
	}
	publish(inv.bus, TopicInventoryChanged, "increase", id)
	return nil
}

func (inv *Inventory) findLocked(id string) *domain.Product {
	for i := range inv.products {
		if inv.products[i].ID == id {
			return &inv.products[i]
		}
	}
	return nil
}

// decreaseLocked performs the check-then-subtract as one step under the
// shared mutex and returns the product for snapshotting.
func (inv *Inventory) decreaseLocked(id string, qty int) (*domain.Product, error) {
	if qty < 0 {
		return nil, ErrInvalidQuantity
	}
	p := inv.findLocked(id)
	if p == nil {
		return nil, ErrNotFound
	}
	if p.Stock < qty {
		return nil, ErrInsufficientStock
	}
	p.Stock -= qty
	inv.saveLocked()
	return p, nil
}

func (inv *Inventory) increaseLocked(id string, qty int) error {
	if qty < 0 {
		return ErrInvalidQuantity
	}
	p := inv.findLocked(id)
	if p == nil {
		return ErrNotFound
	}
	p.Stock += qty
	inv.saveLocked()
	return nil
}

func (inv *Inventory) saveLocked() {
	data, err := json.Marshal(inv.products)
	if err != nil {
		zap.L().Error("marshal inventory record", zap.Error(err))
		return
	}
	if err := inv.rs.WriteRecord(domain.InventoryRecordKey, data); err != nil {
		zap.L().Error("persist inventory record", zap.Error(err))
	}
}
