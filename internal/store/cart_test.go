package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gualmart/storefront/internal/domain"
	"github.com/gualmart/storefront/internal/storage"
)

func newTestCart(t *testing.T) (*Inventory, *Cart, *storage.MemStore) {
	t.Helper()
	inv, rs := newTestInventory(t)
	cart := NewCart(inv, rs, nil)
	require.NoError(t, cart.Load())
	return inv, cart, rs
}

// assertConserved checks the reservation invariant: stock plus reserved
// cart quantity always equals the seeded total, as long as no checkout
// happened.
func assertConserved(t *testing.T, inv *Inventory, cart *Cart, initial int) {
	t.Helper()
	assert.Equal(t, initial, totalStock(inv)+cart.Count(), "stock conservation violated")
}

func TestCartAdd(t *testing.T) {
	inv, cart, _ := newTestCart(t)

	require.NoError(t, cart.Add("p1", 5))

	p, _ := inv.FindByID("p1")
	assert.Equal(t, 7, p.Stock)
	assert.Equal(t, 5, cart.Count())
	assert.InDelta(t, 5*8.5, cart.Total(), 1e-9)

	item, err := cart.Get("p1")
	require.NoError(t, err)
	assert.Equal(t, "Café en grano 500g", item.Name)
	assert.Equal(t, 8.5, item.Price)
}

func TestCartAdd_MergesExistingLine(t *testing.T) {
	inv, cart, _ := newTestCart(t)

	require.NoError(t, cart.Add("p1", 5))
	require.NoError(t, cart.Add("p1", 2))

	item, _ := cart.Get("p1")
	assert.Equal(t, 7, item.Qty)
	assert.Len(t, cart.Items(), 1)

	p, _ := inv.FindByID("p1")
	assert.Equal(t, 5, p.Stock)
}

func TestCartAdd_InsufficientStock(t *testing.T) {
	inv, cart, _ := newTestCart(t)

	require.NoError(t, cart.Add("p1", 5)) // stock now 7

	err := cart.Add("p1", 10)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	item, _ := cart.Get("p1")
	assert.Equal(t, 5, item.Qty, "failed add leaves the cart unchanged")
	p, _ := inv.FindByID("p1")
	assert.Equal(t, 7, p.Stock)
}

func TestCartAdd_UnknownProduct(t *testing.T) {
	_, cart, _ := newTestCart(t)
	assert.ErrorIs(t, cart.Add("missing", 1), ErrNotFound)
	assert.Empty(t, cart.Items())
}

func TestCartAdd_InvalidQuantity(t *testing.T) {
	_, cart, _ := newTestCart(t)
	assert.ErrorIs(t, cart.Add("p1", 0), ErrInvalidQuantity)
	assert.ErrorIs(t, cart.Add("p1", -3), ErrInvalidQuantity)
}

func TestCartAdd_SnapshotsPrice(t *testing.T) {
	inv, cart, rs := newTestCart(t)
	require.NoError(t, cart.Add("p1", 2))

	// Rewrite the catalog with a different price and reload, simulating a
	// catalog edit after the item entered the cart.
	products := inv.GetAll()
	for i := range products {
		if products[i].ID == "p1" {
			products[i].Price = 99.0
		}
	}
	data, err := json.Marshal(products)
	require.NoError(t, err)
	require.NoError(t, rs.WriteRecord(domain.InventoryRecordKey, data))
	require.NoError(t, inv.Load())

	p, _ := inv.FindByID("p1")
	require.Equal(t, 99.0, p.Price)

	// Cart totals keep using the price captured at add time.
	assert.InDelta(t, 2*8.5, cart.Total(), 1e-9)
}

func TestCartRemove(t *testing.T) {
	inv, cart, _ := newTestCart(t)

	require.NoError(t, cart.Add("p1", 5))
	require.NoError(t, cart.SetQty("p1", 3))
	require.NoError(t, cart.Remove("p1"))

	_, err := cart.Get("p1")
	assert.ErrorIs(t, err, ErrNotFound)

	p, _ := inv.FindByID("p1")
	assert.Equal(t, 12, p.Stock, "removal restores the full reserved quantity")
}

func TestCartRemove_AbsentIsNoop(t *testing.T) {
	inv, cart, _ := newTestCart(t)
	initial := totalStock(inv)

	require.NoError(t, cart.Remove("p1"))
	assert.Equal(t, initial, totalStock(inv))
}

func TestCartSetQty(t *testing.T) {
	inv, cart, _ := newTestCart(t)
	require.NoError(t, cart.Add("p1", 5)) // stock 7

	t.Run("shrink returns the delta", func(t *testing.T) {
		require.NoError(t, cart.SetQty("p1", 3))
		p, _ := inv.FindByID("p1")
		assert.Equal(t, 9, p.Stock)
		item, _ := cart.Get("p1")
		assert.Equal(t, 3, item.Qty)
	})

	t.Run("grow reserves the delta", func(t *testing.T) {
		require.NoError(t, cart.SetQty("p1", 6))
		p, _ := inv.FindByID("p1")
		assert.Equal(t, 6, p.Stock)
	})

	t.Run("grow beyond stock fails unchanged", func(t *testing.T) {
		err := cart.SetQty("p1", 100)
		assert.ErrorIs(t, err, ErrInsufficientStock)
		item, _ := cart.Get("p1")
		assert.Equal(t, 6, item.Qty)
		p, _ := inv.FindByID("p1")
		assert.Equal(t, 6, p.Stock)
	})

	t.Run("same quantity succeeds", func(t *testing.T) {
		require.NoError(t, cart.SetQty("p1", 6))
		item, _ := cart.Get("p1")
		assert.Equal(t, 6, item.Qty)
	})

	t.Run("zero removes", func(t *testing.T) {
		require.NoError(t, cart.SetQty("p1", 0))
		_, err := cart.Get("p1")
		assert.ErrorIs(t, err, ErrNotFound)
		p, _ := inv.FindByID("p1")
		assert.Equal(t, 12, p.Stock)
	})

	t.Run("absent item fails", func(t *testing.T) {
		assert.ErrorIs(t, cart.SetQty("p1", 2), ErrNotFound)
	})
}

func TestCartClear_RestoresStock(t *testing.T) {
	inv, cart, _ := newTestCart(t)
	initial := totalStock(inv)

	require.NoError(t, cart.Add("p1", 5))
	require.NoError(t, cart.Add("p2", 3))
	require.NoError(t, cart.Clear())

	assert.Empty(t, cart.Items())
	assert.Equal(t, initial, totalStock(inv), "clear is abandon: everything restored")
}

func TestStockConservation(t *testing.T) {
	inv, cart, _ := newTestCart(t)
	initial := totalStock(inv)

	require.NoError(t, cart.Add("p1", 5))
	assertConserved(t, inv, cart, initial)

	require.NoError(t, cart.Add("p2", 3))
	assertConserved(t, inv, cart, initial)

	require.NoError(t, cart.SetQty("p1", 9))
	assertConserved(t, inv, cart, initial)

	require.NoError(t, cart.SetQty("p2", 1))
	assertConserved(t, inv, cart, initial)

	assert.Error(t, cart.Add("p17", 1000))
	assertConserved(t, inv, cart, initial)

	require.NoError(t, cart.Remove("p1"))
	assertConserved(t, inv, cart, initial)

	require.NoError(t, cart.Clear())
	assertConserved(t, inv, cart, initial)
	assert.Equal(t, initial, totalStock(inv))
}

func TestCartLoad_CorruptRecord(t *testing.T) {
	rs := storage.NewMemStore()
	require.NoError(t, rs.WriteRecord(domain.CartRecordKey, []byte("!!!")))

	inv := NewInventory(rs, nil)
	require.NoError(t, inv.Load())
	cart := NewCart(inv, rs, nil)
	require.NoError(t, cart.Load())
	assert.Empty(t, cart.Items())
}

func TestCart_RoundTrip(t *testing.T) {
	inv, cart, rs := newTestCart(t)
	require.NoError(t, cart.Add("p1", 5))
	require.NoError(t, cart.Add("p4", 2))

	cart2 := NewCart(inv, rs, nil)
	require.NoError(t, cart2.Load())
	assert.Equal(t, cart.Items(), cart2.Items())
	assert.Equal(t, cart.Count(), cart2.Count())
	assert.InDelta(t, cart.Total(), cart2.Total(), 1e-9)
}

func TestCart_PublishesEvents(t *testing.T) {
	rs := storage.NewMemStore()
	bus := &busRecorder{}
	inv := NewInventory(rs, bus)
	require.NoError(t, inv.Load())
	inv.SeedIfEmpty()
	cart := NewCart(inv, rs, bus)
	require.NoError(t, cart.Load())

	bus.topics = nil
	require.NoError(t, cart.Add("p1", 1))
	require.NoError(t, cart.Remove("p1"))

	assert.Equal(t, []string{TopicCartChanged, TopicCartChanged}, bus.topics)
}
