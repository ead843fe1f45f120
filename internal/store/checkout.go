package store

import (
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	"github.com/gualmart/storefront/internal/domain"
)

// Checkout commits the sale: it snapshots the cart into an invoice, then
// empties the cart WITHOUT returning stock to the inventory. The stock
// reserved by earlier adds is consumed for good; this is the one way a
// reservation becomes permanent.
func (c *Cart) Checkout() (*domain.Invoice, error) {
	c.mu.Lock()
	if len(c.items) == 0 {
		c.mu.Unlock()
		return nil, ErrEmptyCart
	}

	inv := buildInvoice(c.items, c.totalLocked())
	c.items = nil
	c.saveLocked()
	c.mu.Unlock()

	publish(c.bus, TopicCheckout, inv.Number)
	zap.L().Info("checkout completed",
		zap.String("invoice", inv.Number),
		zap.Int("lines", len(inv.Lines)),
		zap.Float64("total", inv.Total))
	return inv, nil
}

func buildInvoice(items []domain.CartItem, subtotal float64) *domain.Invoice {
	lines := make([]domain.InvoiceLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, domain.InvoiceLine{
			Name:     item.Name,
			Qty:      item.Qty,
			Price:    item.Price,
			Subtotal: item.Subtotal(),
		})
	}
	tax := subtotal * domain.TaxRate
	return &domain.Invoice{
		Number:   nextInvoiceNumber(),
		Lines:    lines,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
		IssuedAt: time.Now().Format("02/01/2006 15:04:05"),
	}
}

var (
	invoiceNodeOnce sync.Once
	invoiceNode     *snowflake.Node
)

// nextInvoiceNumber issues unique invoice numbers from a snowflake node.
// Falls back to a timestamp if node creation ever fails.
func nextInvoiceNumber() string {
	invoiceNodeOnce.Do(func() {
		node, err := snowflake.NewNode(1)
		if err != nil {
			zap.L().Error("init invoice number node", zap.Error(err))
			return
		}
		invoiceNode = node
	})
	if invoiceNode == nil {
		return "INV-" + time.Now().Format("20060102150405")
	}
	return "INV-" + invoiceNode.Generate().String()
}
