package domain

// TaxRate is the flat sales tax (IVA) applied at checkout.
const TaxRate = 0.13

// InvoiceLine is one sold cart line frozen at checkout time.
type InvoiceLine struct {
	Name     string  `json:"name"`
	Qty      int     `json:"qty"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

// Invoice is the checkout snapshot. It is never persisted: it lives in
// memory until the next checkout or a restart replaces it.
type Invoice struct {
	Number   string        `json:"number"`
	Lines    []InvoiceLine `json:"lines"`
	Subtotal float64       `json:"subtotal"`
	Tax      float64       `json:"tax"`
	Total    float64       `json:"total"`
	IssuedAt string        `json:"issued_at"`
}
