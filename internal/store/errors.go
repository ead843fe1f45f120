package store

import "github.com/pkg/errors"

var (
	// ErrNotFound means an id resolved to no product or cart item.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientStock means the requested quantity exceeds what the
	// inventory has available.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalidQuantity rejects zero or negative quantities on operations
	// that require a positive amount.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrEmptyCart rejects checkout of an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
)
