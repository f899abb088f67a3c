package usecase

import (
	"context"

	"bloom/internal/domain/cart"
)

// CartLine is a cart entry resolved against the current catalog.
type CartLine struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Cost     float64 `json:"cost"`
	Quantity int     `json:"quantity"`
}

// CartContents is the resolved view of a cart cookie: the lines that still
// exist in the catalog plus their total cost.
type CartContents struct {
	Items     []*CartLine `json:"flowers_in_cart"`
	TotalCost float64     `json:"total_cost"`
}

// CartUsecase defines the interface for cart operations. The cart state
// itself always arrives from (and returns to) the client's cookie; the
// server never stores it.
type CartUsecase interface {
	// AddItem validates the requested quantity against current stock and
	// returns the updated cart to be written back into the cookie.
	AddItem(ctx context.Context, items cart.Cart, flowerID int64, quantity int) (cart.Cart, error)

	// GetContents resolves the cart against the catalog. Flowers that have
	// been removed since the cookie was written are silently skipped.
	GetContents(ctx context.Context, items cart.Cart) (*CartContents, error)
}
