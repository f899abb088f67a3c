// Package cart implements the client-held shopping cart state and its
// cookie wire format. The cart lives entirely in a cookie as a
// comma-joined list of "flowerID:quantity" pairs and is reconstructed on
// every request; the server never persists it.
package cart

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	domainerrors "bloom/internal/domain/errors"
	"bloom/internal/domain/entity"
)

// Cart maps a flower id to the requested quantity. Every entry carries a
// quantity of at least one.
type Cart map[int64]int

// Decode parses a cookie value into a Cart. Parsing is lenient: pairs
// missing the ':' separator or with non-numeric parts are skipped rather
// than failing the whole decode, and pair order is irrelevant. An empty
// value decodes to an empty cart.
func Decode(value string) Cart {
	items := make(Cart)
	if value == "" {
		return items
	}

	for _, pair := range strings.Split(value, ",") {
		idPart, qtyPart, found := strings.Cut(pair, ":")
		if !found {
			continue
		}

		flowerID, err := strconv.ParseInt(strings.TrimSpace(idPart), 10, 64)
		if err != nil {
			continue
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(qtyPart))
		if err != nil || quantity < 1 {
			continue
		}

		items[flowerID] = quantity
	}

	return items
}

// Encode serializes the cart back into the cookie wire format. Entries are
// ordered by flower id so the output is deterministic.
func (c Cart) Encode() string {
	if len(c) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(c))
	for _, flowerID := range slices.Sorted(maps.Keys(c)) {
		pairs = append(pairs, strconv.FormatInt(flowerID, 10)+":"+strconv.Itoa(c[flowerID]))
	}

	return strings.Join(pairs, ",")
}

// Add sets the requested quantity for a flower after validating it against
// the available stock. A repeated add overwrites the previous quantity
// rather than accumulating it.
func (c Cart) Add(flowerID int64, quantity, available int) error {
	if quantity < 1 {
		return domainerrors.ErrInvalidQuantity
	}
	if quantity > available {
		return domainerrors.ErrInsufficientStock.
			WithDetails(fmt.Sprintf("there are only %d flowers available", available))
	}

	c[flowerID] = quantity

	return nil
}

// TotalCost sums unit cost times quantity over the cart. Flowers the
// lookup cannot resolve (removed from the catalog since the cookie was
// written) contribute nothing.
func (c Cart) TotalCost(lookup func(flowerID int64) (*entity.Flower, bool)) float64 {
	var total float64
	for flowerID, quantity := range c {
		flower, ok := lookup(flowerID)
		if !ok || flower == nil {
			continue
		}
		total += flower.Cost * float64(quantity)
	}

	return total
}
