package services

import (
	"errors"
	"strings"

	"parrilla-backend/entity"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrNameRequired = errors.New("customer name is required")
)

// CartLine snapshots a menu item with a quantity. Quantity is always
// positive; a line that would drop to zero is removed instead.
type CartLine struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Cart is the session's selection. All operations below are
// copy-on-write: callers holding a previous value never observe
// mutation through it.
type Cart []CartLine

// AddItem merges on add: an existing line for the same item gains one,
// otherwise a new line with quantity 1 is appended. At most one line
// per menu item id ever exists.
func AddItem(cart Cart, item entity.MenuItem) Cart {
	out := make(Cart, len(cart))
	copy(out, cart)
	for i := range out {
		if out[i].ItemID == item.ID {
			out[i].Quantity++
			return out
		}
	}
	return append(out, CartLine{ItemID: item.ID, Name: item.Name, Price: item.Price, Quantity: 1})
}

// ChangeQuantity adjusts a line by delta, clamped at zero; reaching
// zero removes the line entirely. Unknown item ids are a no-op.
func ChangeQuantity(cart Cart, itemID string, delta int) Cart {
	out := make(Cart, 0, len(cart))
	for _, line := range cart {
		if line.ItemID == itemID {
			line.Quantity += delta
			if line.Quantity <= 0 {
				continue
			}
		}
		out = append(out, line)
	}
	return out
}

// CartTotal is recomputed on every call, never cached.
func CartTotal(cart Cart) float64 {
	var total float64
	for _, line := range cart {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

func ClearCart(Cart) Cart { return Cart{} }

// CheckSubmittable is the submission gate: an empty cart or a
// blank/whitespace customer name blocks the order outright.
func CheckSubmittable(cart Cart, customerName string) error {
	if len(cart) == 0 {
		return ErrEmptyCart
	}
	if strings.TrimSpace(customerName) == "" {
		return ErrNameRequired
	}
	return nil
}
