package services

import (
	"parrilla-backend/entity"
)

// ResolveTracked correlates the customer's stored last-order id with
// the current active-order snapshot. The second return says whether the
// stored id is still worth keeping: once the order is gone from the
// active list (delivered, or never existed) it is cleared. A missing id
// is "nothing to show", never an error.
func ResolveTracked(lastID string, active []entity.Order) (*entity.Order, bool) {
	if lastID == "" {
		return nil, false
	}
	for i := range active {
		if active[i].ID == lastID {
			return &active[i], true
		}
	}
	return nil, false
}
