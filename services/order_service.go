package services

import (
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"parrilla-backend/entity"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderStore is the slice of the persistence contract the order flow
// needs. Injected so the backend can be swapped or faked in tests.
type OrderStore interface {
	Create(o *entity.Order) error
	ListActive() ([]entity.Order, error)
	GetStatus(id string) (entity.OrderStatus, error)
	UpdateStatusGuard(id string, from, to entity.OrderStatus) (int64, error)
}

type OrderService struct {
	Store        OrderStore
	Events       Publisher
	UrgencyAfter time.Duration

	// locals holds orders the store rejected, keyed by their synthesized
	// id, so the submitting customer still sees them.
	mu     sync.Mutex
	locals map[string]*entity.Order

	now func() time.Time
}

func NewOrderService(store OrderStore, events Publisher, urgencyAfter time.Duration) *OrderService {
	return &OrderService{
		Store:        store,
		Events:       events,
		UrgencyAfter: urgencyAfter,
		locals:       make(map[string]*entity.Order),
		now:          time.Now,
	}
}

// Submit freezes the cart into an order and writes it. If the store
// rejects the write the order is kept locally under a synthesized id —
// the customer keeps seeing their order even when it was not durably
// stored. Availability over consistency; this is a kiosk, not a
// payment system.
func (s *OrderService) Submit(customerName, tableNumber string, cart Cart) (*entity.Order, error) {
	if err := CheckSubmittable(cart, customerName); err != nil {
		return nil, err
	}

	table := strings.TrimSpace(tableNumber)
	if table == "" {
		table = entity.DefaultTable
	}

	items := make([]entity.OrderItem, 0, len(cart))
	for _, line := range cart {
		items = append(items, entity.OrderItem{
			MenuItemID: line.ItemID,
			Name:       line.Name,
			Price:      line.Price,
			Quantity:   line.Quantity,
			Total:      line.Price * float64(line.Quantity),
		})
	}

	o := &entity.Order{
		ID:           uuid.NewString(),
		Items:        items,
		Total:        CartTotal(cart),
		Status:       entity.StatusPending,
		CustomerName: strings.TrimSpace(customerName),
		TableNumber:  table,
		CreatedAt:    s.now(),
	}

	if err := s.Store.Create(o); err != nil {
		log.Printf("order write rejected, keeping local copy: %v", err)
		o.ID = entity.LocalIDPrefix + uuid.NewString()
		s.mu.Lock()
		s.locals[o.ID] = o
		s.mu.Unlock()
		return o, nil
	}

	s.publish(TableOrders)
	return o, nil
}

// Advance moves an order one step along the fixed sequence. Advancing a
// delivered order is a no-op, not an error. The store write is a
// compare-and-set, so two staff sessions racing on the same ticket
// collapse to last-write-wins.
func (s *OrderService) Advance(id string) (entity.OrderStatus, error) {
	cur, err := s.Store.GetStatus(id)
	if err != nil {
		return "", ErrOrderNotFound
	}
	if !cur.Valid() {
		// Data-integrity bug, not a normal control path: leave the
		// displayed state alone.
		log.Printf("order %s has unrecognized status %q, refusing to advance", id, cur)
		return cur, nil
	}

	next := NextStatus(cur)
	if next == cur {
		return cur, nil
	}

	affected, err := s.Store.UpdateStatusGuard(id, cur, next)
	if err != nil {
		return cur, err
	}
	if affected == 0 {
		// Someone else advanced it between our read and write.
		if latest, err := s.Store.GetStatus(id); err == nil {
			return latest, nil
		}
		return cur, nil
	}

	s.publish(TableOrders)
	return next, nil
}

// ListActive returns the undelivered orders, newest first.
func (s *OrderService) ListActive() ([]entity.Order, error) {
	return s.Store.ListActive()
}

// ResolveMine re-resolves the customer's stored order id against the
// live list. keep=false tells the caller to drop the stored id.
func (s *OrderService) ResolveMine(lastID string) (o *entity.Order, keep bool, err error) {
	if lastID == "" {
		return nil, false, nil
	}

	active, err := s.Store.ListActive()
	if err != nil {
		return nil, true, err
	}
	if o, keep := ResolveTracked(lastID, active); keep {
		return o, true, nil
	}

	s.mu.Lock()
	local := s.locals[lastID]
	s.mu.Unlock()
	if local != nil {
		return local, true, nil
	}
	return nil, false, nil
}

func (s *OrderService) publish(table string) {
	if s.Events != nil {
		s.Events.Publish(table)
	}
}
