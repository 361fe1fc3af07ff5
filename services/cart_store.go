package services

import (
	"sync"

	"parrilla-backend/entity"
)

// SessionCarts holds each browsing session's cart in memory, keyed by
// the cart-session cookie. A cart belongs to exactly one session and
// dies with submission or clearing; nothing here is durable.
type SessionCarts struct {
	mu    sync.Mutex
	carts map[string]Cart
}

func NewSessionCarts() *SessionCarts {
	return &SessionCarts{carts: make(map[string]Cart)}
}

func (s *SessionCarts) Get(sid string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carts[sid]
}

func (s *SessionCarts) Add(sid string, item entity.MenuItem) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := AddItem(s.carts[sid], item)
	s.carts[sid] = cart
	return cart
}

func (s *SessionCarts) ChangeQuantity(sid, itemID string, delta int) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := ChangeQuantity(s.carts[sid], itemID, delta)
	s.carts[sid] = cart
	return cart
}

func (s *SessionCarts) Clear(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sid)
}
