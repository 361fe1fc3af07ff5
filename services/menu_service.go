package services

import (
	"errors"
	"strings"

	"parrilla-backend/entity"

	"github.com/google/uuid"
)

var (
	ErrItemNameRequired = errors.New("item name is required")
	ErrNegativePrice    = errors.New("price must not be negative")
	ErrUnknownCategory  = errors.New("unknown category")
)

type MenuStore interface {
	List() ([]entity.MenuItem, error)
	Get(id string) (*entity.MenuItem, error)
	Upsert(item *entity.MenuItem) error
	Delete(id string) error
}

type MenuService struct {
	Store  MenuStore
	Events Publisher
}

func NewMenuService(store MenuStore, events Publisher) *MenuService {
	return &MenuService{Store: store, Events: events}
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Store.List()
}

func (s *MenuService) Get(id string) (*entity.MenuItem, error) {
	return s.Store.Get(id)
}

// Upsert validates and writes a catalog item, assigning an id on
// create. Admin-only; the write failure is surfaced, never swallowed.
func (s *MenuService) Upsert(item *entity.MenuItem) (*entity.MenuItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return nil, ErrItemNameRequired
	}
	if item.Price < 0 {
		return nil, ErrNegativePrice
	}
	if !entity.ValidCategory(item.Category) {
		return nil, ErrUnknownCategory
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	if err := s.Store.Upsert(item); err != nil {
		return nil, err
	}
	s.publish(TableMenu)
	return item, nil
}

func (s *MenuService) Delete(id string) error {
	if err := s.Store.Delete(id); err != nil {
		return err
	}
	s.publish(TableMenu)
	return nil
}

func (s *MenuService) publish(table string) {
	if s.Events != nil {
		s.Events.Publish(table)
	}
}
