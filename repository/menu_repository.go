package repository

import (
	"parrilla-backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) List() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("category, name").Find(&items).Error
	return items, err
}

func (r *MenuRepository) Get(id string) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Upsert creates or fully replaces the item identified by item.ID.
func (r *MenuRepository) Upsert(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) Delete(id string) error {
	return r.DB.Delete(&entity.MenuItem{}, "id = ?", id).Error
}
