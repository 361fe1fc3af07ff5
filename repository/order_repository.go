package repository

import (
	"parrilla-backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// Create writes the order and its snapshot lines in one transaction.
func (r *OrderRepository) Create(o *entity.Order) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(o).Error
	})
}

// ListActive returns everything not yet delivered, newest first. The
// kitchen board and the customer "my order" lookup both read this.
func (r *OrderRepository) ListActive() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("status <> ?", entity.StatusDelivered).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) GetStatus(id string) (entity.OrderStatus, error) {
	var row struct{ Status entity.OrderStatus }
	err := r.DB.Model(&entity.Order{}).
		Select("status").Where("id = ?", id).First(&row).Error
	return row.Status, err
}

// UpdateStatusGuard moves an order from one status to another with a
// compare-and-set; zero rows affected means another staff session got
// there first.
func (r *OrderRepository) UpdateStatusGuard(id string, from, to entity.OrderStatus) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
