package entity

import (
	"time"
)

// MenuItem is a catalog entry. Edited only through the admin surface;
// orders copy name and price at submission, so later edits never touch
// a placed order.
type MenuItem struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
