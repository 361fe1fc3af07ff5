package entity

import (
	"strings"
	"time"
)

// DefaultTable is used when the customer leaves the table field blank
// (a to-go order).
const DefaultTable = "Llevar"

// LocalIDPrefix marks orders that could not be written to the store and
// exist only in the submitting customer's session.
const LocalIDPrefix = "local-"

type Order struct {
	ID           string      `gorm:"primaryKey" json:"id"`
	Items        []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	CustomerName string      `json:"customerName"`
	TableNumber  string      `json:"tableNumber"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// Local reports whether the order was never durably stored.
func (o *Order) Local() bool {
	return strings.HasPrefix(o.ID, LocalIDPrefix)
}
