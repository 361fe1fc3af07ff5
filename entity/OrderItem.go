package entity

// OrderItem is a frozen snapshot of a cart line taken at submission.
// Name and price are copied, not referenced, so menu edits never alter
// a placed order.
type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"-"`
	OrderID    string  `gorm:"index" json:"-"`
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Total      float64 `json:"total"`
}
