package models

import "time"

// CartItem is a user's pending selection of a product. The unique index on
// (user_id, product_id) guarantees at most one line per product per user, so
// concurrent adds resolve through an atomic upsert instead of a
// read-then-write.
type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}
