package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusFulfilled  OrderStatus = "fulfilled"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// CanTransitionTo reports whether an order may move from its current status to
// next. Fulfilled and cancelled are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusNew:
		return next == OrderStatusProcessing || next == OrderStatusCancelled
	case OrderStatusProcessing:
		return next == OrderStatusFulfilled || next == OrderStatusCancelled
	default:
		return false
	}
}

type Order struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber string          `gorm:"size:20;uniqueIndex" json:"order_number"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	CreatedAt   time.Time       `json:"created_at"`
	Status      OrderStatus     `gorm:"type:VARCHAR(20);default:'new'" json:"status"`
	TotalSum    decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_sum"`

	// Snapshot of the user's contact fields at checkout time. Later profile
	// edits must not rewrite order history.
	FullName    string `gorm:"size:120" json:"full_name"`
	Phone       string `gorm:"size:50" json:"phone"`
	Email       string `gorm:"size:120" json:"email"`
	CompanyName string `gorm:"size:255" json:"company_name"`
	Comment     string `gorm:"type:text" json:"comment"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem is an immutable purchased line. Product name, article and price
// are copied at checkout so catalog edits cannot alter past orders.
type OrderItem struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     uint            `gorm:"not null;index" json:"order_id"`
	ProductID   *uint           `json:"product_id"`
	ProductName string          `gorm:"size:255" json:"product_name"`
	Article     string          `gorm:"size:100" json:"article"`
	Quantity    int             `gorm:"default:1" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Sum         decimal.Decimal `gorm:"type:decimal(10,2)" json:"sum"`
}

const orderNumberPrefix = "AGT"

// FormatOrderNumber renders a human-readable order number, e.g.
// AGT-20251109-0007. The sequence part is the order's own primary key, so
// numbers stay unique and climb monotonically within a day without a separate
// counter read.
func FormatOrderNumber(id uint, createdAt time.Time) string {
	return fmt.Sprintf("%s-%s-%04d", orderNumberPrefix, createdAt.UTC().Format("20060102"), id)
}
