package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// ParseOrderStatus maps a request string onto the status enum. Any status may
// move to any other; there is no transition graph.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch OrderStatus(strings.ToUpper(status)) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusPaid:
		return OrderStatusPaid, nil
	case OrderStatusShipped:
		return OrderStatusShipped, nil
	case OrderStatusCompleted:
		return OrderStatusCompleted, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	UserID      uint        `gorm:"index;not null" json:"userId"`
	User        User        `gorm:"foreignKey:UserID" json:"user"`
	OrderRef    string      `gorm:"uniqueIndex;size:191" json:"orderRef"`
	TotalAmount float64     `gorm:"not null" json:"totalAmount"`
	Status      OrderStatus `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	OrderItems  []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderItems"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// OrderItem.Price is the product price snapshotted at checkout time. It is
// never recomputed from the catalog.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"orderId"`
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
}
