package models

import "time"

// CartItem is unique per (UserID, ProductID) by application logic: adds for
// an existing pair merge into the row by incrementing Quantity.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	ProductID uint      `gorm:"not null" json:"productId"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
