package models

import (
	"time"

	"gorm.io/datatypes"
)

type Product struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Price       float64        `gorm:"not null" json:"price"`
	Stock       int            `gorm:"not null" json:"stock"`
	Category    string         `gorm:"not null" json:"category"`
	SKU         string         `gorm:"column:sku;size:191" json:"sku"`
	Rating      *float64       `json:"rating"`
	Description *string        `json:"description"`
	Image       *string        `json:"image"`
	Images      datatypes.JSON `json:"images"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
