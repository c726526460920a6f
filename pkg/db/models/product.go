package models

import (
	"time"

	"github.com/google/uuid"
)

// Product represents one catalog listing.
type Product struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string     `gorm:"column:name;not null"`
	Description  *string    `gorm:"column:description"`
	PriceCents   int64      `gorm:"column:price_cents;not null"`
	ItemQuantity int        `gorm:"column:item_quantity;not null;default:0"`
	ImageURL     string     `gorm:"column:image_url;not null"`
	ImageAlt     *string    `gorm:"column:image_alt"`
	Href         string     `gorm:"column:href;not null"`
	Categories   []Category `gorm:"many2many:product_categories"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
