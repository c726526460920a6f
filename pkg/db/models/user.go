package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents the canonical identity entity.
type User struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Username      string     `gorm:"column:username;type:text;not null;uniqueIndex"`
	Email         string     `gorm:"column:email;type:text;not null;uniqueIndex"`
	PasswordHash  string     `gorm:"column:password_hash;not null"`
	ShippingAddr  *string    `gorm:"column:shipping_address"`
	ShippingCity  *string    `gorm:"column:shipping_city"`
	ShippingState *string    `gorm:"column:shipping_state"`
	ShippingZip   *string    `gorm:"column:shipping_zip"`
	LastLoginAt   *time.Time `gorm:"column:last_login_at"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
