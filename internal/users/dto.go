package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/montluxe/storefront/pkg/db/models"
)

// UserDTO is the transport shape that omits sensitive credentials.
type UserDTO struct {
	ID            uuid.UUID  `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	ShippingAddr  *string    `json:"shipping_address,omitempty"`
	ShippingCity  *string    `json:"shipping_city,omitempty"`
	ShippingState *string    `json:"shipping_state,omitempty"`
	ShippingZip   *string    `json:"shipping_zip,omitempty"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Username      string
	Email         string
	PasswordHash  string
	ShippingAddr  *string
	ShippingCity  *string
	ShippingState *string
	ShippingZip   *string
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		ShippingAddr:  u.ShippingAddr,
		ShippingCity:  u.ShippingCity,
		ShippingState: u.ShippingState,
		ShippingZip:   u.ShippingZip,
		LastLoginAt:   u.LastLoginAt,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	return &models.User{
		Username:      c.Username,
		Email:         c.Email,
		PasswordHash:  c.PasswordHash,
		ShippingAddr:  c.ShippingAddr,
		ShippingCity:  c.ShippingCity,
		ShippingState: c.ShippingState,
		ShippingZip:   c.ShippingZip,
	}
}
