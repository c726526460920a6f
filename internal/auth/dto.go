package auth

import (
	"github.com/google/uuid"

	"github.com/montluxe/storefront/internal/users"
)

// LoginRequest captures the user credentials sent to the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse contains the token and user produced by a successful login.
type LoginResponse struct {
	UserID      uuid.UUID      `json:"user_id"`
	AccessToken string         `json:"access_token"`
	User        *users.UserDTO `json:"user"`
}

// SignupRequest carries the payload for creating a new account.
type SignupRequest struct {
	Username      string  `json:"username" validate:"required,min=3,max=64"`
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,min=8"`
	ShippingAddr  *string `json:"shipping_address,omitempty"`
	ShippingCity  *string `json:"shipping_city,omitempty"`
	ShippingState *string `json:"shipping_state,omitempty"`
	ShippingZip   *string `json:"shipping_zip,omitempty"`
}

// SignupResponse returns the newly created account.
type SignupResponse struct {
	UserID uuid.UUID      `json:"user_id"`
	User   *users.UserDTO `json:"user"`
}
