package domain

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
	UserBlocked  UserStatus = "blocked"
)

type User struct {
	ID               string     `json:"id"`
	Code             string     `json:"code"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Role             Role       `json:"role"`
	Status           UserStatus `json:"status"`
	DefaultAddressID *string    `json:"default_address_id,omitempty"`
	Birthday         *time.Time `json:"birthday,omitempty"`
	Gender           *Gender    `json:"gender,omitempty"`
	RegisteredAt     time.Time  `json:"registered_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type Address struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	ZipCode string `json:"zip_code"`
}

// FavoriteProduct marks a product a user has favorited.
type FavoriteProduct struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
}
