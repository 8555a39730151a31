package domain

import (
	"errors"
	"time"
)

// Role identifies which of the three portals a user belongs to.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
	RoleClient   Role = "client"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee || r == RoleClient
}

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidRole = errors.New("invalid role")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountDisabled = errors.New("account deactivated")
var ErrTooManyAttempts = errors.New("too many failed login attempts")

// User models an account in the identity store. Company is free text shown
// for clients, Position for employees; both stay empty for other roles.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         Role      `json:"role" bson:"role"`
	Avatar       string    `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Company      string    `json:"company,omitempty" bson:"company,omitempty"`
	Position     string    `json:"position,omitempty" bson:"position,omitempty"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
